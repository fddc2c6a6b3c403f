// File: internal/osprim/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package osprim is the single platform-facing layer of hioload-sync: a native
// mutex and a condition variable with deadline support. Every primitive in
// core/concurrency is expressed purely in terms of these two types.
//
// Build with -tags deadlock to back Mutex with github.com/sasha-s/go-deadlock,
// which reports lock-order inversions and long waits during development.
package osprim
