// Package pool
// Author: momentics <momentics@gmail.com>
//
// Bounded object reuse for hioload-sync.
// Reusable keeps released objects on a LIFO free list guarded by one
// concurrency.Condition and makes Get wait once the allocation limit is
// reached. See objpool.go.
package pool
