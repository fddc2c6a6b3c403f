//go:build !deadlock
// +build !deadlock

// File: internal/osprim/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osprim

import "sync"

// DeadlockDetection is true if the deadlock detector backs Mutex.
const DeadlockDetection = false

// Mutex is the native mutual exclusion lock. It may be unlocked by a
// goroutine other than the one that locked it.
type Mutex struct {
	sync.Mutex
}
