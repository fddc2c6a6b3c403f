//go:build deadlock
// +build deadlock

// File: internal/osprim/mutex_deadlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osprim

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockDetection is true if the deadlock detector backs Mutex.
const DeadlockDetection = true

func init() {
	deadlock.Opts.DeadlockTimeout = 30 * time.Second
}

// Mutex is the native mutual exclusion lock with lock-order and long-wait
// detection enabled.
type Mutex struct {
	deadlock.Mutex
}
