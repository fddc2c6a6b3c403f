//go:build !hiosync_simatomic
// +build !hiosync_simatomic

// File: core/atomics/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Spinlock is a binary flag for very short critical sections. It tracks no
// owner: any goroutine may release it.
type Spinlock struct {
	_     cpu.CacheLinePad
	state atomic.Uint32
	_     cpu.CacheLinePad
}

// Acquire performs one test-and-set and reports whether the lock was taken.
func (s *Spinlock) Acquire() bool {
	return s.state.Swap(1) == 0
}

// Release clears the flag. Releasing a free lock has no effect.
func (s *Spinlock) Release() {
	s.state.Store(0)
}

func (s *Spinlock) held() bool {
	return s.state.Load() != 0
}
