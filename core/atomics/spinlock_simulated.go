//go:build hiosync_simatomic
// +build hiosync_simatomic

// File: core/atomics/spinlock_simulated.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Spinlock is a binary flag for very short critical sections. It tracks no
// owner: any goroutine may release it.
type Spinlock struct {
	_     cpu.CacheLinePad
	mu    sync.Mutex
	state bool
	_     cpu.CacheLinePad
}

// Acquire performs one test-and-set and reports whether the lock was taken.
func (s *Spinlock) Acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state {
		return false
	}
	s.state = true
	return true
}

// Release clears the flag. Releasing a free lock has no effect.
func (s *Spinlock) Release() {
	s.mu.Lock()
	s.state = false
	s.mu.Unlock()
}

func (s *Spinlock) held() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
