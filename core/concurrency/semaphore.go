// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
)

// Ensure compile-time interface compliance.
var _ api.SharedAccess = (*Semaphore)(nil)

// Semaphore admits at most count concurrent holders. The count may change at
// runtime; a count of zero admits nobody until it is raised.
type Semaphore struct {
	c     Condition
	count uint
	used  uint
	waits uint
}

// NewSemaphore allocates a semaphore admitting count holders.
func NewSemaphore(count uint) *Semaphore {
	s := &Semaphore{count: count}
	s.c.init()
	return s
}

// Wait blocks until a slot is free, then takes it.
func (s *Semaphore) Wait() {
	s.WaitTimeout(api.Infinite)
}

// TryWait takes a slot only if one is free now.
func (s *Semaphore) TryWait() bool {
	return s.WaitTimeout(0)
}

// WaitTimeout is Wait bounded by timeout.
func (s *Semaphore) WaitTimeout(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	s.c.Lock()
	for s.used >= s.count {
		s.waits++
		ok := s.c.wait(deadline, timed)
		s.waits--
		if !ok && s.used >= s.count {
			s.c.Unlock()
			return false
		}
	}
	s.used++
	s.c.Unlock()
	return true
}

// Release frees one slot and wakes one waiter. Releasing a semaphore
// nobody holds is an invariant violation.
func (s *Semaphore) Release() {
	s.c.Lock()
	if s.used == 0 {
		s.c.abort(violation("semaphore released without holder"))
	}
	s.used--
	if s.waits > 0 {
		s.c.Signal()
	}
	s.c.Unlock()
}

// Set changes the number of admitted holders. Raising it admits waiters
// immediately; lowering it restricts future admission only.
func (s *Semaphore) Set(count uint) {
	s.c.Lock()
	s.count = count
	if s.waits > 0 && s.used < s.count {
		s.c.Broadcast()
	}
	s.c.Unlock()
}

// Count returns the admission limit.
func (s *Semaphore) Count() uint {
	s.c.Lock()
	defer s.c.Unlock()
	return s.count
}

// Used returns the number of current holders.
func (s *Semaphore) Used() uint {
	s.c.Lock()
	defer s.c.Unlock()
	return s.used
}

// SharedLock implements api.SharedAccess.
func (s *Semaphore) SharedLock() { s.Wait() }

// ReleaseShare implements api.SharedAccess.
func (s *Semaphore) ReleaseShare() { s.Release() }
