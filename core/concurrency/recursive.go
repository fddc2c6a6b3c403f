// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
	"github.com/momentics/hioload-sync/internal/goid"
)

// Ensure compile-time interface compliance.
var _ api.ExclusiveAccess = (*RecursiveMutex)(nil)

// RecursiveMutex is an exclusive lock the owning goroutine may re-acquire
// without blocking. The Nth nested Lock must be matched by N Release calls
// before another goroutine is admitted.
type RecursiveMutex struct {
	c       Condition
	lockers uint
	waiting uint
	owner   int64
}

// NewRecursiveMutex allocates an unlocked RecursiveMutex.
func NewRecursiveMutex() *RecursiveMutex {
	m := &RecursiveMutex{}
	m.c.init()
	return m
}

// Lock acquires one nesting level, blocking while another goroutine owns the
// mutex.
func (m *RecursiveMutex) Lock() {
	m.LockTimeout(api.Infinite)
}

// TryLock acquires one nesting level only if that needs no waiting.
func (m *RecursiveMutex) TryLock() bool {
	return m.LockTimeout(0)
}

// LockTimeout is Lock bounded by timeout. On false nothing is changed.
func (m *RecursiveMutex) LockTimeout(timeout time.Duration) bool {
	id := goid.ID()
	deadline, timed := clock.Deadline(timeout)
	m.c.Lock()
	for m.lockers > 0 && m.owner != id {
		m.waiting++
		ok := m.c.wait(deadline, timed)
		m.waiting--
		if !ok && m.lockers > 0 {
			m.c.Unlock()
			return false
		}
	}
	if m.lockers == 0 {
		m.owner = id
	}
	m.lockers++
	m.c.Unlock()
	return true
}

// Release drops one nesting level, waking one waiter when the last level
// goes.
func (m *RecursiveMutex) Release() {
	m.c.Lock()
	if m.lockers == 0 {
		m.c.abort(violation("release of unheld recursive mutex"))
	}
	if Checked() && m.owner != goid.ID() {
		m.c.abort(violation("recursive mutex released by non-owner", "owner", m.owner))
	}
	m.lockers--
	if m.lockers == 0 {
		m.owner = 0
		if m.waiting > 0 {
			m.c.Signal()
		}
	}
	m.c.Unlock()
}

// Owner returns the owning goroutine id, or 0 when unlocked.
func (m *RecursiveMutex) Owner() int64 {
	m.c.Lock()
	defer m.c.Unlock()
	return m.owner
}

// Depth returns the current nesting level.
func (m *RecursiveMutex) Depth() uint {
	m.c.Lock()
	defer m.c.Unlock()
	return m.lockers
}

// ExclusiveLock implements api.ExclusiveAccess.
func (m *RecursiveMutex) ExclusiveLock() { m.Lock() }

// ReleaseExclusive implements api.ExclusiveAccess.
func (m *RecursiveMutex) ReleaseExclusive() { m.Release() }
