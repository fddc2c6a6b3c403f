// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RWLock is the classic timed read/write lock with writer re-entrancy.

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
	"github.com/momentics/hioload-sync/internal/goid"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// Ensure compile-time interface compliance.
var (
	_ api.ExclusiveAccess = (*RWLock)(nil)
	_ api.SharedAccess    = (*RWLock)(nil)
)

// RWLock admits many readers or one writer, preferring writers. Unlike
// ConditionalAccess the internal mutex is never held between calls: the
// writer is tracked by a nesting count and the owning goroutine id, so the
// writer may call Modify again without deadlocking on itself.
//
// A writer that calls Access blocks on its own write hold.
type RWLock struct {
	c       Condition
	bcast   *osprim.Cond
	sharing uint
	pending uint
	waiting uint
	writers uint
	writeid int64
}

// NewRWLock allocates an unlocked RWLock.
func NewRWLock() *RWLock {
	l := &RWLock{}
	l.init()
	return l
}

func (l *RWLock) init() {
	l.c.init()
	l.bcast = osprim.NewCond(&l.c.mu)
}

// Modify acquires the write lock, waiting at most timeout. It returns false
// on timeout with every counter unwound.
func (l *RWLock) Modify(timeout time.Duration) bool {
	id := goid.ID()
	deadline, timed := clock.Deadline(timeout)
	l.c.Lock()
	for l.writers > 0 || l.sharing > 0 {
		if l.writers > 0 && l.writeid == id {
			break
		}
		l.pending++
		ok := l.c.wait(deadline, timed)
		l.pending--
		if !ok && (l.writers > 0 || l.sharing > 0) {
			if l.writers == 0 && l.pending == 0 && l.waiting > 0 {
				l.bcast.Broadcast()
			}
			l.c.Unlock()
			return false
		}
	}
	if l.writers == 0 {
		l.writeid = id
	}
	l.writers++
	l.c.Unlock()
	return true
}

// Access acquires a read lock, waiting at most timeout while a writer holds
// or waits for the lock. It returns false on timeout.
func (l *RWLock) Access(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	l.c.Lock()
	for l.writers > 0 || l.pending > 0 {
		l.waiting++
		var ok bool
		if timed {
			ok = l.bcast.WaitUntil(deadline)
		} else {
			l.bcast.Wait()
			ok = true
		}
		l.waiting--
		if !ok && (l.writers > 0 || l.pending > 0) {
			l.c.Unlock()
			return false
		}
	}
	admitShare(&l.c, l.sharing)
	l.sharing++
	l.c.Unlock()
	return true
}

// Release drops one level of whichever hold the caller has. A write hold
// takes priority: while writers are counted, no reader can be admitted.
func (l *RWLock) Release() {
	l.c.Lock()
	if l.writers > 0 {
		if l.sharing > 0 {
			l.c.abort(violation("readers admitted during write hold",
				"sharing", l.sharing, "writers", l.writers))
		}
		if Checked() && l.writeid != goid.ID() {
			l.c.abort(violation("write lock released by non-owner", "owner", l.writeid))
		}
		l.writers--
		if l.writers == 0 {
			l.writeid = 0
			if l.pending > 0 {
				l.c.Signal()
			} else if l.waiting > 0 {
				l.bcast.Broadcast()
			}
		}
		l.c.Unlock()
		return
	}
	if l.sharing == 0 {
		l.c.abort(violation("release of unheld rwlock"))
	}
	l.sharing--
	if l.sharing == 0 && l.pending > 0 {
		l.c.Signal()
	} else if l.waiting > 0 && l.pending == 0 {
		l.bcast.Broadcast()
	}
	l.c.Unlock()
}

// Writer returns the goroutine id holding the write lock, or 0.
func (l *RWLock) Writer() int64 {
	l.c.Lock()
	defer l.c.Unlock()
	return l.writeid
}

// Stats snapshots the counters.
func (l *RWLock) Stats() api.AccessStats {
	l.c.Lock()
	defer l.c.Unlock()
	return api.AccessStats{
		Sharing: l.sharing,
		Pending: l.pending,
		Waiting: l.waiting,
		Writers: l.writers,
	}
}

// ExclusiveLock implements api.ExclusiveAccess.
func (l *RWLock) ExclusiveLock() { l.Modify(api.Infinite) }

// ReleaseExclusive implements api.ExclusiveAccess.
func (l *RWLock) ReleaseExclusive() { l.Release() }

// SharedLock implements api.SharedAccess.
func (l *RWLock) SharedLock() { l.Access(api.Infinite) }

// ReleaseShare implements api.SharedAccess.
func (l *RWLock) ReleaseShare() { l.Release() }
