// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ConditionalAccess schedules shared and exclusive access with writer
// preference on top of a Condition plus a second, broadcast-only wake channel.

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// ConditionalAccess is a shared/exclusive scheduler built from three counters:
// sharing (admitted readers), pending (blocked writers) and waiting (blocked
// readers). Writers are woken one at a time through the Condition's signal;
// readers are woken together through a broadcast channel.
//
// New readers queue while any writer is pending, so writers cannot starve.
// Once the writer commits, every queued reader is admitted as one batch.
// Among several pending writers the wake order is unspecified.
//
// Modify returns with the internal mutex held; the writer keeps it until
// Commit. Access and Release hold it only briefly.
type ConditionalAccess struct {
	c       Condition
	bcast   *osprim.Cond
	sharing uint
	pending uint
	waiting uint
}

// NewConditionalAccess allocates an idle scheduler.
func NewConditionalAccess() *ConditionalAccess {
	a := &ConditionalAccess{}
	a.init()
	return a
}

func (a *ConditionalAccess) init() {
	a.c.init()
	a.bcast = osprim.NewCond(&a.c.mu)
}

func (a *ConditionalAccess) waitBroadcast(deadline time.Time, timed bool) bool {
	if !timed {
		a.bcast.Wait()
		return true
	}
	return a.bcast.WaitUntil(deadline)
}

// Access admits the caller as one more reader, blocking while writers are
// pending.
func (a *ConditionalAccess) Access() {
	a.AccessTimeout(api.Infinite)
}

// AccessTimeout is Access bounded by timeout. It returns false, with no
// counter changed, if a writer was still pending at the deadline.
func (a *ConditionalAccess) AccessTimeout(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	a.c.Lock()
	for a.pending > 0 {
		a.waiting++
		ok := a.waitBroadcast(deadline, timed)
		a.waiting--
		if !ok && a.pending > 0 {
			a.c.Unlock()
			return false
		}
	}
	admitShare(&a.c, a.sharing)
	a.sharing++
	a.c.Unlock()
	return true
}

// Modify blocks until no reader is admitted and returns holding exclusive
// access. It must be paired with Commit.
func (a *ConditionalAccess) Modify() {
	a.ModifyTimeout(api.Infinite)
}

// ModifyTimeout is Modify bounded by timeout. On false the caller holds
// nothing and the pending count is restored.
func (a *ConditionalAccess) ModifyTimeout(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	a.c.Lock()
	for a.sharing > 0 {
		a.pending++
		ok := a.c.wait(deadline, timed)
		a.pending--
		if !ok && a.sharing > 0 {
			// withdrawing the last pending writer unblocks queued readers
			if a.pending == 0 && a.waiting > 0 {
				a.bcast.Broadcast()
			}
			a.c.Unlock()
			return false
		}
	}
	return true
}

// Commit ends exclusive access, handing over to one pending writer if any,
// else to every queued reader.
func (a *ConditionalAccess) Commit() {
	a.wakeAfterCommit()
	a.c.Unlock()
}

// Release gives up one reader's hold.
func (a *ConditionalAccess) Release() {
	a.c.Lock()
	if a.sharing == 0 {
		a.c.abort(violation("release without shared access"))
	}
	a.sharing--
	a.wakeAfterRelease()
	a.c.Unlock()
}

// Stats snapshots the counters. It blocks while a writer holds the lock.
func (a *ConditionalAccess) Stats() api.AccessStats {
	a.c.Lock()
	defer a.c.Unlock()
	return api.AccessStats{Sharing: a.sharing, Pending: a.pending, Waiting: a.waiting}
}

func (a *ConditionalAccess) wakeAfterCommit() {
	if a.pending > 0 {
		a.c.Signal()
	} else if a.waiting > 0 {
		a.bcast.Broadcast()
	}
}

func (a *ConditionalAccess) wakeAfterRelease() {
	if a.sharing == 0 && a.pending > 0 {
		a.c.Signal()
	} else if a.waiting > 0 && a.pending == 0 {
		a.bcast.Broadcast()
	}
}
