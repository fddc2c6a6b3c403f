// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ConditionalLock is the re-entrant, per-goroutine variant of
// ConditionalAccess.

package concurrency

import (
	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/goid"
)

// Ensure compile-time interface compliance.
var (
	_ api.ExclusiveAccess  = (*ConditionalLock)(nil)
	_ api.UpgradableAccess = (*ConditionalLock)(nil)
)

// lockContext records how many shared levels one goroutine holds.
type lockContext struct {
	id    int64
	count uint
}

// ConditionalLock is a shared/exclusive lock that tracks each goroutine's
// share depth. A goroutine that already shares may share again without
// queueing behind pending writers, and may upgrade its share to exclusive
// access with Exclusive and return with Share, without a release/re-acquire
// round trip.
//
// Two goroutines upgrading at the same time deadlock, each waiting for the
// other's share to drain.
type ConditionalLock struct {
	base     ConditionalAccess
	contexts []lockContext
}

// NewConditionalLock allocates an idle lock.
func NewConditionalLock() *ConditionalLock {
	l := &ConditionalLock{}
	l.base.init()
	return l
}

// slot returns the context index of id, recycling an idle slot or appending
// a new one. The mutex must be held.
func (l *ConditionalLock) slot(id int64) int {
	free := -1
	for i := range l.contexts {
		if l.contexts[i].id == id {
			return i
		}
		if free < 0 && l.contexts[i].count == 0 {
			free = i
		}
	}
	if free >= 0 {
		l.contexts[free].id = id
		return free
	}
	l.contexts = append(l.contexts, lockContext{id: id})
	return len(l.contexts) - 1
}

func (l *ConditionalLock) checkContext(i int) {
	if Checked() && l.base.sharing < l.contexts[i].count {
		l.base.c.abort(violation("goroutine share depth exceeds sharing count",
			"goroutine", l.contexts[i].id, "depth", l.contexts[i].count, "sharing", l.base.sharing))
	}
}

// Access adds one shared level for the calling goroutine. Only the first
// level queues behind pending writers.
func (l *ConditionalLock) Access() {
	a := &l.base
	a.c.Lock()
	i := l.slot(goid.ID())
	l.checkContext(i)
	l.contexts[i].count++
	for l.contexts[i].count < 2 && a.pending > 0 {
		a.waiting++
		a.bcast.Wait()
		a.waiting--
	}
	admitShare(&a.c, a.sharing)
	a.sharing++
	a.c.Unlock()
}

// Release drops one shared level of the calling goroutine.
func (l *ConditionalLock) Release() {
	a := &l.base
	a.c.Lock()
	i := l.slot(goid.ID())
	if a.sharing == 0 || l.contexts[i].count == 0 {
		a.c.abort(violation("release without shared access", "goroutine", l.contexts[i].id))
	}
	a.sharing--
	l.contexts[i].count--
	if a.sharing == 0 {
		if a.pending > 0 {
			a.c.Signal()
		} else if a.waiting > 0 {
			a.bcast.Broadcast()
		}
	}
	a.c.Unlock()
}

// Modify acquires exclusive access. The caller's own shares are withdrawn
// while waiting for every other sharer to drain, and restored by Commit.
func (l *ConditionalLock) Modify() {
	a := &l.base
	a.c.Lock()
	i := l.slot(goid.ID())
	l.checkContext(i)
	a.sharing -= l.contexts[i].count
	// the exclusive level is counted before waiting so the slot is never
	// recycled while this goroutine is parked
	l.contexts[i].count++
	for a.sharing > 0 {
		a.pending++
		a.c.Wait()
		a.pending--
	}
}

// Commit ends exclusive access taken by Modify.
func (l *ConditionalLock) Commit() {
	a := &l.base
	i := l.slot(goid.ID())
	if l.contexts[i].count == 0 {
		a.c.abort(violation("commit without exclusive access", "goroutine", l.contexts[i].id))
	}
	l.contexts[i].count--
	if l.contexts[i].count > 0 {
		a.sharing += l.contexts[i].count
		if a.pending == 0 && a.waiting > 0 {
			a.bcast.Broadcast()
		}
		a.c.Unlock()
		return
	}
	a.Commit()
}

// Exclusive upgrades the caller's existing share to exclusive access.
func (l *ConditionalLock) Exclusive() {
	a := &l.base
	a.c.Lock()
	i := l.slot(goid.ID())
	if a.sharing == 0 || l.contexts[i].count == 0 {
		a.c.abort(violation("upgrade without shared access", "goroutine", l.contexts[i].id))
	}
	a.sharing -= l.contexts[i].count
	for a.sharing > 0 {
		a.pending++
		a.c.Wait()
		a.pending--
	}
}

// Share returns from Exclusive to the caller's previous shared depth.
func (l *ConditionalLock) Share() {
	a := &l.base
	i := l.slot(goid.ID())
	if Checked() && (a.sharing != 0 || l.contexts[i].count == 0) {
		a.c.abort(violation("share without exclusive upgrade", "goroutine", l.contexts[i].id))
	}
	a.sharing += l.contexts[i].count
	if a.pending == 0 && a.waiting > 0 {
		a.bcast.Broadcast()
	}
	a.c.Unlock()
}

// Depth returns the calling goroutine's shared depth. It must not be called
// while the caller holds exclusive access.
func (l *ConditionalLock) Depth() uint {
	a := &l.base
	a.c.Lock()
	defer a.c.Unlock()
	id := goid.ID()
	for _, ctx := range l.contexts {
		if ctx.id == id {
			return ctx.count
		}
	}
	return 0
}

// Stats snapshots the scheduler counters.
func (l *ConditionalLock) Stats() api.AccessStats {
	return l.base.Stats()
}

// ExclusiveLock implements api.ExclusiveAccess.
func (l *ConditionalLock) ExclusiveLock() { l.Modify() }

// ReleaseExclusive implements api.ExclusiveAccess.
func (l *ConditionalLock) ReleaseExclusive() { l.Commit() }

// SharedLock implements api.SharedAccess.
func (l *ConditionalLock) SharedLock() { l.Access() }

// ReleaseShare implements api.SharedAccess.
func (l *ConditionalLock) ReleaseShare() { l.Release() }
