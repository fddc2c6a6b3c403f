// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped acquisition helpers. A guard acquires on construction and is
// released with a deferred Release, which covers early returns and panics.
// Guards belong to the goroutine that created them.

package concurrency

import "github.com/momentics/hioload-sync/api"

// ExclusiveGuard holds exclusive access to a target until released.
type ExclusiveGuard struct {
	target api.ExclusiveAccess
}

// Exclusive blocks until the caller holds a's exclusive lock.
//
//	g := concurrency.Exclusive(lock)
//	defer g.Release()
func Exclusive(a api.ExclusiveAccess) *ExclusiveGuard {
	a.ExclusiveLock()
	return &ExclusiveGuard{target: a}
}

// Release gives up the lock. Further calls have no effect.
func (g *ExclusiveGuard) Release() {
	if g.target != nil {
		g.target.ReleaseExclusive()
		g.target = nil
	}
}

// Held reports whether the guard still holds its lock.
func (g *ExclusiveGuard) Held() bool { return g.target != nil }

// SharedGuard holds shared access to a target until released.
type SharedGuard struct {
	target    api.SharedAccess
	exclusive bool
}

// Shared blocks until the caller shares a.
func Shared(a api.SharedAccess) *SharedGuard {
	a.SharedLock()
	return &SharedGuard{target: a}
}

// Exclusive upgrades the share when the target supports it and is a no-op
// otherwise.
func (g *SharedGuard) Exclusive() {
	if g.target == nil || g.exclusive {
		return
	}
	if up, ok := g.target.(api.UpgradableAccess); ok {
		up.Exclusive()
		g.exclusive = true
	}
}

// Share undoes Exclusive.
func (g *SharedGuard) Share() {
	if !g.exclusive {
		return
	}
	g.target.(api.UpgradableAccess).Share()
	g.exclusive = false
}

// Release gives up the share, first downgrading an upgrade. Further calls
// have no effect.
func (g *SharedGuard) Release() {
	if g.target == nil {
		return
	}
	g.Share()
	g.target.ReleaseShare()
	g.target = nil
}

// Held reports whether the guard still holds its share.
func (g *SharedGuard) Held() bool { return g.target != nil }
