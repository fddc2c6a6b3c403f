// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package api

import "time"

// ExclusiveAccess is the exclusive half of the guard protocol.
type ExclusiveAccess interface {
	// ExclusiveLock blocks until the caller holds exclusive access.
	ExclusiveLock()
	// ReleaseExclusive gives up exclusive access.
	ReleaseExclusive()
}

// SharedAccess is the shared half of the guard protocol.
type SharedAccess interface {
	// SharedLock blocks until the caller is admitted as a sharer.
	SharedLock()
	// ReleaseShare gives up one level of shared access.
	ReleaseShare()
}

// UpgradableAccess is a SharedAccess whose holder may briefly convert its
// share into exclusive access and back without releasing it.
type UpgradableAccess interface {
	SharedAccess
	// Exclusive converts the caller's shared hold into exclusive access.
	Exclusive()
	// Share converts exclusive access back into the shared hold.
	Share()
}

// Primitive is the single OS-level building block: a mutex paired with one
// condition variable. Wait, Signal and Broadcast require the mutex to be held.
type Primitive interface {
	Lock()
	Unlock()
	Wait()
	WaitUntil(deadline time.Time) bool
	Signal()
	Broadcast()
}

// ObjectPool defines a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}
