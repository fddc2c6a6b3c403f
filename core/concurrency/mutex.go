// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// Ensure compile-time interface compliance.
var _ api.ExclusiveAccess = (*Mutex)(nil)

// Mutex is a thin wrapper over the native mutex that speaks the guard
// protocol. The zero value is unlocked.
type Mutex struct {
	mu osprim.Mutex
}

// Lock acquires the mutex.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// ExclusiveLock implements api.ExclusiveAccess.
func (m *Mutex) ExclusiveLock() { m.mu.Lock() }

// ReleaseExclusive implements api.ExclusiveAccess.
func (m *Mutex) ReleaseExclusive() { m.mu.Unlock() }
