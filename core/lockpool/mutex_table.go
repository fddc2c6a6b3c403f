// File: core/lockpool/mutex_table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lockpool

import (
	"unsafe"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// MutexTable protects arbitrary objects with exclusive locks keyed by
// address.
type MutexTable struct {
	t *table[*osprim.Mutex]
}

// NewMutexTable creates a table with n buckets. n below 1 is treated as 1.
func NewMutexTable(n int) *MutexTable {
	return &MutexTable{t: newTable(n, func() *osprim.Mutex { return new(osprim.Mutex) })}
}

// Indexing resizes the table to n buckets. It returns api.ErrAlreadyIndexed
// once Protect has been called.
func (m *MutexTable) Indexing(n int) error { return m.t.indexing(n) }

// Buckets returns the bucket count.
func (m *MutexTable) Buckets() int { return len(m.t.buckets) }

// Protect blocks until the caller holds p's lock. It returns false for a nil
// pointer.
func (m *MutexTable) Protect(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	_, e := m.t.claim(p)
	e.lock.Lock()
	m.t.claims.Inc()
	return true
}

// Release unlocks p. It returns false when p is not protected.
func (m *MutexTable) Release(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	return m.t.release(p, (*osprim.Mutex).Unlock)
}

// Stats snapshots the table.
func (m *MutexTable) Stats() api.TableStats { return m.t.stats() }
