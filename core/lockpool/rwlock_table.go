// File: core/lockpool/rwlock_table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lockpool

import (
	"time"
	"unsafe"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/core/concurrency"
)

// RWLockTable protects arbitrary objects with timed read/write locks keyed
// by address.
type RWLockTable struct {
	t *table[*concurrency.RWLock]
}

// NewRWLockTable creates a table with n buckets. n below 1 is treated as 1.
func NewRWLockTable(n int) *RWLockTable {
	return &RWLockTable{t: newTable(n, concurrency.NewRWLock)}
}

// Indexing resizes the table to n buckets. It returns api.ErrAlreadyIndexed
// once any lock has been requested.
func (r *RWLockTable) Indexing(n int) error { return r.t.indexing(n) }

// Buckets returns the bucket count.
func (r *RWLockTable) Buckets() int { return len(r.t.buckets) }

// ReadLock shares p, waiting at most timeout.
func (r *RWLockTable) ReadLock(p unsafe.Pointer, timeout time.Duration) bool {
	return r.lock(p, timeout, (*concurrency.RWLock).Access)
}

// WriteLock takes p exclusively, waiting at most timeout. The writer may
// lock p again without blocking on itself.
func (r *RWLockTable) WriteLock(p unsafe.Pointer, timeout time.Duration) bool {
	return r.lock(p, timeout, (*concurrency.RWLock).Modify)
}

func (r *RWLockTable) lock(p unsafe.Pointer, timeout time.Duration,
	acquire func(*concurrency.RWLock, time.Duration) bool) bool {
	if p == nil {
		return false
	}
	b, e := r.t.claim(p)
	if !acquire(e.lock, timeout) {
		r.t.unclaim(b, e)
		return false
	}
	r.t.claims.Inc()
	return true
}

// Release drops one read or write hold on p. It returns false when p is not
// locked.
func (r *RWLockTable) Release(p unsafe.Pointer) bool {
	if p == nil {
		return false
	}
	return r.t.release(p, (*concurrency.RWLock).Release)
}

// Stats snapshots the table.
func (r *RWLockTable) Stats() api.TableStats { return r.t.stats() }

// ReaderGuard holds a read lock on one pointer until released.
type ReaderGuard struct {
	table *RWLockTable
	p     unsafe.Pointer
}

// Reader read-locks p and returns a guard, or false on timeout.
//
//	g, ok := table.Reader(unsafe.Pointer(obj), time.Second)
//	if !ok { ... }
//	defer g.Release()
func (r *RWLockTable) Reader(p unsafe.Pointer, timeout time.Duration) (*ReaderGuard, bool) {
	if !r.ReadLock(p, timeout) {
		return nil, false
	}
	return &ReaderGuard{table: r, p: p}, true
}

// Release unlocks the guarded pointer. Further calls have no effect.
func (g *ReaderGuard) Release() {
	if g.table != nil {
		g.table.Release(g.p)
		g.table = nil
	}
}

// WriterGuard holds a write lock on one pointer until released.
type WriterGuard struct {
	table *RWLockTable
	p     unsafe.Pointer
}

// Writer write-locks p and returns a guard, or false on timeout.
func (r *RWLockTable) Writer(p unsafe.Pointer, timeout time.Duration) (*WriterGuard, bool) {
	if !r.WriteLock(p, timeout) {
		return nil, false
	}
	return &WriterGuard{table: r, p: p}, true
}

// Release unlocks the guarded pointer. Further calls have no effect.
func (g *WriterGuard) Release() {
	if g.table != nil {
		g.table.Release(g.p)
		g.table = nil
	}
}
