// File: core/lockpool/table.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bucket bookkeeping shared by the mutex and rwlock tables.

package lockpool

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/core/atomics"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// entry is one recyclable lock slot. pointer and count are guarded by the
// owning bucket's index mutex; lock is the caller-visible lock.
type entry[L any] struct {
	pointer unsafe.Pointer
	count   uint
	lock    L
}

type bucket[L any] struct {
	index   osprim.Mutex
	entries []*entry[L]
}

// find returns the live entry for p. The index mutex must be held.
func (b *bucket[L]) find(p unsafe.Pointer) *entry[L] {
	for _, e := range b.entries {
		if e.count > 0 && e.pointer == p {
			return e
		}
	}
	return nil
}

type table[L any] struct {
	buckets  []*bucket[L]
	newLock  func() L
	started  atomic.Bool
	claims   *atomics.Counter
	timeouts *atomics.Counter
}

func newTable[L any](n int, newLock func() L) *table[L] {
	t := &table[L]{
		newLock:  newLock,
		claims:   atomics.NewCounter(0),
		timeouts: atomics.NewCounter(0),
	}
	t.buckets = makeBuckets[L](n)
	return t
}

func makeBuckets[L any](n int) []*bucket[L] {
	if n < 1 {
		n = 1
	}
	buckets := make([]*bucket[L], n)
	for i := range buckets {
		buckets[i] = &bucket[L]{}
	}
	return buckets
}

// indexing replaces the bucket array. It refuses once any claim has been
// made, leaving the table unchanged.
func (t *table[L]) indexing(n int) error {
	if n < 1 {
		return api.NewError(api.ErrCodeInvalidArgument, "bucket count must be positive").
			WithContext("buckets", n)
	}
	if t.started.Load() {
		return api.ErrAlreadyIndexed
	}
	t.buckets = makeBuckets[L](n)
	return nil
}

func (t *table[L]) bucketOf(p unsafe.Pointer) *bucket[L] {
	return t.buckets[hashAddress(p, len(t.buckets))]
}

// claim moves p's entry to the claimed state, reusing a live entry for p, or
// else the first free slot, or else a new entry. The index mutex is released
// before returning so the caller can block on the entry's lock.
func (t *table[L]) claim(p unsafe.Pointer) (*bucket[L], *entry[L]) {
	t.started.Store(true)
	b := t.bucketOf(p)
	b.index.Lock()
	var e, free *entry[L]
	for _, cur := range b.entries {
		if cur.count > 0 {
			if cur.pointer == p {
				e = cur
				break
			}
		} else if free == nil {
			free = cur
		}
	}
	if e == nil {
		e = free
	}
	if e == nil {
		e = &entry[L]{lock: t.newLock()}
		b.entries = append(b.entries, e)
	}
	e.pointer = p
	e.count++
	b.index.Unlock()
	return b, e
}

// drop returns one claim on e. The index mutex must be held.
func (t *table[L]) drop(e *entry[L]) {
	e.count--
	if e.count == 0 {
		e.pointer = nil
	}
}

// unclaim undoes a claim whose lock attempt timed out.
func (t *table[L]) unclaim(b *bucket[L], e *entry[L]) {
	b.index.Lock()
	t.drop(e)
	b.index.Unlock()
	t.timeouts.Inc()
}

// release unlocks p's entry with unlock while holding the index mutex, then
// drops the claim. It reports false when p holds no claim.
func (t *table[L]) release(p unsafe.Pointer, unlock func(L)) bool {
	b := t.bucketOf(p)
	b.index.Lock()
	defer b.index.Unlock()
	e := b.find(p)
	if e == nil {
		return false
	}
	unlock(e.lock)
	t.drop(e)
	return true
}

func (t *table[L]) stats() api.TableStats {
	st := api.TableStats{
		Buckets:  len(t.buckets),
		Claims:   uint64(t.claims.Get()),
		Timeouts: uint64(t.timeouts.Get()),
	}
	for _, b := range t.buckets {
		b.index.Lock()
		st.Entries += len(b.entries)
		for _, e := range b.entries {
			if e.count > 0 {
				st.Claimed++
			}
		}
		b.index.Unlock()
	}
	return st
}
