// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/core/concurrency"
	"github.com/momentics/hioload-sync/internal/clock"
)

// Reusable is a bounded free-list allocator. Released objects are kept on a
// LIFO list and handed out again before new ones are built; once limit
// objects exist, Get waits for a Release.
type Reusable[T any] struct {
	c     *concurrency.Condition
	free  []T
	count int
	limit int
	waits int
	newFn func() T
}

// NewReusable creates an allocator that builds objects with newFn. A limit
// of zero or less means no bound.
func NewReusable[T any](limit int, newFn func() T) *Reusable[T] {
	if limit < 0 {
		limit = 0
	}
	return &Reusable[T]{
		c:     concurrency.NewCondition(),
		limit: limit,
		newFn: newFn,
	}
}

// Get returns a free object, builds a new one while under the limit, or
// waits up to timeout for a Release. It returns the zero value and false on
// timeout.
func (r *Reusable[T]) Get(timeout time.Duration) (T, bool) {
	deadline, timed := clock.Deadline(timeout)
	r.c.Lock()
	for {
		if n := len(r.free); n > 0 {
			obj := r.free[n-1]
			var zero T
			r.free[n-1] = zero
			r.free = r.free[:n-1]
			r.c.Unlock()
			return obj, true
		}
		if r.limit == 0 || r.count < r.limit {
			r.count++
			r.c.Unlock()
			return r.newFn(), true
		}
		if timeout == 0 {
			break
		}
		r.waits++
		var ok bool
		if timed {
			ok = r.c.WaitUntil(deadline)
		} else {
			r.c.Wait()
			ok = true
		}
		r.waits--
		if !ok && len(r.free) == 0 {
			break
		}
	}
	r.c.Unlock()
	var zero T
	return zero, false
}

// Request is Get without waiting.
func (r *Reusable[T]) Request() (T, bool) {
	return r.Get(0)
}

// Release returns obj to the free list and wakes one waiter.
func (r *Reusable[T]) Release(obj T) {
	r.c.Lock()
	r.free = append(r.free, obj)
	if r.waits > 0 {
		r.c.Signal()
	}
	r.c.Unlock()
}

// Avail reports whether Get would succeed without waiting.
func (r *Reusable[T]) Avail() bool {
	r.c.Lock()
	defer r.c.Unlock()
	return len(r.free) > 0 || r.limit == 0 || r.count < r.limit
}

// Count returns how many objects have been built.
func (r *Reusable[T]) Count() int {
	r.c.Lock()
	defer r.c.Unlock()
	return r.count
}

// Limit returns the configured bound, or 0 when unbounded.
func (r *Reusable[T]) Limit() int {
	return r.limit
}

// Blocking adapts r to api.ObjectPool, waiting without bound in Get.
func (r *Reusable[T]) Blocking() api.ObjectPool[T] {
	return blocking[T]{r}
}

type blocking[T any] struct {
	r *Reusable[T]
}

func (b blocking[T]) Get() T {
	obj, _ := b.r.Get(api.Infinite)
	return obj
}

func (b blocking[T]) Put(obj T) {
	b.r.Release(obj)
}
