// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Condition is the single OS-level building block of the package: one native
// mutex paired with exactly one condition variable.

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
	"github.com/momentics/hioload-sync/internal/osprim"
)

// Ensure compile-time interface compliance.
var _ api.Primitive = (*Condition)(nil)

// Condition pairs a mutex with one condition variable. Wait, Signal and
// Broadcast may only be called while the mutex is held.
type Condition struct {
	mu   osprim.Mutex
	cond *osprim.Cond
}

// NewCondition allocates a ready Condition.
func NewCondition() *Condition {
	c := &Condition{}
	c.init()
	return c
}

func (c *Condition) init() {
	c.cond = osprim.NewCond(&c.mu)
}

// Lock acquires the mutex.
func (c *Condition) Lock() { c.mu.Lock() }

// Unlock releases the mutex.
func (c *Condition) Unlock() { c.mu.Unlock() }

// Wait blocks until signalled.
func (c *Condition) Wait() { c.cond.Wait() }

// WaitUntil blocks until signalled or until deadline, returning false on the
// deadline.
func (c *Condition) WaitUntil(deadline time.Time) bool {
	return c.cond.WaitUntil(deadline)
}

// WaitTimeout converts timeout into an absolute deadline and waits for it.
// An infinite timeout always returns true.
func (c *Condition) WaitTimeout(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	return c.wait(deadline, timed)
}

// Signal wakes one waiter.
func (c *Condition) Signal() { c.cond.Signal() }

// Broadcast wakes every waiter.
func (c *Condition) Broadcast() { c.cond.Broadcast() }

func (c *Condition) wait(deadline time.Time, timed bool) bool {
	if !timed {
		c.cond.Wait()
		return true
	}
	return c.cond.WaitUntil(deadline)
}

// abort unlocks and panics with err. The mutex must be held.
func (c *Condition) abort(err *api.Error) {
	c.mu.Unlock()
	panic(err)
}
