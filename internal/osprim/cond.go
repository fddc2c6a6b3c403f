// File: internal/osprim/cond.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cond is a condition variable with deadline waits, which sync.Cond lacks.
// Waiters park on a private buffered channel queued in FIFO order.

package osprim

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

type waiter struct {
	ch        chan struct{}
	signalled bool
	abandoned bool
}

// Cond is a condition variable bound to a Locker. Wait, WaitUntil, Signal and
// Broadcast must be called with L held. There are no spurious wakeups.
type Cond struct {
	L       sync.Locker
	waiters *queue.Queue
}

// NewCond returns a Cond bound to l.
func NewCond(l sync.Locker) *Cond {
	return &Cond{L: l, waiters: queue.New()}
}

func (c *Cond) enqueue() *waiter {
	for c.waiters.Length() > 0 && c.waiters.Peek().(*waiter).abandoned {
		c.waiters.Remove()
	}
	w := &waiter{ch: make(chan struct{}, 1)}
	c.waiters.Add(w)
	return w
}

// Wait atomically unlocks L and suspends until signalled, then relocks L.
func (c *Cond) Wait() {
	w := c.enqueue()
	c.L.Unlock()
	<-w.ch
	c.L.Lock()
}

// WaitUntil is Wait bounded by deadline. It returns false if the deadline
// passed without a wakeup. A timed-out waiter stays queued as a tombstone
// that Signal skips, so no wakeup is ever consumed by it.
func (c *Cond) WaitUntil(deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		return false
	}
	w := c.enqueue()
	c.L.Unlock()
	timer := time.NewTimer(d)
	select {
	case <-w.ch:
		timer.Stop()
		c.L.Lock()
		return true
	case <-timer.C:
	}
	c.L.Lock()
	if w.signalled {
		// woken between the timer firing and reacquiring L
		<-w.ch
		return true
	}
	w.abandoned = true
	return false
}

// Signal wakes one waiter, if any.
func (c *Cond) Signal() {
	for c.waiters.Length() > 0 {
		w := c.waiters.Remove().(*waiter)
		if w.abandoned {
			continue
		}
		w.signalled = true
		w.ch <- struct{}{}
		return
	}
}

// Broadcast wakes all waiters.
func (c *Cond) Broadcast() {
	for c.waiters.Length() > 0 {
		w := c.waiters.Remove().(*waiter)
		if w.abandoned {
			continue
		}
		w.signalled = true
		w.ch <- struct{}{}
	}
}

// Len returns the number of queued entries, tombstones included.
func (c *Cond) Len() int {
	return c.waiters.Length()
}
