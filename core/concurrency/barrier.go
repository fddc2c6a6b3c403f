// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
)

// Barrier blocks goroutines until count of them wait simultaneously, then
// releases them together. Each release starts a new generation, so a
// goroutine that wakes late never joins the next cycle.
type Barrier struct {
	c     Condition
	count uint
	waits uint
	gen   uint64
}

// NewBarrier allocates a barrier for count goroutines. A count of zero never
// blocks.
func NewBarrier(count uint) *Barrier {
	b := &Barrier{count: count}
	b.c.init()
	return b
}

// Wait blocks until the barrier trips.
func (b *Barrier) Wait() {
	b.WaitTimeout(api.Infinite)
}

// WaitTimeout is Wait bounded by timeout. On false the caller is no longer
// counted as waiting.
func (b *Barrier) WaitTimeout(timeout time.Duration) bool {
	deadline, timed := clock.Deadline(timeout)
	b.c.Lock()
	if b.count == 0 {
		b.c.Unlock()
		return true
	}
	b.waits++
	if b.waits >= b.count {
		b.trip()
		b.c.Unlock()
		return true
	}
	gen := b.gen
	for gen == b.gen {
		if !b.c.wait(deadline, timed) && gen == b.gen {
			b.waits--
			b.c.Unlock()
			return false
		}
	}
	b.c.Unlock()
	return true
}

// trip releases the current generation. The mutex must be held.
func (b *Barrier) trip() {
	b.waits = 0
	b.gen++
	b.c.Broadcast()
}

func (b *Barrier) tripIfReached() {
	if b.waits > 0 && b.waits >= b.count {
		b.trip()
	}
}

// Set changes the number of goroutines required. A count at or below the
// number already waiting releases them immediately.
func (b *Barrier) Set(count uint) {
	b.c.Lock()
	b.count = count
	b.tripIfReached()
	b.c.Unlock()
}

// Inc raises the required count by one.
func (b *Barrier) Inc() {
	b.c.Lock()
	b.count++
	b.c.Unlock()
}

// Dec lowers the required count by one, releasing waiters if it is reached.
func (b *Barrier) Dec() {
	b.c.Lock()
	if b.count > 0 {
		b.count--
	}
	b.tripIfReached()
	b.c.Unlock()
}

// Count returns the required count.
func (b *Barrier) Count() uint {
	b.c.Lock()
	defer b.c.Unlock()
	return b.count
}

// Waiting returns how many goroutines are blocked in the current generation.
func (b *Barrier) Waiting() uint {
	b.c.Lock()
	defer b.c.Unlock()
	return b.waits
}
