// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"time"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/internal/clock"
)

// TimedEvent is a single-shot, deadline-based completion signal. A Signal
// delivered before anyone waits is kept until a Wait consumes it.
type TimedEvent struct {
	c         Condition
	deadline  time.Time
	signalled bool
}

// NewTimedEvent allocates an unsignalled event whose deadline lies timeout
// from now. A negative timeout starts the deadline at now.
func NewTimedEvent(timeout time.Duration) *TimedEvent {
	e := &TimedEvent{}
	e.c.init()
	e.deadline = clock.Now()
	if timeout > 0 {
		e.deadline = e.deadline.Add(timeout)
	}
	return e
}

// Signal sets the event and wakes one waiter. It takes the event's own lock,
// so the caller need not hold anything.
func (e *TimedEvent) Signal() {
	e.c.Lock()
	e.signalled = true
	e.c.Signal()
	e.c.Unlock()
}

// Wait extends the deadline by timeout, measured from the later of the
// current deadline and now, then waits for a signal. It returns true and
// consumes the signal if one arrives, false once the deadline passes. An
// infinite timeout waits for the signal alone.
func (e *TimedEvent) Wait(timeout time.Duration) bool {
	e.c.Lock()
	if api.IsInfinite(timeout) {
		for !e.signalled {
			e.c.Wait()
		}
		e.signalled = false
		e.c.Unlock()
		return true
	}
	base := clock.Now()
	if e.deadline.After(base) {
		base = e.deadline
	}
	e.deadline = base.Add(timeout)
	return e.sync()
}

// Sync waits for a signal until the current deadline.
func (e *TimedEvent) Sync() bool {
	e.c.Lock()
	return e.sync()
}

// sync is entered with the lock held and returns with it released.
func (e *TimedEvent) sync() bool {
	for !e.signalled {
		if !e.c.WaitUntil(e.deadline) {
			break
		}
	}
	fired := e.signalled
	e.signalled = false
	e.c.Unlock()
	return fired
}

// Reset clears a pending signal and restarts the deadline at now.
func (e *TimedEvent) Reset() {
	e.c.Lock()
	e.signalled = false
	e.deadline = clock.Now()
	e.c.Unlock()
}

// Expire moves the deadline to now, so a current waiter returns false
// unless a signal is already pending.
func (e *TimedEvent) Expire() {
	e.c.Lock()
	e.deadline = clock.Now()
	e.c.Broadcast()
	e.c.Unlock()
}

// Deadline returns the current absolute deadline.
func (e *TimedEvent) Deadline() time.Time {
	e.c.Lock()
	defer e.c.Unlock()
	return e.deadline
}
