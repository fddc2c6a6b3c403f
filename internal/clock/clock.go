// File: internal/clock/clock.go
// Package clock computes wait deadlines.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The clock source is chosen once at process start: a monotonic clock when the
// platform provides one, else the wall clock. Deadlines derived from a wall
// clock carry no monotonic reading and therefore follow clock adjustments.

package clock

import "time"

var monotonic = probeMonotonic()

// Monotonic reports whether deadlines are computed on a monotonic clock.
func Monotonic() bool {
	return monotonic
}

// Now returns the current time on the selected clock.
func Now() time.Time {
	if monotonic {
		return time.Now()
	}
	return time.Now().Round(0)
}

// Deadline converts a relative timeout into an absolute deadline. A negative
// timeout means no deadline and yields ok == false.
func Deadline(timeout time.Duration) (deadline time.Time, ok bool) {
	if timeout < 0 {
		return time.Time{}, false
	}
	return Now().Add(timeout), true
}
