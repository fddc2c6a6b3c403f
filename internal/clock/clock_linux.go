//go:build linux
// +build linux

// File: internal/clock/clock_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

import "golang.org/x/sys/unix"

func probeMonotonic() bool {
	var ts unix.Timespec
	return unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts) == nil
}
