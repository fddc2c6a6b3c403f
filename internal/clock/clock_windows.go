//go:build windows
// +build windows

// File: internal/clock/clock_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

import "golang.org/x/sys/windows"

func probeMonotonic() bool {
	var freq int64
	if err := windows.QueryPerformanceFrequency(&freq); err != nil {
		return false
	}
	return freq > 0
}
