//go:build !linux && !windows
// +build !linux,!windows

// File: internal/clock/clock_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package clock

// The Go runtime clock is monotonic on every other supported platform.
func probeMonotonic() bool { return true }
