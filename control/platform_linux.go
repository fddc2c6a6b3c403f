//go:build linux
// +build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific debug probes.

package control

// RegisterPlatformProbes registers the platform probes for Linux.
func RegisterPlatformProbes(dp *DebugProbes) {
	registerCommonProbes(dp)
	dp.RegisterProbe("platform.clock", func() any {
		return "CLOCK_MONOTONIC"
	})
}
