//go:build windows
// +build windows

// control/platform_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows-specific debug probes.

package control

// RegisterPlatformProbes registers the platform probes for Windows.
func RegisterPlatformProbes(dp *DebugProbes) {
	registerCommonProbes(dp)
	dp.RegisterProbe("platform.clock", func() any {
		return "QueryPerformanceCounter"
	})
}
