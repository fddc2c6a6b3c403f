// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Probes common to every platform.

package control

import (
	"runtime"

	"github.com/momentics/hioload-sync/core/atomics"
	"github.com/momentics/hioload-sync/internal/clock"
	"github.com/momentics/hioload-sync/internal/osprim"
)

func registerCommonProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.monotonic", func() any {
		return clock.Monotonic()
	})
	dp.RegisterProbe("platform.atomics_simulated", func() any {
		return atomics.Simulated
	})
	dp.RegisterProbe("platform.atomics", func() any {
		return atomics.Features()
	})
	dp.RegisterProbe("platform.deadlock_detection", func() any {
		return osprim.DeadlockDetection
	})
}
