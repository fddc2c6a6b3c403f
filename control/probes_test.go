package control

import (
	"testing"

	"github.com/momentics/hioload-sync/api"
)

func TestPlatformProbes(t *testing.T) {
	dp := NewDebugProbes()
	RegisterPlatformProbes(dp)
	state := dp.DumpState()
	for _, key := range []string{
		"platform.cpus",
		"platform.monotonic",
		"platform.atomics_simulated",
		"platform.deadlock_detection",
		"platform.clock",
	} {
		if _, ok := state[key]; !ok {
			t.Errorf("probe %s missing", key)
		}
	}
	if n, ok := dp.Probe("platform.cpus"); !ok || n.(int) < 1 {
		t.Fatalf("cpus probe = %v", n)
	}
	if _, ok := dp.Probe("nope"); ok {
		t.Fatal("unknown probe reported")
	}
}

func TestMetricsRecordTable(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.RecordTable("lockpool.mutex", api.TableStats{Buckets: 4, Entries: 2, Claims: 9})
	snap := mr.GetSnapshot()
	if snap["lockpool.mutex.buckets"] != 4 || snap["lockpool.mutex.claims"] != uint64(9) {
		t.Fatalf("snapshot = %v", snap)
	}
	if mr.Updated().IsZero() {
		t.Fatal("update time not recorded")
	}
}
