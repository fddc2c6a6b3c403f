// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

import "time"

// Infinite is the timeout meaning "wait until satisfied". Any negative
// duration is treated the same way; a zero timeout never blocks.
const Infinite time.Duration = -1

// IsInfinite reports whether timeout waits forever.
func IsInfinite(timeout time.Duration) bool {
	return timeout < 0
}

// AccessStats is a snapshot of the shared/exclusive scheduler counters.
type AccessStats struct {
	Sharing uint // readers currently admitted
	Pending uint // writers blocked waiting to enter
	Waiting uint // readers blocked waiting to enter
	Writers uint // nested write holds (RWLock only)
}

// TableStats describes one pointer-hash lock table.
type TableStats struct {
	Buckets  int    // bucket count fixed by indexing
	Entries  int    // lock entries ever allocated (never freed)
	Claimed  int    // entries whose usage count is non-zero
	Claims   uint64 // successful protect/lock calls
	Timeouts uint64 // timed lock attempts that expired
}
