// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Invariant checking for the concurrency module.
//
// Load-bearing invariants (counter underflow, releasing a lock that is not
// held) are always checked: continuing past them would wrap an unsigned
// counter and wedge every later waiter. Diagnostic invariants (the sharing
// limit, release by a non-owner, per-goroutine context mismatches) are checked
// only after SetChecked(true). A violation panics with an *api.Error carrying
// ErrCodeInvariant.

package concurrency

import (
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

var (
	checked      atomic.Bool
	sharingLimit atomic.Uint64
)

// SetChecked enables or disables diagnostic invariant checks process-wide.
func SetChecked(on bool) {
	checked.Store(on)
}

// Checked reports whether diagnostic invariant checks are enabled.
func Checked() bool {
	return checked.Load()
}

// LimitSharing caps the number of concurrently admitted sharers of any single
// primitive. The cap is only enforced in checked mode, where exceeding it
// usually reveals an unreleased shared lock. Zero removes the cap.
func LimitSharing(max uint) {
	sharingLimit.Store(uint64(max))
}

// SharingLimit returns the current sharing cap, 0 meaning none.
func SharingLimit() uint {
	return uint(sharingLimit.Load())
}

func violation(msg string, kv ...any) *api.Error {
	err := api.NewError(api.ErrCodeInvariant, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			err.WithContext(k, kv[i+1])
		}
	}
	return err
}

// admitShare checks the sharing cap before one more sharer is admitted.
func admitShare(c *Condition, sharing uint) {
	if !Checked() {
		return
	}
	if limit := SharingLimit(); limit > 0 && sharing >= limit {
		c.abort(violation("sharing limit exceeded", "sharing", sharing, "limit", limit))
	}
}
