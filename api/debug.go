// Package api
// Author: momentics
//
// Introspection contract for lock tables and primitive counters.

package api

// Debug exposes named probes that snapshot lock-table and platform state.
type Debug interface {
	// DumpState evaluates every registered probe.
	DumpState() map[string]any

	// RegisterProbe adds or replaces a named probe.
	RegisterProbe(name string, fn func() any)
}
