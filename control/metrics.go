// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Metrics snapshot for lock tables and primitive counters, filled on demand
// by the facade.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-sync/api"
)

// MetricsRegistry holds the last recorded value of each metric.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RecordTable stores each field of st under prefix.
func (mr *MetricsRegistry) RecordTable(prefix string, st api.TableStats) {
	mr.mu.Lock()
	mr.metrics[prefix+".buckets"] = st.Buckets
	mr.metrics[prefix+".entries"] = st.Entries
	mr.metrics[prefix+".claimed"] = st.Claimed
	mr.metrics[prefix+".claims"] = st.Claims
	mr.metrics[prefix+".timeouts"] = st.Timeouts
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns a copy of the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns when a metric was last written.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
