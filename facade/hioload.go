// File: facade/hioload.go
// Unified facade layer for hioload-sync.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the HioloadSync struct, which aggregates the pointer lock
// tables, the settings store, metrics, and debug probes behind a single
// facade. Bucket counts are applied once at construction; checked mode and
// the sharing limit follow every reload.

package facade

import (
	"fmt"
	"log"
	"time"
	"unsafe"

	"github.com/momentics/hioload-sync/adapters"
	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/control"
	"github.com/momentics/hioload-sync/core/concurrency"
	"github.com/momentics/hioload-sync/core/lockpool"
)

// Config holds parameters immutable per run.
type Config struct {
	Settings     control.Settings // Initial settings
	SettingsPath string           // Optional YAML file replacing Settings
	UseDefault   bool             // Index and share the process-wide registry
	EnableDebug  bool             // Whether to register lock-table probes
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Settings:    control.DefaultSettings(),
		EnableDebug: true,
	}
}

// HioloadSync is the main facade type.
type HioloadSync struct {
	registry *lockpool.Registry
	control  *adapters.ControlAdapter
	config   *Config
}

// New constructs HioloadSync with the given configuration.
func New(cfg *Config) (*HioloadSync, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	settings := cfg.Settings
	if cfg.SettingsPath != "" {
		loaded, err := control.LoadSettings(cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("settings init failure: %w", err)
		}
		settings = loaded
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings init failure: %w", err)
	}

	h := &HioloadSync{config: cfg}
	if cfg.UseDefault {
		h.registry = lockpool.Default()
		if err := h.registry.Mutexes().Indexing(settings.MutexBuckets); err != nil {
			log.Printf("[facade] mutex table indexing ignored: %v", err)
		}
		if err := h.registry.RWLocks().Indexing(settings.RWLockBuckets); err != nil {
			log.Printf("[facade] rwlock table indexing ignored: %v", err)
		}
	} else {
		h.registry = lockpool.New(settings.MutexBuckets, settings.RWLockBuckets)
	}

	h.control = adapters.NewControlAdapter(settings)
	h.control.Store().OnReload(h.apply)
	h.apply(settings)

	if cfg.EnableDebug {
		h.registerProbes()
	}
	return h, nil
}

// apply pushes the runtime-safe settings into the concurrency package.
func (h *HioloadSync) apply(s control.Settings) {
	concurrency.SetChecked(s.Checked)
	concurrency.LimitSharing(s.SharingLimit)
	if s.MutexBuckets != h.registry.Mutexes().Buckets() ||
		s.RWLockBuckets != h.registry.RWLocks().Buckets() {
		log.Printf("[facade] bucket count change ignored until restart (mutex=%d rwlock=%d)",
			s.MutexBuckets, s.RWLockBuckets)
	}
}

func (h *HioloadSync) registerProbes() {
	d := h.control.Debug()
	d.RegisterProbe("lockpool.mutex", func() any {
		return h.registry.Mutexes().Stats()
	})
	d.RegisterProbe("lockpool.rwlock", func() any {
		return h.registry.RWLocks().Stats()
	})
	d.RegisterProbe("concurrency.checked", func() any {
		return concurrency.Checked()
	})
	d.RegisterProbe("concurrency.sharing_limit", func() any {
		return concurrency.SharingLimit()
	})
}

// Protect blocks until the caller holds the exclusive lock attached to p.
func (h *HioloadSync) Protect(p unsafe.Pointer) bool {
	return h.registry.Mutexes().Protect(p)
}

// Unprotect releases a lock taken with Protect.
func (h *HioloadSync) Unprotect(p unsafe.Pointer) bool {
	return h.registry.Mutexes().Release(p)
}

// ReadLock shares p, waiting at most timeout.
func (h *HioloadSync) ReadLock(p unsafe.Pointer, timeout time.Duration) bool {
	return h.registry.RWLocks().ReadLock(p, timeout)
}

// WriteLock takes p exclusively, waiting at most timeout.
func (h *HioloadSync) WriteLock(p unsafe.Pointer, timeout time.Duration) bool {
	return h.registry.RWLocks().WriteLock(p, timeout)
}

// Unlock releases one ReadLock or WriteLock hold on p.
func (h *HioloadSync) Unlock(p unsafe.Pointer) bool {
	return h.registry.RWLocks().Release(p)
}

// Registry returns the pointer lock tables.
func (h *HioloadSync) Registry() *lockpool.Registry {
	return h.registry
}

// Control returns the Control interface for settings and statistics.
func (h *HioloadSync) Control() api.Control {
	return h.control
}

// Metrics returns the metrics registry filled by CollectMetrics.
func (h *HioloadSync) Metrics() *control.MetricsRegistry {
	return h.control.Metrics()
}

// Debug returns the probe registry.
func (h *HioloadSync) Debug() api.Debug {
	return h.control.Debug()
}

// Settings returns the current settings.
func (h *HioloadSync) Settings() control.Settings {
	return h.control.Store().Snapshot()
}

// Reload replaces the settings. Bucket counts only take effect on the next
// construction.
func (h *HioloadSync) Reload(s control.Settings) error {
	if err := h.control.Store().SetSettings(s); err != nil {
		return err
	}
	control.TriggerHotReloadSync()
	return nil
}

// CollectMetrics records current table statistics and returns the snapshot.
func (h *HioloadSync) CollectMetrics() map[string]any {
	m := h.control.Metrics()
	st := h.registry.Stats()
	m.RecordTable("lockpool.mutex", st.Mutexes)
	m.RecordTable("lockpool.rwlock", st.RWLocks)
	m.Set("concurrency.checked", concurrency.Checked())
	return m.GetSnapshot()
}
