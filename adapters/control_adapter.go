// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control on top of the control package.

package adapters

import (
	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/control"
)

var _ api.Control = (*ControlAdapter)(nil)

// ControlAdapter exposes a settings store, metrics, and probes through the
// map-based api.Control contract.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter builds an adapter holding s, with platform probes
// registered.
func NewControlAdapter(s control.Settings) *ControlAdapter {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(s),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.Snapshot().Map()
}

// SetConfig merges cfg into the current settings. Listeners and process
// reload hooks run only when the merge is valid.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	if err := c.config.Update(cfg); err != nil {
		return err
	}
	control.TriggerHotReloadSync()
	return nil
}

func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any, len(stats)+len(debugStats))
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(func(control.Settings) { fn() })
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// Store returns the underlying settings store.
func (c *ControlAdapter) Store() *control.ConfigStore { return c.config }

// Metrics returns the metrics registry.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry { return c.metrics }

// Debug returns the probe registry.
func (c *ControlAdapter) Debug() *control.DebugProbes { return c.debug }
