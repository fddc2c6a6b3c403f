// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Synchronization settings, their YAML form, and a thread-safe store that
// notifies listeners when settings change.

package control

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/core/lockpool"
	"gopkg.in/yaml.v3"
)

// Settings are the tunables of the synchronization toolkit. Bucket counts
// size the pointer tables once at startup; SharingLimit and Checked may
// change at any time.
type Settings struct {
	MutexBuckets  int  `yaml:"mutex_buckets"`
	RWLockBuckets int  `yaml:"rwlock_buckets"`
	SharingLimit  uint `yaml:"sharing_limit"`
	Checked       bool `yaml:"checked"`
}

// DefaultSettings returns unchecked settings with default table sizes.
func DefaultSettings() Settings {
	return Settings{
		MutexBuckets:  lockpool.DefaultBuckets,
		RWLockBuckets: lockpool.DefaultBuckets,
	}
}

// Validate rejects settings that cannot size a lock table.
func (s Settings) Validate() error {
	if s.MutexBuckets < 1 {
		return api.NewError(api.ErrCodeConfiguration, "mutex_buckets must be positive").
			WithContext("mutex_buckets", s.MutexBuckets)
	}
	if s.RWLockBuckets < 1 {
		return api.NewError(api.ErrCodeConfiguration, "rwlock_buckets must be positive").
			WithContext("rwlock_buckets", s.RWLockBuckets)
	}
	return nil
}

// ParseSettings decodes YAML on top of DefaultSettings. Unknown keys are
// rejected.
func ParseSettings(data []byte) (Settings, error) {
	return DefaultSettings().decode(data)
}

// LoadSettings reads and parses a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	return ParseSettings(data)
}

// Merge overlays the keys of m, named as in the YAML form, onto s.
func (s Settings) Merge(m map[string]any) (Settings, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return s, fmt.Errorf("encode settings: %w", err)
	}
	return s.decode(data)
}

// Map returns s keyed by its YAML names.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"mutex_buckets":  s.MutexBuckets,
		"rwlock_buckets": s.RWLockBuckets,
		"sharing_limit":  s.SharingLimit,
		"checked":        s.Checked,
	}
}

func (s Settings) decode(data []byte) (Settings, error) {
	out := s
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return s, api.NewError(api.ErrCodeConfiguration, err.Error())
	}
	if err := out.Validate(); err != nil {
		return s, err
	}
	return out, nil
}

// ConfigStore holds the current Settings and notifies listeners on change.
type ConfigStore struct {
	mu        sync.RWMutex
	settings  Settings
	listeners []func(Settings)
}

// NewConfigStore initializes a store holding s.
func NewConfigStore(s Settings) *ConfigStore {
	return &ConfigStore{settings: s}
}

// Snapshot returns the current settings.
func (cs *ConfigStore) Snapshot() Settings {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.settings
}

// SetSettings validates and stores s, then runs every listener on the
// caller's goroutine.
func (cs *ConfigStore) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	cs.mu.Lock()
	cs.settings = s
	listeners := append([]func(Settings){}, cs.listeners...)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
	return nil
}

// Update merges keyed values into the current settings.
func (cs *ConfigStore) Update(m map[string]any) error {
	next, err := cs.Snapshot().Merge(m)
	if err != nil {
		return err
	}
	return cs.SetSettings(next)
}

// OnReload registers a listener called after every successful change.
func (cs *ConfigStore) OnReload(fn func(Settings)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
