// File: core/lockpool/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lockpool

import (
	"sync"

	"github.com/momentics/hioload-sync/api"
)

// DefaultBuckets sizes both tables of the process registry.
const DefaultBuckets = 32

// Registry owns the mutex and rwlock pointer tables used by one process or
// subsystem.
type Registry struct {
	mutexes *MutexTable
	rwlocks *RWLockTable
}

// Stats combines both table snapshots.
type Stats struct {
	Mutexes api.TableStats
	RWLocks api.TableStats
}

// New creates a registry with the given bucket counts.
func New(mutexBuckets, rwlockBuckets int) *Registry {
	return &Registry{
		mutexes: NewMutexTable(mutexBuckets),
		rwlocks: NewRWLockTable(rwlockBuckets),
	}
}

// Mutexes returns the exclusive pointer table.
func (r *Registry) Mutexes() *MutexTable { return r.mutexes }

// RWLocks returns the read/write pointer table.
func (r *Registry) RWLocks() *RWLockTable { return r.rwlocks }

// Stats snapshots both tables.
func (r *Registry) Stats() Stats {
	return Stats{Mutexes: r.mutexes.Stats(), RWLocks: r.rwlocks.Stats()}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process registry, created on first use with
// DefaultBuckets buckets per table.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New(DefaultBuckets, DefaultBuckets)
	})
	return defaultRegistry
}
