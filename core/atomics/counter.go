//go:build !hiosync_simatomic
// +build !hiosync_simatomic

// File: core/atomics/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Simulated reports whether atomics are emulated with a mutex.
const Simulated = false

// Counter is a signed word mutated only through fetch-and-add style
// operations. All mutations are totally ordered across goroutines.
type Counter struct {
	_     cpu.CacheLinePad
	value atomic.Int64
	_     cpu.CacheLinePad
}

// NewCounter returns a counter holding v.
func NewCounter(v int64) *Counter {
	c := &Counter{}
	c.value.Store(v)
	return c
}

// Get returns the current value.
func (c *Counter) Get() int64 { return c.value.Load() }

// Set stores v.
func (c *Counter) Set(v int64) { c.value.Store(v) }

// Add adds delta and returns the new value.
func (c *Counter) Add(delta int64) int64 { return c.value.Add(delta) }

// FetchAdd adds delta and returns the previous value.
func (c *Counter) FetchAdd(delta int64) int64 { return c.value.Add(delta) - delta }

// CompareAndSwap stores new if the value equals old.
func (c *Counter) CompareAndSwap(old, new int64) bool {
	return c.value.CompareAndSwap(old, new)
}
