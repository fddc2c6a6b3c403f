//go:build hiosync_simatomic
// +build hiosync_simatomic

// File: core/atomics/counter_simulated.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Simulated reports whether atomics are emulated with a mutex.
const Simulated = true

// Counter is a signed word mutated only through fetch-and-add style
// operations, serialized by a mutex.
type Counter struct {
	_     cpu.CacheLinePad
	mu    sync.Mutex
	value int64
	_     cpu.CacheLinePad
}

// NewCounter returns a counter holding v.
func NewCounter(v int64) *Counter {
	return &Counter{value: v}
}

// Get returns the current value.
func (c *Counter) Get() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v.
func (c *Counter) Set(v int64) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

// Add adds delta and returns the new value.
func (c *Counter) Add(delta int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value += delta
	return c.value
}

// FetchAdd adds delta and returns the previous value.
func (c *Counter) FetchAdd(delta int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.value
	c.value += delta
	return old
}

// CompareAndSwap stores new if the value equals old.
func (c *Counter) CompareAndSwap(old, new int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value != old {
		return false
	}
	c.value = new
	return true
}
