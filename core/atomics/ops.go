// File: core/atomics/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Derived counter operations shared by the native and simulated variants.

package atomics

// Clear resets the counter to zero.
func (c *Counter) Clear() { c.Set(0) }

// Inc increments and returns the new value.
func (c *Counter) Inc() int64 { return c.Add(1) }

// Dec decrements and returns the new value.
func (c *Counter) Dec() int64 { return c.Add(-1) }

// Sub subtracts delta and returns the new value.
func (c *Counter) Sub(delta int64) int64 { return c.Add(-delta) }

// FetchSub subtracts delta and returns the previous value.
func (c *Counter) FetchSub(delta int64) int64 { return c.FetchAdd(-delta) }
