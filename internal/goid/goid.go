// File: internal/goid/goid.go
// Package goid resolves the identity of the calling goroutine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Re-entrant primitives key ownership on the goroutine id, the same number
// printed in the "goroutine N [...]" header of a stack trace. Ids are never
// reused while the goroutine lives and are always positive.

package goid

import "github.com/petermattis/goid"

// ID returns the current goroutine id.
func ID() int64 {
	return goid.Get()
}
