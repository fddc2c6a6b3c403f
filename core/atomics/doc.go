// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package atomics provides the two lock-free building blocks of hioload-sync:
// a sequentially consistent signed Counter and a test-and-set Spinlock.
//
// Both use CPU atomic instructions through sync/atomic. Building with
// -tags hiosync_simatomic replaces them with a mutex-simulated fallback for
// targets where native atomics are unavailable or must be avoided; the
// Simulated constant reports which variant is compiled in.
package atomics
