// File: core/atomics/spin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package atomics

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// activeSpins bounds pure busy-waiting before Wait starts yielding the P.
const activeSpins = 64

// Wait spins until the lock is acquired. The flag is polled with plain loads
// between test-and-set attempts to keep the cache line shared.
func (s *Spinlock) Wait() {
	spins := 0
	for !s.Acquire() {
		for s.held() {
			if spins < activeSpins {
				spins++
				continue
			}
			runtime.Gosched()
		}
	}
}

// Feature describes the atomic capabilities this build relies on.
type Feature struct {
	Simulated bool // mutex fallback compiled in
	CacheLine int  // padding applied around hot words
	X86CX16   bool // 16-byte compare-and-swap
	ARM64LSE  bool // ARMv8.1 large system extensions
}

// Features reports the atomic implementation in use.
func Features() Feature {
	return Feature{
		Simulated: Simulated,
		CacheLine: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		X86CX16:   cpu.X86.HasCX16,
		ARM64LSE:  cpu.ARM64.HasATOMICS,
	}
}
