// File: core/lockpool/hash.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lockpool

import "unsafe"

const ptrBytes = int(unsafe.Sizeof(uintptr(0)))

// hashAddress folds the bytes of p's address into a bucket index in [0, n).
// Leading zero bytes are skipped so that the bytes that actually vary
// between heap addresses decide the bucket.
func hashAddress(p unsafe.Pointer, n int) int {
	if n < 2 {
		return 0
	}
	addr := uintptr(p)
	var key uint
	seen := false
	for shift := (ptrBytes - 1) * 8; shift >= 0; shift -= 8 {
		b := byte(addr >> uint(shift))
		if b == 0 && !seen {
			continue
		}
		seen = true
		key = key*31 + uint(b)
	}
	return int(key % uint(n))
}
