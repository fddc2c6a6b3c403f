// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-sync primitives.

package benchmarks

import (
	"testing"
	"time"
	"unsafe"

	"github.com/momentics/hioload-sync/core/atomics"
	"github.com/momentics/hioload-sync/core/concurrency"
	"github.com/momentics/hioload-sync/core/lockpool"
	"github.com/momentics/hioload-sync/facade"
	"github.com/momentics/hioload-sync/pool"
)

// BenchmarkCounterInc measures contended atomic increments.
func BenchmarkCounterInc(b *testing.B) {
	c := atomics.NewCounter(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

// BenchmarkSpinlock measures contended spinlock hand-off.
func BenchmarkSpinlock(b *testing.B) {
	var s atomics.Spinlock
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Wait()
			s.Release()
		}
	})
}

// BenchmarkRWLockReaders measures uncontended shared admission.
func BenchmarkRWLockReaders(b *testing.B) {
	l := concurrency.NewRWLock()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Access(-1)
			l.Release()
		}
	})
}

// BenchmarkRWLockMixed measures one writer per sixteen reads.
func BenchmarkRWLockMixed(b *testing.B) {
	l := concurrency.NewRWLock()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%16 == 0 {
				l.Modify(-1)
			} else {
				l.Access(-1)
			}
			l.Release()
			i++
		}
	})
}

// BenchmarkRecursiveMutex measures nested lock depth two.
func BenchmarkRecursiveMutex(b *testing.B) {
	m := concurrency.NewRecursiveMutex()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Lock()
			m.Release()
			m.Release()
		}
	})
}

// BenchmarkMutexTableDistinct measures pointer locks spread over buckets.
func BenchmarkMutexTableDistinct(b *testing.B) {
	t := lockpool.NewMutexTable(64)
	objs := make([][64]byte, 256)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			p := unsafe.Pointer(&objs[i%len(objs)])
			t.Protect(p)
			t.Release(p)
			i++
		}
	})
}

// BenchmarkFacadeReadLock measures the facade read path with a timeout.
func BenchmarkFacadeReadLock(b *testing.B) {
	h, err := facade.New(facade.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	obj := new(int)
	p := unsafe.Pointer(obj)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if h.ReadLock(p, time.Second) {
				h.Unlock(p)
			}
		}
	})
}

// BenchmarkReusable measures free-list reuse.
func BenchmarkReusable(b *testing.B) {
	r := pool.NewReusable(0, func() []byte { return make([]byte, 4096) })
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, _ := r.Request()
			r.Release(buf)
		}
	})
}
