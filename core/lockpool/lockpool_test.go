package lockpool

import (
	"errors"
	"sync"
	"testing"
	"time"
	"unsafe"

	"github.com/momentics/hioload-sync/api"
)

type account struct {
	balance int
}

func TestHashAddressRange(t *testing.T) {
	objs := make([]account, 64)
	for i := range objs {
		p := unsafe.Pointer(&objs[i])
		if h := hashAddress(p, 7); h < 0 || h >= 7 {
			t.Fatalf("hash %d out of range", h)
		}
		if h := hashAddress(p, 1); h != 0 {
			t.Fatalf("single bucket hash = %d", h)
		}
		if hashAddress(p, 7) != hashAddress(p, 7) {
			t.Fatal("hash not stable")
		}
	}
	if hashAddress(nil, 5) != 0 {
		t.Fatal("nil address must fold to bucket 0")
	}
}

// otherBucket returns an object from objs hashing away from p's bucket.
func otherBucket(t *testing.T, p unsafe.Pointer, objs []account, n int) unsafe.Pointer {
	t.Helper()
	for i := range objs {
		q := unsafe.Pointer(&objs[i])
		if hashAddress(q, n) != hashAddress(p, n) {
			return q
		}
	}
	t.Fatal("no object hashes to a different bucket")
	return nil
}

func TestMutexTableExclusivity(t *testing.T) {
	const buckets = 16
	m := NewMutexTable(buckets)
	x := &account{}
	px := unsafe.Pointer(x)
	py := otherBucket(t, px, make([]account, 64), buckets)

	if !m.Protect(px) {
		t.Fatal("protect failed")
	}

	acquired := make(chan struct{})
	go func() {
		m.Protect(px)
		close(acquired)
		m.Release(px)
	}()

	select {
	case <-acquired:
		t.Fatal("second Protect admitted while held")
	case <-time.After(50 * time.Millisecond):
	}

	other := make(chan struct{})
	go func() {
		m.Protect(py)
		m.Release(py)
		close(other)
	}()
	select {
	case <-other:
	case <-time.After(5 * time.Second):
		t.Fatal("different bucket blocked on held pointer")
	}

	if !m.Release(px) {
		t.Fatal("release failed")
	}
	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never admitted")
	}
}

func TestMutexTableSameBucketDifferentPointer(t *testing.T) {
	m := NewMutexTable(1)
	a, b := &account{}, &account{}
	m.Protect(unsafe.Pointer(a))
	done := make(chan struct{})
	go func() {
		m.Protect(unsafe.Pointer(b))
		m.Release(unsafe.Pointer(b))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("unrelated pointer in the same bucket blocked")
	}
	m.Release(unsafe.Pointer(a))
	if st := m.Stats(); st.Claimed != 0 || st.Entries != 2 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestMutexTableRecyclesEntries(t *testing.T) {
	m := NewMutexTable(1)
	objs := make([]account, 10)
	for i := range objs {
		p := unsafe.Pointer(&objs[i])
		m.Protect(p)
		m.Release(p)
	}
	st := m.Stats()
	if st.Entries != 1 {
		t.Fatalf("entries = %d, want 1 recycled slot", st.Entries)
	}
	if st.Claims != 10 {
		t.Fatalf("claims = %d", st.Claims)
	}
}

func TestMutexTableCounterStress(t *testing.T) {
	m := NewMutexTable(4)
	acc := &account{}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				m.Protect(unsafe.Pointer(acc))
				acc.balance++
				m.Release(unsafe.Pointer(acc))
			}
		}()
	}
	wg.Wait()
	if acc.balance != 4000 {
		t.Fatalf("balance = %d, lost updates", acc.balance)
	}
}

func TestMutexTableReleaseUnprotected(t *testing.T) {
	m := NewMutexTable(2)
	if m.Release(unsafe.Pointer(&account{})) {
		t.Fatal("release of unprotected pointer succeeded")
	}
	if m.Protect(nil) || m.Release(nil) {
		t.Fatal("nil pointer accepted")
	}
}

func TestIndexing(t *testing.T) {
	m := NewMutexTable(1)
	if err := m.Indexing(8); err != nil {
		t.Fatalf("indexing before traffic: %v", err)
	}
	if m.Buckets() != 8 {
		t.Fatalf("buckets = %d", m.Buckets())
	}
	var code *api.Error
	if err := m.Indexing(0); !errors.As(err, &code) || code.Code != api.ErrCodeInvalidArgument {
		t.Fatalf("zero buckets: %v", err)
	}
	p := unsafe.Pointer(&account{})
	m.Protect(p)
	m.Release(p)
	if err := m.Indexing(4); !errors.Is(err, api.ErrAlreadyIndexed) {
		t.Fatalf("indexing after traffic: %v", err)
	}
	if m.Buckets() != 8 {
		t.Fatal("refused indexing changed the table")
	}
}

func TestRWLockTableReadersShareWritersExclude(t *testing.T) {
	r := NewRWLockTable(8)
	p := unsafe.Pointer(&account{})
	if !r.ReadLock(p, api.Infinite) || !r.ReadLock(p, 0) {
		t.Fatal("readers did not share")
	}
	res := make(chan bool, 1)
	go func() { res <- r.WriteLock(p, 30*time.Millisecond) }()
	if <-res {
		t.Fatal("writer admitted with readers")
	}
	if st := r.Stats(); st.Timeouts != 1 || st.Claimed != 1 {
		t.Fatalf("timeout not unwound: %+v", st)
	}
	r.Release(p)
	r.Release(p)
	if st := r.Stats(); st.Claimed != 0 {
		t.Fatalf("claims left after release: %+v", st)
	}
	if !r.WriteLock(p, 0) {
		t.Fatal("writer refused on idle pointer")
	}
	if !r.WriteLock(p, 0) {
		t.Fatal("writer not re-entrant")
	}
	go func() { res <- r.ReadLock(p, 30*time.Millisecond) }()
	if <-res {
		t.Fatal("reader admitted during write hold")
	}
	r.Release(p)
	r.Release(p)
	if r.Release(p) {
		t.Fatal("release past the last hold succeeded")
	}
}

func TestRWLockTableGuards(t *testing.T) {
	r := NewRWLockTable(4)
	p := unsafe.Pointer(&account{})
	w, ok := r.Writer(p, time.Second)
	if !ok {
		t.Fatal("writer guard refused")
	}
	res := make(chan bool, 1)
	go func() {
		g, ok := r.Reader(p, 20*time.Millisecond)
		if ok {
			g.Release()
		}
		res <- ok
	}()
	if <-res {
		t.Fatal("reader guard admitted during write")
	}
	w.Release()
	w.Release()
	g, ok := r.Reader(p, 0)
	if !ok {
		t.Fatal("reader guard refused after writer released")
	}
	g.Release()
	if st := r.Stats(); st.Claimed != 0 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRegistry(t *testing.T) {
	reg := New(4, 8)
	if reg.Mutexes().Buckets() != 4 || reg.RWLocks().Buckets() != 8 {
		t.Fatal("bucket counts not applied")
	}
	p := unsafe.Pointer(&account{})
	reg.Mutexes().Protect(p)
	st := reg.Stats()
	if st.Mutexes.Claimed != 1 || st.RWLocks.Claimed != 0 {
		t.Fatalf("stats = %+v", st)
	}
	reg.Mutexes().Release(p)
	if Default() != Default() {
		t.Fatal("default registry not shared")
	}
	if Default().Mutexes().Buckets() != DefaultBuckets {
		t.Fatal("default registry size")
	}
}
