package pool

import (
	"testing"
	"time"
)

type conn struct {
	id int
}

func TestReusableLIFO(t *testing.T) {
	next := 0
	r := NewReusable(0, func() *conn {
		next++
		return &conn{id: next}
	})
	a, _ := r.Request()
	b, _ := r.Request()
	r.Release(a)
	r.Release(b)
	got, ok := r.Request()
	if !ok || got != b {
		t.Fatalf("expected last released object, got %+v", got)
	}
	got, _ = r.Request()
	if got != a {
		t.Fatalf("expected first released object, got %+v", got)
	}
	if r.Count() != 2 {
		t.Fatalf("count = %d", r.Count())
	}
}

func TestReusableLimitBlocks(t *testing.T) {
	r := NewReusable(1, func() *conn { return &conn{} })
	first, ok := r.Get(0)
	if !ok {
		t.Fatal("first Get refused")
	}
	if r.Avail() {
		t.Fatal("exhausted pool reports available")
	}
	if _, ok := r.Request(); ok {
		t.Fatal("Request exceeded the limit")
	}
	start := time.Now()
	if obj, ok := r.Get(30 * time.Millisecond); ok || obj != nil {
		t.Fatal("Get exceeded the limit")
	}
	if time.Since(start) < 25*time.Millisecond {
		t.Fatal("timed Get returned early")
	}

	got := make(chan *conn, 1)
	go func() {
		obj, _ := r.Get(5 * time.Second)
		got <- obj
	}()
	time.Sleep(20 * time.Millisecond)
	r.Release(first)
	select {
	case obj := <-got:
		if obj != first {
			t.Fatal("waiter did not receive the released object")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter not woken by Release")
	}
	if r.Count() != 1 || r.Limit() != 1 {
		t.Fatalf("count = %d limit = %d", r.Count(), r.Limit())
	}
}

func TestReusableBlockingAdapter(t *testing.T) {
	r := NewReusable(1, func() []byte { return make([]byte, 16) })
	p := r.Blocking()
	buf := p.Get()
	done := make(chan struct{})
	go func() {
		b := p.Get()
		p.Put(b)
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("blocking Get did not wait")
	case <-time.After(30 * time.Millisecond):
	}
	p.Put(buf)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("blocking Get never returned")
	}
}
