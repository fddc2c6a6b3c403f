package concurrency

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestBarrierReleasesTogether(t *testing.T) {
	b := NewBarrier(3)
	var returned atomic.Int32
	done := make(chan struct{}, 3)
	for i := 0; i < 2; i++ {
		go func() {
			b.Wait()
			returned.Add(1)
			done <- struct{}{}
		}()
	}
	waitFor(t, "two arrivals", func() bool { return b.Waiting() == 2 })
	time.Sleep(20 * time.Millisecond)
	if returned.Load() != 0 {
		t.Fatal("subset of waiters passed the barrier")
	}
	b.Wait()
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("waiter not released")
		}
	}
	if b.Waiting() != 0 {
		t.Fatal("barrier not reset for the next generation")
	}
}

func TestBarrierSetBelowWaiting(t *testing.T) {
	b := NewBarrier(5)
	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			b.Wait()
			done <- struct{}{}
		}()
	}
	waitFor(t, "arrivals", func() bool { return b.Waiting() == 2 })
	b.Set(2)
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("Set below waiting count did not release")
		}
	}
}

func TestBarrierIncDec(t *testing.T) {
	b := NewBarrier(1)
	b.Inc()
	if b.Count() != 2 {
		t.Fatalf("count = %d", b.Count())
	}
	done := make(chan struct{})
	go func() {
		b.Wait()
		close(done)
	}()
	waitFor(t, "arrival", func() bool { return b.Waiting() == 1 })
	b.Dec()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Dec to the waiting count did not release")
	}
}

func TestBarrierTimeoutWithdraws(t *testing.T) {
	b := NewBarrier(2)
	if b.WaitTimeout(20 * time.Millisecond) {
		t.Fatal("lone waiter passed")
	}
	if b.Waiting() != 0 {
		t.Fatal("timed-out waiter still counted")
	}
	zero := NewBarrier(0)
	finishes(t, time.Second, "zero barrier", zero.Wait)
}
