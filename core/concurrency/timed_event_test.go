package concurrency

import (
	"testing"
	"time"

	"github.com/momentics/hioload-sync/api"
)

func TestTimedEventSignalBeforeWait(t *testing.T) {
	e := NewTimedEvent(0)
	e.Signal()
	start := time.Now()
	if !e.Wait(time.Second) {
		t.Fatal("pending signal not consumed")
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("pending signal waited for the deadline")
	}
	if e.Wait(10 * time.Millisecond) {
		t.Fatal("signal consumed twice")
	}
}

func TestTimedEventTimeoutBounds(t *testing.T) {
	e := NewTimedEvent(0)
	start := time.Now()
	if e.Wait(100 * time.Millisecond) {
		t.Fatal("unsignalled event reported a signal")
	}
	elapsed := time.Since(start)
	if elapsed < 90*time.Millisecond || elapsed > 2*time.Second {
		t.Fatalf("wait returned after %v", elapsed)
	}
}

func TestTimedEventSignalWakesWaiter(t *testing.T) {
	e := NewTimedEvent(0)
	res := make(chan bool, 1)
	go func() { res <- e.Wait(5 * time.Second) }()
	time.Sleep(20 * time.Millisecond)
	e.Signal()
	select {
	case ok := <-res:
		if !ok {
			t.Fatal("signalled waiter reported timeout")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter not woken")
	}
}

func TestTimedEventDeadlineExtends(t *testing.T) {
	e := NewTimedEvent(time.Hour)
	before := e.Deadline()
	e.Signal()
	e.Wait(time.Minute)
	if got := e.Deadline().Sub(before); got != time.Minute {
		t.Fatalf("deadline moved by %v, want 1m", got)
	}
	e.Reset()
	if e.Deadline().After(time.Now()) {
		t.Fatal("Reset did not restart the deadline at now")
	}
}

func TestTimedEventExpireAndInfinite(t *testing.T) {
	e := NewTimedEvent(time.Hour)
	res := make(chan bool, 1)
	go func() { res <- e.Sync() }()
	time.Sleep(20 * time.Millisecond)
	e.Expire()
	select {
	case ok := <-res:
		if ok {
			t.Fatal("expired wait reported a signal")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expire did not release the waiter")
	}

	go func() { res <- e.Wait(api.Infinite) }()
	time.Sleep(20 * time.Millisecond)
	e.Signal()
	select {
	case ok := <-res:
		if !ok {
			t.Fatal("infinite wait returned false")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("infinite wait not woken")
	}
}
