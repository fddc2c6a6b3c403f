package clock

import (
	"testing"
	"time"
)

func TestDeadlineInfinite(t *testing.T) {
	if _, ok := Deadline(-1); ok {
		t.Fatal("negative timeout must not produce a deadline")
	}
}

func TestDeadlineInFuture(t *testing.T) {
	before := Now()
	d, ok := Deadline(50 * time.Millisecond)
	if !ok {
		t.Fatal("expected deadline")
	}
	if d.Sub(before) < 50*time.Millisecond {
		t.Errorf("deadline too early: %v", d.Sub(before))
	}
	if !d.After(Now()) {
		t.Error("fresh deadline already passed")
	}
}

func TestNowMatchesClockChoice(t *testing.T) {
	now := Now()
	// Round(0) drops the monotonic reading, which == observes.
	stripped := now.Round(0)
	if !Monotonic() && now != stripped {
		t.Error("wall clock time carries a monotonic reading")
	}
}
