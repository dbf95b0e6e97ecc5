package core

import "testing"

func TestCountdownLifecycle(t *testing.T) {
	var c Countdown
	if !c.Expired() || c.Active() {
		t.Fatal("zero Countdown should start expired")
	}

	c.Arm(3)
	for i := 3; i > 0; i-- {
		if c.Remaining() != i || !c.Active() {
			t.Fatalf("Remaining() = %d, expected %d", c.Remaining(), i)
		}
		c.Tick()
	}

	if !c.Expired() {
		t.Error("Countdown should expire after its armed frames")
	}

	// Ticking an expired countdown keeps it at zero.
	c.Tick()
	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d after extra tick", c.Remaining())
	}
}

func TestCountdownRearmAndClear(t *testing.T) {
	c := NewCountdown(45)
	c.Tick()
	if c.Remaining() != 44 {
		t.Errorf("Remaining() = %d, expected 44", c.Remaining())
	}

	c.Arm(8)
	if c.Remaining() != 8 {
		t.Errorf("Arm should replace the remaining frames, got %d", c.Remaining())
	}

	c.Clear()
	if !c.Expired() {
		t.Error("Clear should expire the countdown")
	}

	c.Arm(-4)
	if c.Remaining() != 0 {
		t.Error("negative Arm should leave the countdown expired")
	}
}
