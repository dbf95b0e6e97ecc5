package core

// Countdown is a frame-counted timer. It is armed with a number of frames,
// ticked once per frame, and expires when it reaches zero. It never goes
// below zero and never consults the wall clock.
type Countdown struct {
	remaining int
}

// NewCountdown returns a countdown armed with the given number of frames.
func NewCountdown(frames int) Countdown {
	var c Countdown
	c.Arm(frames)
	return c
}

// Arm (re)starts the countdown. Non-positive values leave it expired.
func (c *Countdown) Arm(frames int) {
	if frames < 0 {
		frames = 0
	}
	c.remaining = frames
}

// Tick advances the countdown by one frame.
func (c *Countdown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// Clear expires the countdown immediately.
func (c *Countdown) Clear() {
	c.remaining = 0
}

// Active reports whether frames remain.
func (c Countdown) Active() bool {
	return c.remaining > 0
}

// Expired reports whether the countdown has reached zero.
func (c Countdown) Expired() bool {
	return c.remaining <= 0
}

// Remaining returns the number of frames left.
func (c Countdown) Remaining() int {
	return c.remaining
}
