package timer

import "time"

// Clock samples the wall clock once per tick and hands out the elapsed milliseconds.
// A paused clock reports zero elapsed time until resumed.
type Clock struct {
	now      func() time.Time
	last     time.Time
	paused   bool
	elapsed  int
	maxDelta int // 0 = uncapped
}

// NewClock creates a clock starting at the current time
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading time from now (tests pass a fake)
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// SetMaxDelta caps the elapsed time of a single tick, so a stalled frame does not teleport sprites
func (c *Clock) SetMaxDelta(ms int) {
	c.maxDelta = ms
}

// Tick samples the clock and returns the milliseconds since the previous tick
func (c *Clock) Tick() int {
	now := c.now()
	delta := int(now.Sub(c.last) / time.Millisecond)
	c.last = now

	if c.paused || delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.elapsed = delta
	return delta
}

// Elapsed returns the value returned by the last Tick
func (c *Clock) Elapsed() int {
	return c.elapsed
}

// Pause stops time advancement
func (c *Clock) Pause() {
	c.paused = true
}

// Resume continues time advancement from the current instant
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.now()
}

// IsPaused returns the pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}
