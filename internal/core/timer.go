package core

import "time"

// Cadence paces generation steps at a fixed interval independently of how
// often Due is polled (e.g. once per ebiten tick).
type Cadence struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewCadence returns a Cadence that is due immediately and then once per
// interval. Non-positive intervals fall back to 100ms.
func NewCadence(interval time.Duration) *Cadence {
	c := &Cadence{now: time.Now}
	c.SetInterval(interval)
	c.accumulator = c.interval
	return c
}

// SetInterval changes the step interval. It is safe to call from the main loop.
func (c *Cadence) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	c.interval = interval
}

// Interval returns the current step interval.
func (c *Cadence) Interval() time.Duration { return c.interval }

// Due reports whether a step should run now. At most one step is reported
// per call; a backlog is drained over subsequent calls.
func (c *Cadence) Due() bool {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.interval {
		c.accumulator -= c.interval
		return true
	}
	return false
}
