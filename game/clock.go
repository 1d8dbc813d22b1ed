package game

import "time"

// Clock turns a time source into per-frame deltas
type Clock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewClock creates a clock over now (time.Now when nil). Deltas are
// clamped to maxDelta to avoid large jumps after stalls.
func NewClock(now func() time.Time, maxDelta time.Duration) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, maxDelta: maxDelta}
}

// Tick returns the time since the previous tick. The first tick and any
// backwards step of the time source yield zero.
func (c *Clock) Tick() time.Duration {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	delta := t.Sub(c.last)
	if delta < 0 {
		delta = 0
	} else {
		c.last = t
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta
}

// Reset forgets the previous tick, e.g. after the host was suspended
func (c *Clock) Reset() {
	c.started = false
}
