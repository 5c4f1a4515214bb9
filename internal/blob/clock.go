package blob

import "time"

// Clock is the animation time source. Current never moves backwards, even
// if the underlying wall clock does.
type Clock struct {
	now     func() time.Time
	start   time.Time
	current time.Time
}

// NewClock starts a clock reading now, or time.Now when now is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Clock{now: now, start: t, current: t}
}

func (c *Clock) Start() time.Time   { return c.start }
func (c *Clock) Current() time.Time { return c.current }

// Elapsed is the time between Start and the last Advance.
func (c *Clock) Elapsed() time.Duration {
	return c.current.Sub(c.start)
}

// Reset restarts the clock at the current reading of the time source.
func (c *Clock) Reset() {
	t := c.now()
	c.start, c.current = t, t
}

// Advance reads the time source and returns how far Current moved.
func (c *Clock) Advance() time.Duration {
	t := c.now()
	if !t.After(c.current) {
		return 0
	}
	dt := t.Sub(c.current)
	c.current = t
	return dt
}
