package timing

import "log"

// Clock is the experiment-wide simulated clock. It only moves forward:
// phases advance it tick by tick, and phase boundaries resynchronise it
// against the participant's internal busy clocks.
type Clock struct {
	now Tick
}

// NewClock creates a clock starting at tick 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the current tick.
func (c *Clock) Now() Tick {
	return c.now
}

// Advance moves the clock forward by d ticks.
func (c *Clock) Advance(d Tick) {
	if d < 0 {
		log.Panic("cannot advance the clock backwards")
	}
	c.now += d
}

// SyncTo moves the clock to the largest of the given ticks. The clock never
// moves backwards, so ticks in the past are ignored.
func (c *Clock) SyncTo(ticks ...Tick) {
	t := Max(ticks...)
	if t > c.now {
		c.now = t
	}
}
