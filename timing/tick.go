// Package timing defines the simulated time unit shared by the presentation
// protocol and the participant model.
package timing

// Tick is one millisecond of simulated time. All scheduling in the
// presentation protocol happens at tick granularity.
type Tick int

// Seconds converts a tick count to seconds.
func (t Tick) Seconds() float64 {
	return float64(t) / 1000.0
}

// Max returns the largest of the given ticks.
func Max(ticks ...Tick) Tick {
	max := ticks[0]
	for _, t := range ticks[1:] {
		if t > max {
			max = t
		}
	}
	return max
}
