package physics

import "time"

// Driver runs a tick function at a fixed rate from variable frame times.
// Leftover time below one step is carried to the next Advance; nothing is
// interpolated.
type Driver struct {
	step  time.Duration
	tick  func()
	acc   time.Duration
	ticks uint64
}

// NewDriver returns a driver calling tick once per step of accumulated time.
// A non-positive step falls back to Timestep.
func NewDriver(step time.Duration, tick func()) *Driver {
	if step <= 0 {
		step = Timestep
	}
	return &Driver{step: step, tick: tick}
}

// Advance adds elapsed to the accumulator and runs as many ticks as it now
// covers, possibly none. Negative elapsed is ignored.
func (d *Driver) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		d.acc += elapsed
	}
	n := 0
	for d.acc >= d.step {
		d.tick()
		d.acc -= d.step
		d.ticks++
		n++
	}
	return n
}

// Ticks returns the total number of ticks run.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Accumulated returns the time not yet consumed by a tick.
func (d *Driver) Accumulated() time.Duration { return d.acc }

// Step returns the tick length.
func (d *Driver) Step() time.Duration { return d.step }
