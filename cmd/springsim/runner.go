package main

import (
	"log"
	"time"

	"github.com/bitwiserain/springshot/shared/physics"
)

// runner drives a world through a scripted timeline.
type runner struct {
	world  *physics.World
	events []event
	next   int
	every  uint64 // log every this many ticks, 0 = never
	stop   chan struct{}
}

func newRunner(w *physics.World, events []event, every uint64) *runner {
	return &runner{
		world:  w,
		events: events,
		every:  every,
		stop:   make(chan struct{}),
	}
}

// applyDue sends every event scheduled at or before the next tick.
func (r *runner) applyDue() {
	now := r.world.Driver().Ticks()
	for r.next < len(r.events) && r.events[r.next].Tick <= now {
		r.events[r.next].apply(r.world)
		r.next++
	}
}

// runFixed runs exactly ticks steps, one driver step at a time.
func (r *runner) runFixed(ticks uint64) {
	step := r.world.Driver().Step()
	for r.world.Driver().Ticks() < ticks {
		r.applyDue()
		r.world.Advance(step)
		r.report()
	}
}

// runRealtime feeds wall-clock time to the driver at the given frame rate
// until ticks steps have run or Stop is called.
func (r *runner) runRealtime(ticks uint64, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	log.Printf("Realtime run started at %d frames/second", fps)
	last := time.Now()
	for r.world.Driver().Ticks() < ticks {
		select {
		case <-r.stop:
			log.Println("Realtime run stopped")
			return
		case now := <-ticker.C:
			// Events land on frame boundaries, like key presses do
			r.applyDue()
			before := r.world.Driver().Ticks()
			r.world.Advance(now.Sub(last))
			last = now
			for t := before + 1; t <= r.world.Driver().Ticks(); t++ {
				r.reportAt(t)
			}
		}
	}
}

func (r *runner) Stop() {
	close(r.stop)
}

func (r *runner) report() {
	r.reportAt(r.world.Driver().Ticks())
}

func (r *runner) reportAt(tick uint64) {
	if r.every == 0 || tick%r.every != 0 {
		return
	}
	p := r.world.Player
	res := r.world.LastResolution()
	log.Printf("tick=%d pos=(%.2f, %.2f) vel=(%.2f, %.2f) %s %s facing=%s landed=%t wall=%t ceiling=%t projectiles=%d",
		tick, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y,
		p.Horizontal, p.Vertical, p.Facing, res.Landed, res.HitWall, res.HitCeiling,
		r.world.Projectiles.Len())
}
