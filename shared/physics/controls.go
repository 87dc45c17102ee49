package physics

import "github.com/bitwiserain/springshot/shared/gamemath"

// ControlState is the level of every control during one frame.
type ControlState struct {
	Left, Right bool
	Jump        bool // pressed this frame
	Fire        bool // held
	Target      gamemath.Vec
}

// Controls turns per-frame control levels into World events. It remembers
// what the world was last told, so a release that happened while no frames
// were applied (a pause) is still delivered on the next Apply.
type Controls struct {
	left, right bool
	aiming      bool
	target      gamemath.Vec
}

// Apply sends the events implied by s to w. Releases go before presses so a
// same-frame swap ends up moving toward the newly pressed side. Holding fire
// aims; letting go fires at the last aim point. It reports whether a shot
// was fired.
func (c *Controls) Apply(w *World, s ControlState) bool {
	if c.left && !s.Left {
		w.ReleaseLeft()
	}
	if c.right && !s.Right {
		w.ReleaseRight()
	}
	if s.Left && !c.left {
		w.PressLeft()
	}
	if s.Right && !c.right {
		w.PressRight()
	}
	c.left, c.right = s.Left, s.Right

	if s.Jump {
		w.Jump()
	}

	if s.Fire {
		c.aiming = true
		c.target = s.Target
		w.SetAim(c.target)
		return false
	}
	if !c.aiming {
		return false
	}
	c.aiming = false
	w.SetAim(c.target)
	w.Fire()
	return true
}

// Aiming reports whether fire is being held.
func (c *Controls) Aiming() bool { return c.aiming }

// Target returns the latest aim point.
func (c *Controls) Target() gamemath.Vec { return c.target }

// Reset forgets every held control without sending events.
func (c *Controls) Reset() { *c = Controls{} }
