package physics

import "github.com/bitwiserain/springshot/shared/gamemath"

type HorizontalState int

const (
	Idle HorizontalState = iota
	Moving
	MovingCancelled
)

func (s HorizontalState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Moving:
		return "Moving"
	case MovingCancelled:
		return "MovingCancelled"
	}
	return "HorizontalState(?)"
}

type VerticalState int

const (
	Grounded VerticalState = iota
	Airborne
)

func (s VerticalState) String() string {
	if s == Grounded {
		return "Grounded"
	}
	return "Airborne"
}

type Facing int

const (
	Right Facing = iota
	Left
)

func (f Facing) String() string {
	if f == Left {
		return "Left"
	}
	return "Right"
}

// Sign returns -1 for Left and +1 for Right.
func (f Facing) Sign() float64 {
	if f == Left {
		return -1
	}
	return 1
}

func (f Facing) opposite() Facing {
	if f == Left {
		return Right
	}
	return Left
}

// Player is the controllable body. Horizontal input is tracked as a three
// state machine so that holding both directions cancels motion and releasing
// either one resumes toward the key still held.
type Player struct {
	Body
	Horizontal HorizontalState
	Vertical   VerticalState
	Facing     Facing
}

// NewPlayer returns an idle, airborne player facing right at pos.
func NewPlayer(pos gamemath.Vec) *Player {
	return &Player{
		Body: Body{
			Position: pos,
			Width:    PlayerWidth,
			Height:   PlayerHeight,
		},
		Horizontal: Idle,
		Vertical:   Airborne,
		Facing:     Right,
	}
}

func (p *Player) PressLeft()    { p.press(Left) }
func (p *Player) PressRight()   { p.press(Right) }
func (p *Player) ReleaseLeft()  { p.release(Left) }
func (p *Player) ReleaseRight() { p.release(Right) }

func (p *Player) press(dir Facing) {
	switch {
	case p.Horizontal == Moving && p.Facing == dir.opposite():
		p.Horizontal = MovingCancelled
	case p.Horizontal == Idle:
		p.Horizontal = Moving
	}
	p.Facing = dir
}

func (p *Player) release(dir Facing) {
	switch p.Horizontal {
	case Moving:
		p.Horizontal = Idle
	case MovingCancelled:
		p.Horizontal = Moving
		p.Facing = dir.opposite()
	}
}

// Jump launches the player when it is standing on something.
// It reports whether the jump happened.
func (p *Player) Jump() bool {
	if p.Vertical != Grounded {
		return false
	}
	p.Velocity.Y = JumpSpeed
	return true
}

// PreStep applies the walking drive directly to the position and marks the
// player airborne whenever it has vertical speed.
func (p *Player) PreStep() {
	if p.Horizontal == Moving {
		p.Position.X += p.Facing.Sign() * WalkSpeed
	}
	if p.Velocity.Y != 0 {
		p.Vertical = Airborne
	}
}

// commit folds a resolver result back into the player.
func (p *Player) commit(res Resolution) {
	p.Position = res.Position
	if res.Landed {
		p.Velocity.Y = 0
		p.Vertical = Grounded
		return
	}
	if p.Velocity.Y != 0 {
		p.Vertical = Airborne
	}
}
