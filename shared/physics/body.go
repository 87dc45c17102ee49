package physics

import "github.com/bitwiserain/springshot/shared/gamemath"

// Body is an axis-aligned box with a position and a per-tick velocity.
type Body struct {
	Position gamemath.Vec
	Velocity gamemath.Vec
	Width    float64
	Height   float64
}

// Rect returns the box at the current position.
func (b *Body) Rect() gamemath.Rect {
	return b.RectAt(b.Position)
}

// RectAt returns the box as it would be at pos.
func (b *Body) RectAt(pos gamemath.Vec) gamemath.Rect {
	return gamemath.Rect{X: pos.X, Y: pos.Y, W: b.Width, H: b.Height}
}

// Center returns the midpoint of the box.
func (b *Body) Center() gamemath.Vec {
	return b.Rect().Center()
}
