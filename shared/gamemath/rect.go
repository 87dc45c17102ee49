package gamemath

import "math"

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64   { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and o share a region of positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Top() && o.Y < r.Top()
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// Displacement returns the per-axis translation that would move a out of b,
// using the distance between midpoints. Both components are zero unless the
// rectangles overlap with strictly positive depth on both axes. A zero
// midpoint distance on an axis pushes in the positive direction.
func Displacement(a, b Rect) Vec {
	ac, bc := a.Center(), b.Center()
	dx := ac.X - bc.X
	dy := ac.Y - bc.Y

	overlapX := (a.W+b.W)/2 - math.Abs(dx)
	overlapY := (a.H+b.H)/2 - math.Abs(dy)
	if overlapX <= 0 || overlapY <= 0 {
		return Vec{}
	}
	return Vec{X: sign(dx) * overlapX, Y: sign(dy) * overlapY}
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
