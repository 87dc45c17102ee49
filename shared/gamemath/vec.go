// Package gamemath holds the pure geometry shared by the simulation core and
// the presentation layer. Coordinates are y-up with bottom-left anchors.
package gamemath

import "math"

// Vec is a 2D vector in world pixels.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(v.Y, v.X).
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar returns the vector of magnitude m pointing along angle theta.
func Polar(m, theta float64) Vec {
	return Vec{X: m * math.Cos(theta), Y: m * math.Sin(theta)}
}
