package gamemath

// Viewport maps the y-up world onto a y-down screen. Center is the world
// point shown in the middle of the screen.
type Viewport struct {
	Center Vec
	W, H   float64
}

// Left is the world x shown at the screen's left edge.
func (v Viewport) Left() float64 { return v.Center.X - v.W/2 }

// Top is the world y shown at the screen's top edge.
func (v Viewport) Top() float64 { return v.Center.Y + v.H/2 }

// World returns the visible world rectangle.
func (v Viewport) World() Rect {
	return Rect{X: v.Left(), Y: v.Top() - v.H, W: v.W, H: v.H}
}

// ToScreen returns the screen position of a world point.
func (v Viewport) ToScreen(p Vec) Vec {
	return Vec{X: p.X - v.Left(), Y: v.Top() - p.Y}
}

// RectToScreen returns the screen-space top-left corner of a world
// rectangle anchored at its bottom-left.
func (v Viewport) RectToScreen(r Rect) Vec {
	return Vec{X: r.X - v.Left(), Y: v.Top() - (r.Y + r.H)}
}

// ToWorld is the inverse of ToScreen.
func (v Viewport) ToWorld(sx, sy float64) Vec {
	return Vec{X: sx + v.Left(), Y: v.Top() - sy}
}

// Visible reports whether any part of r is on screen.
func (v Viewport) Visible(r Rect) bool {
	return v.World().Overlaps(r)
}
