package physics

import (
	"math"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

// Resolution is the outcome of resolving one body for one tick.
type Resolution struct {
	Position gamemath.Vec

	// Landed is set when the body was pushed up out of a tile or stopped by
	// the bottom of the world.
	Landed bool
	// HitWall and HitCeiling record horizontal and downward corrections.
	HitWall    bool
	HitCeiling bool
}

// Resolve moves b by its velocity and separates it from the solid tiles of ix,
// first along x and then along y, and finally keeps it inside bounds.
//
// For each overlapping tile the midpoint displacement picks the shallower
// axis (x wins ties). A push is only applied when the tile beside the
// collided one on the push side is free, so the seams inside a run of solid
// tiles never stop a body. When the shallower axis is blocked that way the
// other axis is used instead, as long as its own side is free.
func Resolve(b *Body, ix *Index, bounds gamemath.Rect) Resolution {
	desired := b.Position.Add(b.Velocity)
	var res Resolution

	for _, t := range ix.Overlapping(b.RectAt(desired)) {
		tr := t.Rect()
		d := gamemath.Displacement(b.RectAt(desired), tr)
		if d == (gamemath.Vec{}) {
			continue
		}
		xOpen, yOpen := openSides(ix, t, d)
		if !xOpen || (math.Abs(d.X) > math.Abs(d.Y) && yOpen) {
			continue
		}
		if d.X > 0 {
			desired.X = tr.Right()
		} else {
			desired.X = tr.X - b.Width
		}
		res.HitWall = true
	}

	for _, t := range ix.Overlapping(b.RectAt(desired)) {
		tr := t.Rect()
		d := gamemath.Displacement(b.RectAt(desired), tr)
		if d == (gamemath.Vec{}) {
			continue
		}
		xOpen, yOpen := openSides(ix, t, d)
		if !yOpen || (math.Abs(d.Y) >= math.Abs(d.X) && xOpen) {
			continue
		}
		if d.Y > 0 {
			desired.Y = tr.Top()
			res.Landed = true
		} else {
			desired.Y = tr.Y - b.Height
			res.HitCeiling = true
		}
	}

	if desired.Y < bounds.Y {
		res.Landed = true
	}
	res.Position = gamemath.ClampToBounds(desired, b.Width, b.Height, bounds)
	return res
}

// openSides reports whether the tiles next to t in the direction of each
// component of d are free.
func openSides(ix *Index, t Tile, d gamemath.Vec) (xOpen, yOpen bool) {
	dc, dr := 1, 1
	if d.X < 0 {
		dc = -1
	}
	if d.Y < 0 {
		dr = -1
	}
	return !ix.occupiedTile(t.Neighbor(dc, 0)), !ix.occupiedTile(t.Neighbor(0, dr))
}
