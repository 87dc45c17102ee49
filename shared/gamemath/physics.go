package gamemath

// Clamp limits v to [lo, hi]. When lo > hi the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampToBounds keeps a w x h box anchored at pos inside bounds.
func ClampToBounds(pos Vec, w, h float64, bounds Rect) Vec {
	return Vec{
		X: Clamp(pos.X, bounds.X, bounds.Right()-w),
		Y: Clamp(pos.Y, bounds.Y, bounds.Top()-h),
	}
}

// AimVelocity returns a velocity of the given speed pointing from origin
// toward target. A zero-length aim yields a zero velocity.
func AimVelocity(origin, target Vec, speed float64) Vec {
	dir := target.Sub(origin)
	if dir.X == 0 && dir.Y == 0 {
		return Vec{}
	}
	return Polar(speed, dir.Angle())
}

// FollowTarget returns the view centre that keeps focus on screen while not
// showing anything outside bounds. On an axis where the view is larger than
// the world, the view centres on the world.
func FollowTarget(focus Vec, viewW, viewH float64, bounds Rect) Vec {
	return Vec{
		X: followAxis(focus.X, viewW, bounds.X, bounds.W),
		Y: followAxis(focus.Y, viewH, bounds.Y, bounds.H),
	}
}

func followAxis(focus, view, origin, extent float64) float64 {
	if view >= extent {
		return origin + extent/2
	}
	return Clamp(focus, origin+view/2, origin+extent-view/2)
}
