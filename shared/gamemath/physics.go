package gamemath

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ClampDelta returns the elapsed seconds capped at max. Negative elapsed
// time (clock went backwards) yields 0.
func ClampDelta(elapsed, max float64) float64 {
	if elapsed < 0 {
		return 0
	}
	if elapsed > max {
		return max
	}
	return elapsed
}

// CameraX returns the horizontal camera offset that keeps targetX at
// viewWidth/lead from the left edge, clamped to the level.
func CameraX(targetX, viewWidth, levelWidth, lead float64) float64 {
	maxX := levelWidth - viewWidth
	if maxX < 0 {
		maxX = 0
	}
	return Clamp(targetX-viewWidth/lead, 0, maxX)
}
