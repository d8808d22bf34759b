package actor

import "github.com/automoto/spritesandbox/shared/gamemath"

// resolveX pushes the actor out of every platform it overlaps after the
// horizontal step. The first overlap snaps the leading edge and stops the
// actor; later overlaps in the same pass only keep vx at zero.
func (a *Actor) resolveX(platforms []Platform) {
	for _, p := range platforms {
		if !gamemath.Overlaps(a.Rect(), p.Rect()) {
			continue
		}
		if a.VX > 0 {
			a.X = p.X - a.W
		} else if a.VX < 0 {
			a.X = p.X + p.W
		}
		a.VX = 0
	}
}

// resolveY lands the actor on platform tops when falling and stops it under
// platform bottoms when rising.
func (a *Actor) resolveY(platforms []Platform) {
	for _, p := range platforms {
		if !gamemath.Overlaps(a.Rect(), p.Rect()) {
			continue
		}
		if a.VY > 0 {
			a.Y = p.Y - a.H
			a.VY = 0
			a.Grounded = true
		} else if a.VY < 0 {
			a.Y = p.Y + p.H
			a.VY = 0
		}
	}
}
