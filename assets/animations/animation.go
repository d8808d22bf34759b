package animations

// Animation is a time-based playback cursor over an inclusive frame range.
// Frames advance once per 1/FPS seconds and wrap back to First.
type Animation struct {
	First   int
	Last    int
	FPS     float64
	elapsed float64
	offset  int
}

// Update advances the cursor by dt seconds. Long steps advance several
// frames so the total advance stays floor(T×fps) over any dt sequence.
func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || dt <= 0 {
		return
	}
	period := 1 / a.FPS
	length := a.Len()

	a.elapsed += dt
	for a.elapsed >= period {
		a.elapsed -= period
		a.offset++
		if a.offset >= length {
			a.offset = 0
		}
	}
}

// Frame returns the atlas index of the current frame.
func (a *Animation) Frame() int {
	return a.First + a.offset
}

// Offset returns the position of the current frame within the range.
func (a *Animation) Offset() int {
	return a.offset
}

// Elapsed returns the accumulated sub-frame time in seconds.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

// Len returns the number of frames in the range.
func (a *Animation) Len() int {
	if a.Last < a.First {
		return 1
	}
	return a.Last - a.First + 1
}

// NewAnimation returns a cursor parked on first with no elapsed time.
func NewAnimation(first, last int, fps float64) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		FPS:   fps,
	}
}
