package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData carries the frame time into the systems. Now is written by the
// world before each update; DT is the clamped delta in seconds.
type ClockData struct {
	Now     time.Time
	Last    time.Time
	DT      float64
	Started bool
}

var Clock = donburi.NewComponentType[ClockData]()
