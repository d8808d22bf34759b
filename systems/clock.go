package systems

import (
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock turns the frame timestamp into a clamped delta. The first
// frame after a (re)start has a delta of zero.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	if !clock.Started {
		clock.Started = true
		clock.Last = clock.Now
		clock.DT = 0
		return
	}

	clock.DT = gamemath.ClampDelta(clock.Now.Sub(clock.Last).Seconds(), cfg.World.MaxDelta)
	clock.Last = clock.Now
}

// DeltaTime returns the clamped delta of the current frame in seconds.
func DeltaTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}
