package systems

import (
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds keeps the actor inside the level horizontally and puts it
// back on the spawn point when it falls too far below the ground.
func UpdateBounds(ecs *ecs.ECS) {
	a := GetActor(ecs)
	if a == nil {
		return
	}

	width := float64(cfg.World.ViewWidth)
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		width = components.Level.Get(levelEntry).Width
	}
	a.X = gamemath.Clamp(a.X, 0, width-a.W)

	if a.Y > cfg.World.GroundY+cfg.World.FallMargin {
		a.X = cfg.World.SpawnX
		a.Y = cfg.World.GroundY - a.H
		a.VY = 0
	}
}
