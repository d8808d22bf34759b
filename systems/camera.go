package systems

import (
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the actor in scrolling levels. The offset is
// recomputed every frame without smoothing.
func UpdateCamera(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	a := GetActor(ecs)
	if levelData.Scrolling && a != nil {
		camera.Position.X = gamemath.CameraX(a.X, float64(cfg.World.ViewWidth), levelData.Width, cfg.World.CameraLead)
	} else {
		camera.Position.X = 0
	}
	camera.Position.Y = 0

	if camera.Viewport != nil {
		camera.Viewport.X = camera.Position.X
		camera.Viewport.Y = camera.Position.Y
		camera.Viewport.Update()
	}
}

// CameraX returns the current horizontal camera offset.
func CameraX(ecs *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Camera.Get(cameraEntry).Position.X
}
