package factory

import (
	"github.com/automoto/spritesandbox/archetypes"
	"github.com/automoto/spritesandbox/components"
	"github.com/automoto/spritesandbox/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera adds the camera and its view-sized culling box.
func CreateCamera(ecs *ecs.ECS, viewWidth, viewHeight float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	viewport := resolv.NewObject(0, 0, viewWidth, viewHeight, tags.ResolvViewport)
	addToSpace(ecs, viewport)
	components.Camera.Set(camera, &components.CameraData{Viewport: viewport})
	return camera
}
