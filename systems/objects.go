package systems

import (
	"github.com/automoto/spritesandbox/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-buckets every body in the resolv space after it moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
