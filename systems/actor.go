package systems

import (
	"github.com/automoto/spritesandbox/actor"
	"github.com/automoto/spritesandbox/components"
	"github.com/yohamta/donburi/ecs"
)

// GetActor returns the world's actor, or nil when none is spawned.
func GetActor(ecs *ecs.ECS) *actor.Actor {
	entry, ok := components.Actor.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Actor.Get(entry).Actor
}

// UpdateActor steps the actor against this frame's platforms.
func UpdateActor(ecs *ecs.ECS) {
	a := GetActor(ecs)
	if a == nil {
		return
	}
	a.Update(DeltaTime(ecs), Platforms(ecs))
}
