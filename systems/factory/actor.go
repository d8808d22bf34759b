package factory

import (
	"github.com/automoto/spritesandbox/actor"
	"github.com/automoto/spritesandbox/archetypes"
	"github.com/automoto/spritesandbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateActor adds the entity that holds the world's actor.
func CreateActor(ecs *ecs.ECS, a *actor.Actor) *donburi.Entry {
	e := archetypes.Actor.Spawn(ecs)
	components.Actor.SetValue(e, components.ActorData{Actor: a})
	return e
}
