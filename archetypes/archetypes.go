package archetypes

import (
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Platform,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		tags.FloatingPlatform,
		components.Object,
		components.Platform,
		components.Tween,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
