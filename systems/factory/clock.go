package factory

import (
	"github.com/automoto/spritesandbox/archetypes"
	"github.com/automoto/spritesandbox/components"
	"github.com/automoto/spritesandbox/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{})
	return clock
}

// CreateInput adds the polled input buffer that publishes to store.
func CreateInput(ecs *ecs.ECS, store *input.Store) *donburi.Entry {
	in := archetypes.Input.Spawn(ecs)
	components.Input.Set(in, &components.InputData{Store: store})
	return in
}
