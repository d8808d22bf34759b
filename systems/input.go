package systems

import (
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the InputComponent and publishes the
// held state to the input store. Runs outside the simulation systems, once
// per host frame, before the world ticks.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	if input.Store != nil {
		input.Store.SetAll(input.Current)
	}
}

// ActionJustPressed reports an action that went down this frame.
func ActionJustPressed(ecs *ecs.ECS, action cfg.ActionID) bool {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).JustPressed(action)
}
