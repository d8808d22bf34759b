package components

import (
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/input"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. The current state is also published to Store for the actor.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Store    *input.Store
}

// JustPressed reports an action that went down this frame.
func (i *InputData) JustPressed(action cfg.ActionID) bool {
	return i.Current[action] && !i.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
