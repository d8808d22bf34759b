package components

import (
	"github.com/automoto/spritesandbox/actor"
	"github.com/yohamta/donburi"
)

// ActorData points at the world's single kinematic actor. The pointer is
// swapped when animations or scale change.
type ActorData struct {
	Actor *actor.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
