package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a floating platform's Y back and forth.
var Tween = donburi.NewComponentType[gween.Sequence]()
