package components

import (
	"github.com/automoto/spritesandbox/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level // nil for the static single-ground variant
	Width        float64       // horizontal bounds for the actor
	Scrolling    bool
}

var Level = donburi.NewComponentType[LevelData]()
