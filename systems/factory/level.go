package factory

import (
	"github.com/automoto/spritesandbox/archetypes"
	"github.com/automoto/spritesandbox/assets"
	"github.com/automoto/spritesandbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the world's horizontal bounds. lvl is nil for the
// static variant, where the bounds are the view width.
func CreateLevel(ecs *ecs.ECS, lvl *assets.Level, viewWidth float64) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelData := &components.LevelData{
		CurrentLevel: lvl,
		Width:        viewWidth,
	}
	if lvl != nil {
		levelData.Width = float64(lvl.Width)
		levelData.Scrolling = true
	}

	components.Level.Set(level, levelData)
	return level
}
