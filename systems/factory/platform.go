package factory

import (
	"image/color"

	"github.com/automoto/spritesandbox/archetypes"
	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newPlatformObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}

// CreatePlatform adds a static platform. order fixes its place in collision
// and draw passes.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64, c color.RGBA, order int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	newPlatformObject(ecs, platform, x, y, w, h)
	components.Platform.SetValue(platform, components.PlatformData{
		Color: c,
		Order: order,
	})
	return platform
}

// CreateFloatingPlatform adds a platform that rises by travel pixels and
// returns, one leg every cfg.World.FloatDuration seconds.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel float64, c color.RGBA, order int) *donburi.Entry {
	if travel <= 0 {
		travel = cfg.World.FloatTravel
	}

	platform := archetypes.FloatingPlatform.Spawn(ecs)
	obj := newPlatformObject(ecs, platform, x, y, w, h)
	components.Platform.SetValue(platform, components.PlatformData{
		Color: c,
		Order: order,
	})

	// The floating platform moves using a *gween.Sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	leg := cfg.World.FloatDuration
	tw.Add(
		gween.New(float32(obj.Y), float32(obj.Y-travel), leg, ease.InOutSine),
		gween.New(float32(obj.Y-travel), float32(obj.Y), leg, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
