package systems

import (
	"math"
	"sort"

	"github.com/automoto/spritesandbox/actor"
	"github.com/automoto/spritesandbox/components"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/automoto/spritesandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each floating platform's tween and moves
// its body. Runs before the actor so platforms hold still for the rest of
// the frame. An actor standing on a platform moves with it.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	dt := float32(DeltaTime(ecs))
	if dt <= 0 {
		return
	}
	a := GetActor(ecs)

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}
		riding := a != nil && standsOn(a, obj.Rect())
		dy := float64(y) - obj.Y
		obj.Y = float64(y)
		if riding {
			a.Y += dy
		}
	})
}

// standsOn reports whether a is grounded with its feet on top of r.
func standsOn(a *actor.Actor, r gamemath.Rect) bool {
	feet := a.Rect()
	return a.Grounded &&
		math.Abs(feet.Bottom()-r.Y) < 1e-6 &&
		feet.X < r.Right() && feet.Right() > r.X
}

// Platforms returns the world's platforms in creation order.
func Platforms(ecs *ecs.ECS) []actor.Platform {
	type ordered struct {
		order int
		p     actor.Platform
	}
	var list []ordered
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		data := components.Platform.Get(e)
		list = append(list, ordered{
			order: data.Order,
			p: actor.Platform{
				X:     obj.X,
				Y:     obj.Y,
				W:     obj.W,
				H:     obj.H,
				Color: data.Color,
			},
		})
	})
	sort.Slice(list, func(i, j int) bool { return list[i].order < list[j].order })

	out := make([]actor.Platform, len(list))
	for i, o := range list {
		out[i] = o.p
	}
	return out
}
