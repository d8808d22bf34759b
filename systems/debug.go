package systems

import (
	"image/color"

	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func drawOutline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

// DrawDebug outlines every body in the space and the actor's box when
// cfg.Debug.DrawBoxes is set.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}

	camX := CameraX(ecs)
	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if obj.HasTags(tags.ResolvViewport) {
				continue
			}
			// Cull objects outside viewport
			if obj.X+obj.W < camX || obj.X > camX+viewW || obj.Y+obj.H < 0 || obj.Y > viewH {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			}
			drawOutline(screen, obj.X-camX, obj.Y, obj.W, obj.H, c)
		}
	}

	if a := GetActor(ecs); a != nil {
		c := cfg.LightRed
		if a.Grounded {
			c = cfg.LightGreen
		}
		drawOutline(screen, a.X-camX, a.Y, a.W, a.H, c)
	}
}
