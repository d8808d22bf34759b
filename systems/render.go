package systems

import (
	"image"
	"image/color"
	"sort"

	"github.com/automoto/spritesandbox/components"
	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/shared/gamemath"
	"github.com/automoto/spritesandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	skyImage  *ebiten.Image
	skyDrawOp = &ebiten.DrawImageOptions{}
)

// skyGradient builds a one pixel wide vertical gradient between the two sky
// colors. It is stretched over the whole view when drawn.
func skyGradient(height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, height))
	for y := 0; y < height; y++ {
		img.SetRGBA(0, y, lerpRGBA(cfg.SkyTop, cfg.SkyBottom, float64(y)/float64(max(height-1, 1))))
	}
	return img
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// DrawBackground fills the view with the sky gradient.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if skyImage == nil {
		skyImage = ebiten.NewImageFromImage(skyGradient(cfg.World.ViewHeight))
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	skyDrawOp.GeoM.Reset()
	skyDrawOp.GeoM.Scale(float64(w), float64(h)/float64(cfg.World.ViewHeight))
	screen.DrawImage(skyImage, skyDrawOp)
}

// visiblePlatforms returns the platform entries overlapping the camera's
// viewport, in creation order.
func visiblePlatforms(ecs *ecs.ECS) []*donburi.Entry {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	camera := components.Camera.Get(cameraEntry)

	var entries []*donburi.Entry
	if camera.Viewport == nil {
		tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
			entries = append(entries, e)
		})
	} else if check := camera.Viewport.Check(0, 0, tags.ResolvSolid); check != nil {
		view := gamemath.Rect{X: camera.Viewport.X, Y: camera.Viewport.Y, W: camera.Viewport.W, H: camera.Viewport.H}
		for _, obj := range check.Objects {
			e, ok := obj.Data.(*donburi.Entry)
			if !ok || !e.Valid() || !e.HasComponent(components.Platform) {
				continue
			}
			// Cells are coarser than the view; keep only real overlaps.
			if !gamemath.Overlaps(view, components.Object.Get(e).Rect()) {
				continue
			}
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return components.Platform.Get(entries[i]).Order < components.Platform.Get(entries[j]).Order
	})
	return entries
}

// DrawPlatforms fills each visible platform with its color and a light strip
// along its top edge.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camX := CameraX(ecs)
	for _, e := range visiblePlatforms(ecs) {
		obj := components.Object.Get(e)
		data := components.Platform.Get(e)

		x := float32(obj.X - camX)
		y := float32(obj.Y)
		vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), data.Color, false)
		vector.FillRect(screen, x, y, float32(obj.W), float32(cfg.World.GroundInset), cfg.Highlight, false)
	}
}

// DrawActor renders the actor's current frame.
func DrawActor(ecs *ecs.ECS, screen *ebiten.Image) {
	a := GetActor(ecs)
	if a == nil {
		return
	}
	a.Draw(screen, CameraX(ecs))
}
