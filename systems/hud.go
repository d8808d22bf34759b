package systems

import (
	"fmt"

	cfg "github.com/automoto/spritesandbox/config"
	"github.com/automoto/spritesandbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

const hudKeys = "←/→ move   ↑ jump   ↓ crouch   shift run"

// HUDLine formats the actor status shown in the corner of the world view.
func HUDLine(state string, x, y float64, grounded bool) string {
	return fmt.Sprintf("%s  x:%.0f y:%.0f  grounded:%v", state, x, y, grounded)
}

// DrawHUD renders the actor's state and the key hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Face()

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(cfg.LightGray)
	text.Draw(screen, hudKeys, face, op)

	a := GetActor(ecs)
	if a == nil {
		return
	}
	op.GeoM.Translate(0, hudLineHeight)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, HUDLine(a.State.String(), a.X, a.Y, a.Grounded), face, op)
}
