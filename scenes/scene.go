package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options carries the command line into the scenes.
type Options struct {
	ImagePath string // sheet loaded on start, if set with MetaPath
	MetaPath  string
	Scrolling bool
	Scale     float64
	Watch     bool
}

func (o Options) hasFiles() bool {
	return o.ImagePath != "" && o.MetaPath != ""
}

func drawText(screen *ebiten.Image, msg string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, face, op)
}
