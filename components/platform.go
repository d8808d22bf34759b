package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Color color.RGBA
	Order int // creation order, used for collision and draw order
}

var Platform = donburi.NewComponentType[PlatformData]()
