package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2      // top-left of the view in world space
	Viewport *resolv.Object // view-sized box in the space, used for culling
}

var Camera = donburi.NewComponentType[CameraData]()
