package tags

import "github.com/yohamta/donburi"

var (
	Actor            = donburi.NewTag().SetName("Actor")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags
const (
	ResolvSolid    = "solid"
	ResolvViewport = "viewport"
)
