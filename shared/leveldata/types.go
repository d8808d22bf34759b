// Package leveldata parses Tiled TMX levels into plain platform data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "image/color"

// LevelData holds everything the sandbox needs from a TMX level file.
type LevelData struct {
	Name      string
	Platforms []PlatformRect
	MapWidth  int
	MapHeight int
}

// PlatformRect is one rectangle from the Platforms object group, in file order.
type PlatformRect struct {
	X, Y, W, H float64
	Color      color.RGBA
	HasColor   bool
	Floating   bool
	Travel     float64 // vertical travel in px for floating platforms, 0 = default
}
