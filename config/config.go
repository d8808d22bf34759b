package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the sandbox ECS.
const Default ecs.LayerID = 0

// PhysicsConfig contains the actor's movement constants (pixels and seconds)
type PhysicsConfig struct {
	Gravity     float64 // px/s²
	WalkSpeed   float64 // px/s
	RunSpeed    float64 // px/s, used while the fast modifier is held
	JumpImpulse float64 // px/s, negative is up
}

// WorldConfig contains the sandbox world layout and loop constants
type WorldConfig struct {
	// Canvas
	ViewWidth  int
	ViewHeight int

	// Ground
	GroundY      float64
	GroundHeight float64
	GroundInset  float64 // top highlight strip height

	// Respawn
	FallMargin float64 // distance below GroundY that triggers a respawn
	SpawnX     float64

	// Loop
	MaxDelta float64 // seconds, dt is clamped to this

	// Scrolling variant
	LevelName  string
	CameraLead float64 // actor sits at ViewWidth/CameraLead from the left edge

	// Floating platforms
	FloatTravel   float64 // default travel in px when the level does not set one
	FloatDuration float32 // seconds per leg

	// Spatial hash cell size for the resolv space
	CellSize int
}

// MapperConfig contains mapper screen configuration values
type MapperConfig struct {
	MinScale     float64
	MaxScale     float64
	ScaleStep    float64
	DefaultScale float64

	PanelWidth int

	// Preview box (screen space)
	PreviewX, PreviewY float64
	PreviewW, PreviewH float64

	// Frame grid (screen space)
	GridX, GridY float64
	GridW, GridH float64

	// World canvas offset (screen space)
	WorldX, WorldY float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBoxes bool // Draw resolv boxes over platforms and the actor
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var World WorldConfig
var Mapper MapperConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightGray     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Gray          = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightRed      = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	LightGreen    = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	SkyTop        = color.RGBA{R: 0x0f, G: 0x0f, B: 0x23, A: 255}
	SkyBottom     = color.RGBA{R: 0x1a, G: 0x1a, B: 0x3e, A: 255}
	GroundColor   = color.RGBA{R: 0x1e, G: 0x3a, B: 0x5f, A: 255}
	FloatingColor = color.RGBA{R: 0x2e, G: 0x5a, B: 0x88, A: 255}
	Highlight     = color.RGBA{R: 20, G: 20, B: 20, A: 20} // white at 8% alpha, premultiplied
	PanelColor    = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BoxColor      = color.RGBA{R: 30, G: 30, B: 45, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Sprite Sandbox",
	}

	Physics = PhysicsConfig{
		Gravity:     980,
		WalkSpeed:   200,
		RunSpeed:    360,
		JumpImpulse: -420,
	}

	World = WorldConfig{
		ViewWidth:  800,
		ViewHeight: 440,

		GroundY:      400,
		GroundHeight: 40,
		GroundInset:  3,

		FallMargin: 200,
		SpawnX:     100,

		MaxDelta: 0.05,

		LevelName:  "sandbox",
		CameraLead: 3,

		FloatTravel:   96,
		FloatDuration: 2,

		CellSize: 16,
	}

	Mapper = MapperConfig{
		MinScale:     0.05,
		MaxScale:     1,
		ScaleStep:    0.05,
		DefaultScale: 0.25,

		PanelWidth: 440,

		PreviewX: 460, PreviewY: 480,
		PreviewW: 220, PreviewH: 220,

		GridX: 700, GridY: 480,
		GridW: 560, GridH: 220,

		WorldX: 460, WorldY: 20,
	}
}
