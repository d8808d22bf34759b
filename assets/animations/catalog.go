package animations

import (
	"errors"
	"fmt"
	"image"
)

// Name identifies one of the fixed animation slots.
type Name string

const (
	Idle   Name = "idle"
	Walk   Name = "walk"
	Run    Name = "run"
	Jump   Name = "jump"
	Crouch Name = "crouch"
)

// Names lists every slot in display order.
var Names = []Name{Idle, Walk, Run, Jump, Crouch}

// Valid reports whether n is one of the known animation names.
func (n Name) Valid() bool {
	for _, known := range Names {
		if n == known {
			return true
		}
	}
	return false
}

// Required reports whether the actor cannot run without this slot.
func (n Name) Required() bool {
	return n == Idle
}

func (n Name) String() string {
	return string(n)
}

var (
	ErrUnknownName = errors.New("unknown animation name")
	ErrBadRange    = errors.New("frame range out of bounds")
)

// Def is a frame range (EndFrame inclusive) with an optional playback rate.
// FPS <= 0 means the atlas default.
type Def struct {
	StartFrame int
	EndFrame   int
	FPS        float64
}

// Len returns the number of frames in the inclusive range.
func (d Def) Len() int {
	return d.EndFrame - d.StartFrame + 1
}

// Catalog maps animation names to their definitions.
type Catalog map[Name]Def

// Viable reports whether an actor can be built from the catalog.
func (c Catalog) Viable() bool {
	_, ok := c[Idle]
	return ok
}

// Validate checks every entry against the atlas frame count.
func (c Catalog) Validate(meta Meta) error {
	for name, def := range c {
		if !name.Valid() {
			return fmt.Errorf("%q: %w", name, ErrUnknownName)
		}
		if def.StartFrame < 0 || def.StartFrame > def.EndFrame || def.EndFrame > meta.FrameCount-1 {
			return fmt.Errorf("%s %d-%d of %d frames: %w", name, def.StartFrame, def.EndFrame, meta.FrameCount, ErrBadRange)
		}
	}
	return nil
}

// Clone returns an independent copy.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// RowAnimation describes an animation laid out on a single atlas row.
type RowAnimation struct {
	Row    int     `json:"row" yaml:"row"`
	Frames int     `json:"frames" yaml:"frames"`
	FPS    float64 `json:"fps,omitempty" yaml:"fps,omitempty"`
}

// Meta describes a fixed-grid spritesheet atlas.
type Meta struct {
	FrameWidth  int                     `json:"frameWidth" yaml:"frameWidth"`
	FrameHeight int                     `json:"frameHeight" yaml:"frameHeight"`
	FrameCount  int                     `json:"frameCount" yaml:"frameCount"`
	Columns     int                     `json:"columns" yaml:"columns"`
	Rows        int                     `json:"rows" yaml:"rows"`
	FPS         float64                 `json:"fps" yaml:"fps"`
	Animations  map[string]RowAnimation `json:"animations,omitempty" yaml:"animations,omitempty"`
}

// FrameRect returns the atlas rectangle of linear frame index i.
func (m Meta) FrameRect(i int) image.Rectangle {
	cols := m.Columns
	if cols <= 0 {
		cols = 1
	}
	x := (i % cols) * m.FrameWidth
	y := (i / cols) * m.FrameHeight
	return image.Rect(x, y, x+m.FrameWidth, y+m.FrameHeight)
}

// FrameAt maps a point in atlas pixel space back to a frame index.
func (m Meta) FrameAt(px, py int) (int, bool) {
	if m.FrameWidth <= 0 || m.FrameHeight <= 0 || px < 0 || py < 0 {
		return 0, false
	}
	col, row := px/m.FrameWidth, py/m.FrameHeight
	if col >= m.Columns || row >= m.Rows {
		return 0, false
	}
	i := row*m.Columns + col
	if i >= m.FrameCount {
		return 0, false
	}
	return i, true
}

// Prefill builds catalog entries from the named rows in the metadata.
// Rows whose range falls outside the atlas are skipped.
func (m Meta) Prefill() Catalog {
	out := Catalog{}
	for _, name := range Names {
		row, ok := m.Animations[string(name)]
		if !ok || row.Frames <= 0 {
			continue
		}
		start := row.Row * m.Columns
		def := Def{
			StartFrame: start,
			EndFrame:   start + row.Frames - 1,
			FPS:        row.FPS,
		}
		if def.StartFrame < 0 || def.EndFrame > m.FrameCount-1 {
			continue
		}
		out[name] = def
	}
	return out
}
