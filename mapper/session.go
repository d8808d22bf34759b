// Package mapper holds the animation mapping form: the text the user typed
// for each slot, the sprite scale and the preview choice. It survives sheet
// reloads so edits are not lost.
package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/automoto/spritesandbox/assets/animations"
	cfg "github.com/automoto/spritesandbox/config"
)

// Field is one of the three inputs of a slot.
type Field int

const (
	FieldStart Field = iota
	FieldEnd
	FieldFPS
)

// Row is the raw text of one slot's inputs.
type Row struct {
	Start string
	End   string
	FPS   string
}

func (r Row) blank() bool {
	return strings.TrimSpace(r.Start) == "" && strings.TrimSpace(r.End) == ""
}

// Lifecycle is the part of the world the form drives.
type Lifecycle interface {
	Start()
	Stop()
	Running() bool
	UpdateAnimations(catalog animations.Catalog, scale float64)
}

type Session struct {
	Meta          animations.Meta
	Rows          map[animations.Name]*Row
	Scale         float64
	ActivePreview animations.Name
}

func NewSession(meta animations.Meta) *Session {
	s := &Session{
		Rows:          make(map[animations.Name]*Row, len(animations.Names)),
		Scale:         cfg.Mapper.DefaultScale,
		ActivePreview: animations.Idle,
	}
	for _, name := range animations.Names {
		s.Rows[name] = &Row{}
	}
	s.Prefill(meta)
	return s
}

// Prefill switches to meta and fills every slot the user has left blank
// from the metadata's named rows.
func (s *Session) Prefill(meta animations.Meta) {
	s.Meta = meta
	for name, def := range meta.Prefill() {
		row := s.Rows[name]
		if !row.blank() {
			continue
		}
		row.Start = strconv.Itoa(def.StartFrame)
		row.End = strconv.Itoa(def.EndFrame)
		row.FPS = ""
		if def.FPS > 0 {
			row.FPS = formatFPS(def.FPS)
		}
	}
}

func formatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// Set stores the text of one input. Unknown slots are ignored.
func (s *Session) Set(name animations.Name, field Field, value string) {
	row, ok := s.Rows[name]
	if !ok {
		return
	}
	switch field {
	case FieldStart:
		row.Start = value
	case FieldEnd:
		row.End = value
	case FieldFPS:
		row.FPS = value
	}
}

// Get returns the text of one input.
func (s *Session) Get(name animations.Name, field Field) string {
	row, ok := s.Rows[name]
	if !ok {
		return ""
	}
	switch field {
	case FieldStart:
		return row.Start
	case FieldEnd:
		return row.End
	case FieldFPS:
		return row.FPS
	}
	return ""
}

// def parses a slot. It fails for blank or unparsable fields and for ranges
// outside the atlas.
func (s *Session) def(name animations.Name) (animations.Def, bool) {
	row := s.Rows[name]
	if row == nil {
		return animations.Def{}, false
	}
	start, err := strconv.Atoi(strings.TrimSpace(row.Start))
	if err != nil {
		return animations.Def{}, false
	}
	end, err := strconv.Atoi(strings.TrimSpace(row.End))
	if err != nil {
		return animations.Def{}, false
	}

	def := animations.Def{StartFrame: start, EndFrame: end, FPS: s.Meta.FPS}
	if fps, err := strconv.ParseFloat(strings.TrimSpace(row.FPS), 64); err == nil && fps > 0 {
		def.FPS = fps
	}
	if err := (animations.Catalog{name: def}).Validate(s.Meta); err != nil {
		return animations.Def{}, false
	}
	return def, true
}

// Catalog builds the animations the form currently describes.
func (s *Session) Catalog() animations.Catalog {
	out := animations.Catalog{}
	for _, name := range animations.Names {
		if def, ok := s.def(name); ok {
			out[name] = def
		}
	}
	return out
}

// HasIdle reports whether the idle slot is usable; without it there is no
// actor.
func (s *Session) HasIdle() bool {
	_, ok := s.def(animations.Idle)
	return ok
}

// PreviewTarget returns the slot the preview plays: the active one when it
// is defined, else the first defined slot.
func (s *Session) PreviewTarget() (animations.Name, bool) {
	catalog := s.Catalog()
	if _, ok := catalog[s.ActivePreview]; ok {
		return s.ActivePreview, true
	}
	for _, name := range animations.Names {
		if _, ok := catalog[name]; ok {
			return name, true
		}
	}
	return "", false
}

// StepScale moves the scale by steps increments, clamped to the allowed
// range, and returns the new value.
func (s *Session) StepScale(steps int) float64 {
	scale := s.Scale + float64(steps)*cfg.Mapper.ScaleStep
	scale = math.Round(scale/cfg.Mapper.ScaleStep) * cfg.Mapper.ScaleStep
	s.Scale = math.Max(cfg.Mapper.MinScale, math.Min(cfg.Mapper.MaxScale, scale))
	return s.Scale
}

// FormatScale describes the scale and the resulting sprite size.
func (s *Session) FormatScale() string {
	w := math.Round(float64(s.Meta.FrameWidth) * s.Scale)
	h := math.Round(float64(s.Meta.FrameHeight) * s.Scale)
	return fmt.Sprintf("%.2fx (%.0f×%.0fpx)", s.Scale, w, h)
}

// FillFirstEmpty writes frame into the first blank start or end input, in
// slot order. It reports the slot and field it filled.
func (s *Session) FillFirstEmpty(frame int) (animations.Name, Field, bool) {
	value := strconv.Itoa(frame)
	for _, name := range animations.Names {
		row := s.Rows[name]
		if strings.TrimSpace(row.Start) == "" {
			row.Start = value
			return name, FieldStart, true
		}
		if strings.TrimSpace(row.End) == "" {
			row.End = value
			return name, FieldEnd, true
		}
	}
	return "", FieldStart, false
}

// Sync brings the world in line with the form: stopped without idle,
// started on first use, rebuilt otherwise.
func (s *Session) Sync(w Lifecycle) {
	if !s.HasIdle() {
		if w.Running() {
			w.Stop()
		}
		return
	}
	if !w.Running() {
		w.UpdateAnimations(s.Catalog(), s.Scale)
		w.Start()
		return
	}
	w.UpdateAnimations(s.Catalog(), s.Scale)
}
