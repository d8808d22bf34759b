package animations

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Player plays one catalog animation at a time from a fixed-grid atlas.
// A nil atlas is allowed; playback still advances and Draw does nothing.
type Player struct {
	meta    Meta
	catalog Catalog
	atlas   *ebiten.Image

	current Name
	anim    *Animation

	// FlipX mirrors the frame in place when drawing.
	FlipX bool

	frames map[int]*ebiten.Image // sub-images keyed by sheet index
	drawOp ebiten.DrawImageOptions
}

func NewPlayer(meta Meta, catalog Catalog, atlas *ebiten.Image) *Player {
	p := &Player{
		meta:    meta,
		catalog: catalog,
		atlas:   atlas,
		frames:  make(map[int]*ebiten.Image),
	}
	p.SetAnimation(Idle)
	return p
}

// SetAnimation switches to name, or to idle when name is not in the catalog.
// Switching to the animation already playing keeps its cursor.
func (p *Player) SetAnimation(name Name) {
	resolved := name
	if _, ok := p.catalog[resolved]; !ok {
		resolved = Idle
	}
	if resolved == p.current && p.anim != nil {
		return
	}

	def, ok := p.catalog[resolved]
	if !ok {
		p.current = ""
		p.anim = nil
		return
	}

	p.current = resolved
	p.anim = NewAnimation(def.StartFrame, def.EndFrame, p.fps(def))
}

func (p *Player) fps(def Def) float64 {
	if def.FPS > 0 {
		return def.FPS
	}
	return p.meta.FPS
}

// Update advances the current animation by dt seconds.
func (p *Player) Update(dt float64) {
	if p.anim == nil {
		return
	}
	p.anim.Update(dt)
}

// Current returns the playing animation, or "" when nothing resolves.
func (p *Player) Current() Name {
	return p.current
}

// Frame returns the offset of the current frame within its range.
func (p *Player) Frame() int {
	if p.anim == nil {
		return 0
	}
	return p.anim.Offset()
}

// Elapsed returns the accumulated sub-frame time of the current animation.
func (p *Player) Elapsed() float64 {
	if p.anim == nil {
		return 0
	}
	return p.anim.Elapsed()
}

// SheetIndex returns the atlas index of the current frame.
func (p *Player) SheetIndex() int {
	if p.anim == nil {
		return 0
	}
	return p.anim.Frame()
}

// SourceRect returns the atlas rectangle to draw, false when unresolved.
func (p *Player) SourceRect() (image.Rectangle, bool) {
	if p.anim == nil {
		return image.Rectangle{}, false
	}
	return p.meta.FrameRect(p.anim.Frame()), true
}

// GeoM returns the transform that places the current frame at (x, y) with
// uniform scale. Mirroring happens inside the frame so the top-left corner
// of the destination box stays at (x, y).
func (p *Player) GeoM(x, y, scale float64) ebiten.GeoM {
	var g ebiten.GeoM
	if p.FlipX {
		g.Scale(-1, 1)
		g.Translate(float64(p.meta.FrameWidth), 0)
	}
	g.Scale(scale, scale)
	g.Translate(x, y)
	return g
}

// Draw renders the current frame onto dst.
func (p *Player) Draw(dst *ebiten.Image, x, y, scale float64) {
	if p.atlas == nil || dst == nil {
		return
	}
	rect, ok := p.SourceRect()
	if !ok {
		return
	}

	idx := p.anim.Frame()
	img, cached := p.frames[idx]
	if !cached {
		img = p.atlas.SubImage(rect).(*ebiten.Image)
		p.frames[idx] = img
	}

	p.drawOp.GeoM = p.GeoM(x, y, scale)
	p.drawOp.Filter = ebiten.FilterNearest
	dst.DrawImage(img, &p.drawOp)
}
