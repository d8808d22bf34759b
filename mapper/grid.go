package mapper

import (
	"image"
	"math"
	"sort"

	"github.com/automoto/spritesandbox/assets/animations"
)

const (
	ThumbSize   = 72
	ThumbPad    = 4
	CellSize    = ThumbSize + ThumbPad
	LabelHeight = 18
	MaxColumns  = 10
)

// Cell is one thumbnail of the frame grid, in unscaled grid pixels.
type Cell struct {
	Frame int
	Rect  image.Rectangle
}

// GridRow is a labelled strip of cells, one per named metadata row.
type GridRow struct {
	Label string
	Y     int
}

// Grid lays the atlas frames out as thumbnails. With named rows in the
// metadata each row gets its own labelled strip; otherwise frames flow left
// to right, MaxColumns per line.
type Grid struct {
	Width, Height int
	Cells         []Cell
	Rows          []GridRow
}

// rowNames orders the metadata's named rows: known slots first, then the
// rest alphabetically.
func rowNames(meta animations.Meta) []string {
	var known, other []string
	for _, name := range animations.Names {
		if _, ok := meta.Animations[string(name)]; ok {
			known = append(known, string(name))
		}
	}
	for name := range meta.Animations {
		if !animations.Name(name).Valid() {
			other = append(other, name)
		}
	}
	sort.Strings(other)
	return append(known, other...)
}

func NewGrid(meta animations.Meta) Grid {
	cols := min(meta.Columns, MaxColumns)
	if cols <= 0 {
		return Grid{}
	}
	g := Grid{Width: cols * CellSize}

	if len(meta.Animations) == 0 {
		for i := 0; i < meta.FrameCount; i++ {
			x, y := (i%cols)*CellSize, (i/cols)*CellSize
			g.Cells = append(g.Cells, Cell{Frame: i, Rect: thumbRect(x, y)})
		}
		g.Height = int(math.Ceil(float64(meta.FrameCount)/float64(cols))) * CellSize
		return g
	}

	rowHeight := CellSize + LabelHeight
	for r, name := range rowNames(meta) {
		anim := meta.Animations[name]
		top := r * rowHeight
		g.Rows = append(g.Rows, GridRow{Label: name, Y: top})
		for f := 0; f < anim.Frames && f < cols; f++ {
			frame := anim.Row*meta.Columns + f
			if frame >= meta.FrameCount {
				break
			}
			g.Cells = append(g.Cells, Cell{Frame: frame, Rect: thumbRect(f*CellSize, top+LabelHeight)})
		}
		g.Height = top + rowHeight
	}
	return g
}

func thumbRect(x, y int) image.Rectangle {
	return image.Rect(x+ThumbPad/2, y+ThumbPad/2, x+ThumbPad/2+ThumbSize, y+ThumbPad/2+ThumbSize)
}

// FrameAt maps a point in grid pixels to the frame under it. Points in the
// padding between thumbnails hit the nearest cell's slot.
func (g Grid) FrameAt(x, y int) (int, bool) {
	p := image.Pt(x, y)
	for _, c := range g.Cells {
		slot := image.Rect(c.Rect.Min.X-ThumbPad/2, c.Rect.Min.Y-ThumbPad/2, c.Rect.Max.X+ThumbPad/2, c.Rect.Max.Y+ThumbPad/2)
		if p.In(slot) {
			return c.Frame, true
		}
	}
	return 0, false
}

// Fit returns the scale that shrinks the grid into a w×h box. The grid is
// never enlarged.
func (g Grid) Fit(w, h float64) float64 {
	if g.Width == 0 || g.Height == 0 {
		return 1
	}
	return math.Min(1, math.Min(w/float64(g.Width), h/float64(g.Height)))
}

// ThumbScale is the scale that fits one frame into a thumbnail.
func ThumbScale(meta animations.Meta) float64 {
	return FitScale(meta, ThumbSize, ThumbSize)
}

// FitScale is the largest uniform scale at which a frame fits a w×h box.
func FitScale(meta animations.Meta, w, h float64) float64 {
	if meta.FrameWidth <= 0 || meta.FrameHeight <= 0 {
		return 0
	}
	return math.Min(w/float64(meta.FrameWidth), h/float64(meta.FrameHeight))
}

// Centered returns the top-left at which a frame drawn at scale sits
// centered in a w×h box.
func Centered(meta animations.Meta, scale, w, h float64) (float64, float64) {
	return (w - float64(meta.FrameWidth)*scale) / 2, (h - float64(meta.FrameHeight)*scale) / 2
}
