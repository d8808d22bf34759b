package mapper

import (
	"math"
	"testing"

	"github.com/automoto/spritesandbox/assets/animations"
)

func sheetMeta() animations.Meta {
	return animations.Meta{
		FrameWidth:  32,
		FrameHeight: 48,
		FrameCount:  24,
		Columns:     6,
		Rows:        4,
		FPS:         8,
		Animations: map[string]animations.RowAnimation{
			"idle": {Row: 0, Frames: 4},
			"walk": {Row: 1, Frames: 6, FPS: 12},
			"wave": {Row: 3, Frames: 2},
		},
	}
}

type fakeWorld struct {
	running bool
	starts  int
	stops   int
	updates int
	catalog animations.Catalog
	scale   float64
}

func (f *fakeWorld) Start()        { f.running = true; f.starts++ }
func (f *fakeWorld) Stop()         { f.running = false; f.stops++ }
func (f *fakeWorld) Running() bool { return f.running }
func (f *fakeWorld) UpdateAnimations(c animations.Catalog, scale float64) {
	f.updates++
	f.catalog, f.scale = c, scale
}

func TestNewSessionPrefillsNamedRows(t *testing.T) {
	s := NewSession(sheetMeta())

	tests := []struct {
		name            animations.Name
		start, end, fps string
	}{
		{animations.Idle, "0", "3", ""},
		{animations.Walk, "6", "11", "12"},
		{animations.Run, "", "", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			row := s.Rows[tt.name]
			if row.Start != tt.start || row.End != tt.end || row.FPS != tt.fps {
				t.Errorf("row = %+v, want %q %q %q", *row, tt.start, tt.end, tt.fps)
			}
		})
	}
	if s.Scale != 0.25 {
		t.Errorf("Scale = %v, want 0.25", s.Scale)
	}
}

func TestPrefillKeepsUserEdits(t *testing.T) {
	s := NewSession(sheetMeta())
	s.Set(animations.Idle, FieldStart, "1")
	s.Set(animations.Walk, FieldStart, "")
	s.Set(animations.Walk, FieldEnd, "")

	s.Prefill(sheetMeta())

	if got := s.Get(animations.Idle, FieldStart); got != "1" {
		t.Errorf("idle start = %q, want the user's 1", got)
	}
	if got := s.Get(animations.Walk, FieldEnd); got != "11" {
		t.Errorf("cleared walk end = %q, want refilled 11", got)
	}
}

func TestCatalogSkipsBlankAndInvalidRows(t *testing.T) {
	s := NewSession(animations.Meta{FrameWidth: 8, FrameHeight: 8, FrameCount: 10, Columns: 5, Rows: 2, FPS: 6})
	s.Set(animations.Idle, FieldStart, "0")
	s.Set(animations.Idle, FieldEnd, "2")
	s.Set(animations.Walk, FieldStart, "3")
	s.Set(animations.Walk, FieldEnd, "12") // past the last frame
	s.Set(animations.Run, FieldStart, "5")
	s.Set(animations.Run, FieldEnd, "4") // reversed
	s.Set(animations.Jump, FieldStart, "x")
	s.Set(animations.Jump, FieldEnd, "4")
	s.Set(animations.Crouch, FieldStart, " 7 ")
	s.Set(animations.Crouch, FieldEnd, "9")
	s.Set(animations.Crouch, FieldFPS, "15")

	got := s.Catalog()
	want := animations.Catalog{
		animations.Idle:   {StartFrame: 0, EndFrame: 2, FPS: 6},
		animations.Crouch: {StartFrame: 7, EndFrame: 9, FPS: 15},
	}
	if len(got) != len(want) {
		t.Fatalf("Catalog() = %v, want %v", got, want)
	}
	for name, def := range want {
		if got[name] != def {
			t.Errorf("%s = %+v, want %+v", name, got[name], def)
		}
	}
	if !s.HasIdle() {
		t.Error("HasIdle() = false")
	}
}

func TestPreviewTarget(t *testing.T) {
	s := NewSession(sheetMeta())

	s.ActivePreview = animations.Walk
	if got, ok := s.PreviewTarget(); !ok || got != animations.Walk {
		t.Errorf("PreviewTarget() = %q %v, want walk", got, ok)
	}

	s.ActivePreview = animations.Run
	if got, _ := s.PreviewTarget(); got != animations.Idle {
		t.Errorf("undefined active slot: got %q, want idle", got)
	}

	s.Set(animations.Idle, FieldEnd, "")
	if got, _ := s.PreviewTarget(); got != animations.Walk {
		t.Errorf("without idle: got %q, want walk", got)
	}

	s.Set(animations.Walk, FieldEnd, "")
	if _, ok := s.PreviewTarget(); ok {
		t.Error("no defined slot should have no preview")
	}
}

func TestStepScaleClamps(t *testing.T) {
	tests := []struct {
		name  string
		from  float64
		steps int
		want  float64
	}{
		{"up", 0.25, 1, 0.30},
		{"down", 0.25, -2, 0.15},
		{"floor", 0.1, -5, 0.05},
		{"ceiling", 0.95, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(sheetMeta())
			s.Scale = tt.from
			if got := s.StepScale(tt.steps); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("StepScale(%d) = %v, want %v", tt.steps, got, tt.want)
			}
		})
	}
}

func TestFormatScale(t *testing.T) {
	s := NewSession(sheetMeta())
	if got := s.FormatScale(); got != "0.25x (8×12px)" {
		t.Errorf("FormatScale() = %q", got)
	}
	s.Scale = 1
	if got := s.FormatScale(); got != "1.00x (32×48px)" {
		t.Errorf("FormatScale() = %q", got)
	}
}

func TestFillFirstEmpty(t *testing.T) {
	s := NewSession(sheetMeta())

	name, field, ok := s.FillFirstEmpty(13)
	if !ok || name != animations.Run || field != FieldStart {
		t.Fatalf("first fill = %s %v %v, want run start", name, field, ok)
	}
	name, field, _ = s.FillFirstEmpty(15)
	if name != animations.Run || field != FieldEnd {
		t.Fatalf("second fill = %s %v, want run end", name, field)
	}
	if def := s.Catalog()[animations.Run]; def.StartFrame != 13 || def.EndFrame != 15 {
		t.Errorf("run = %+v", def)
	}

	for i := 0; i < 4; i++ {
		s.FillFirstEmpty(0)
	}
	if _, _, ok := s.FillFirstEmpty(0); ok {
		t.Error("a full form should not accept more frames")
	}
}

func TestSync(t *testing.T) {
	s := NewSession(sheetMeta())
	w := &fakeWorld{}

	s.Sync(w)
	if !w.running || w.starts != 1 || w.updates != 1 {
		t.Fatalf("first sync: %+v", w)
	}
	if _, ok := w.catalog[animations.Walk]; !ok {
		t.Error("world did not get the walk animation")
	}

	s.StepScale(1)
	s.Sync(w)
	if w.starts != 1 || w.updates != 2 || math.Abs(w.scale-0.30) > 1e-9 {
		t.Errorf("running sync should rebuild, got %+v", w)
	}

	s.Set(animations.Idle, FieldStart, "")
	s.Sync(w)
	if w.running || w.stops != 1 {
		t.Errorf("sync without idle should stop the world, got %+v", w)
	}

	s.Sync(w)
	if w.stops != 1 {
		t.Error("stopping twice")
	}
}

func TestGridFlowLayout(t *testing.T) {
	meta := animations.Meta{FrameWidth: 16, FrameHeight: 16, FrameCount: 23, Columns: 12, Rows: 2, FPS: 8}
	g := NewGrid(meta)

	if g.Width != 10*CellSize || g.Height != 3*CellSize {
		t.Errorf("grid = %dx%d", g.Width, g.Height)
	}
	if len(g.Cells) != 23 {
		t.Fatalf("%d cells, want 23", len(g.Cells))
	}

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first", 10, 10, 0, true},
		{"second line", CellSize + 5, CellSize + 5, 11, true},
		{"last", 2*CellSize + 1, 2*CellSize + 1, 22, true},
		{"past last", 3*CellSize + 1, 2*CellSize + 1, 0, false},
		{"outside", -1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.FrameAt(tt.x, tt.y)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FrameAt(%d, %d) = %d %v, want %d %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGridNamedRows(t *testing.T) {
	g := NewGrid(sheetMeta())

	if len(g.Rows) != 3 || g.Rows[0].Label != "idle" || g.Rows[1].Label != "walk" || g.Rows[2].Label != "wave" {
		t.Fatalf("rows = %+v", g.Rows)
	}
	rowHeight := CellSize + LabelHeight

	if _, ok := g.FrameAt(5, 5); ok {
		t.Error("the label strip should not map to a frame")
	}
	if got, ok := g.FrameAt(CellSize+5, rowHeight+LabelHeight+5); !ok || got != 7 {
		t.Errorf("walk second frame = %d %v, want 7", got, ok)
	}
	if got, ok := g.FrameAt(5, 2*rowHeight+LabelHeight+5); !ok || got != 18 {
		t.Errorf("wave first frame = %d %v, want 18", got, ok)
	}
}

func TestFitHelpers(t *testing.T) {
	meta := sheetMeta()
	if got := FitScale(meta, 220, 220); math.Abs(got-220.0/48) > 1e-9 {
		t.Errorf("FitScale = %v", got)
	}
	x, y := Centered(meta, 2, 220, 220)
	if x != 78 || y != 62 {
		t.Errorf("Centered = %v, %v, want 78, 62", x, y)
	}
	g := NewGrid(sheetMeta())
	if got := g.Fit(1000, 1000); got != 1 {
		t.Errorf("Fit never enlarges, got %v", got)
	}
}
