package animations

import (
	"errors"
	"image"
	"math"
	"testing"
)

func testMeta() Meta {
	return Meta{
		FrameWidth:  32,
		FrameHeight: 48,
		FrameCount:  24,
		Columns:     8,
		Rows:        3,
		FPS:         8,
	}
}

func testCatalog() Catalog {
	return Catalog{
		Idle: {StartFrame: 0, EndFrame: 3, FPS: 8},
		Walk: {StartFrame: 8, EndFrame: 13},
		Run:  {StartFrame: 16, EndFrame: 23, FPS: 16},
	}
}

func TestPlayerAdvancesFloorOfElapsedTimesFPS(t *testing.T) {
	tests := []struct {
		name  string
		anim  Name
		fps   float64
		dt    float64
		steps int
	}{
		{"exact binary steps", Idle, 8, 1.0 / 16, 37},
		{"step equal to period", Idle, 8, 1.0 / 8, 9},
		{"several periods per step", Run, 16, 0.25, 5},
		{"atlas default fps", Walk, 8, 1.0 / 32, 101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testMeta(), testCatalog(), nil)
			p.SetAnimation(tt.anim)
			for i := 0; i < tt.steps; i++ {
				p.Update(tt.dt)
			}

			def := testCatalog()[tt.anim]
			total := float64(tt.steps) * tt.dt
			want := int(math.Floor(total*tt.fps)) % def.Len()
			if got := p.Frame(); got != want {
				t.Errorf("Frame() = %d, want %d", got, want)
			}
		})
	}
}

func TestPlayerAdvanceWithinOnePeriodOfFloatError(t *testing.T) {
	p := NewPlayer(testMeta(), Catalog{Idle: {StartFrame: 0, EndFrame: 99, FPS: 12}}, nil)
	const dt = 1.0 / 60
	const steps = 600
	for i := 0; i < steps; i++ {
		p.Update(dt)
	}

	want := int(math.Floor(steps * dt * 12))
	got := p.Frame()
	if got != want%100 && got != (want-1)%100 {
		t.Errorf("Frame() = %d, want %d (±1 period)", got, want%100)
	}
}

func TestSetAnimationIsIdempotent(t *testing.T) {
	p := NewPlayer(testMeta(), testCatalog(), nil)
	p.SetAnimation(Walk)
	p.Update(0.2)
	frame, elapsed := p.Frame(), p.Elapsed()
	if frame == 0 {
		t.Fatal("expected walk to have advanced")
	}

	p.SetAnimation(Walk)
	p.SetAnimation(Walk)

	if p.Frame() != frame || p.Elapsed() != elapsed {
		t.Errorf("repeated SetAnimation reset cursor: frame %d→%d elapsed %v→%v", frame, p.Frame(), elapsed, p.Elapsed())
	}
}

func TestSetAnimationResetsOnChange(t *testing.T) {
	p := NewPlayer(testMeta(), testCatalog(), nil)
	p.Update(0.3)
	p.SetAnimation(Run)
	if p.Current() != Run || p.Frame() != 0 || p.Elapsed() != 0 {
		t.Errorf("after switch: current=%s frame=%d elapsed=%v", p.Current(), p.Frame(), p.Elapsed())
	}
}

func TestSetAnimationUnknownFallsBackToIdle(t *testing.T) {
	p := NewPlayer(testMeta(), testCatalog(), nil)
	p.SetAnimation(Run)

	for _, name := range []Name{Crouch, Jump, Name("backflip")} {
		p.SetAnimation(name)
		if p.Current() != Idle {
			t.Errorf("SetAnimation(%q) resolved to %q, want idle", name, p.Current())
		}
	}
}

func TestPlayerWithoutIdleIsInert(t *testing.T) {
	p := NewPlayer(testMeta(), Catalog{Walk: {StartFrame: 8, EndFrame: 13}}, nil)
	if p.Current() != "" {
		t.Fatalf("Current() = %q, want unresolved", p.Current())
	}

	p.Update(1)
	p.SetAnimation(Jump)
	if _, ok := p.SourceRect(); ok {
		t.Error("SourceRect should not resolve without idle")
	}
	p.Draw(nil, 0, 0, 1)

	p.SetAnimation(Walk)
	if p.Current() != Walk {
		t.Errorf("explicit walk should still resolve, got %q", p.Current())
	}
}

func TestZeroFPSUsesAtlasDefault(t *testing.T) {
	meta := testMeta()
	meta.FPS = 4
	p := NewPlayer(meta, Catalog{Idle: {StartFrame: 0, EndFrame: 3}}, nil)
	p.Update(0.5)
	if p.Frame() != 2 {
		t.Errorf("Frame() = %d, want 2 at 4 fps after 0.5s", p.Frame())
	}

	meta.FPS = 0
	p = NewPlayer(meta, Catalog{Idle: {StartFrame: 0, EndFrame: 3}}, nil)
	p.Update(10)
	if p.Frame() != 0 {
		t.Errorf("zero fps everywhere should not advance, got frame %d", p.Frame())
	}
}

func TestSourceRectUsesGrid(t *testing.T) {
	p := NewPlayer(testMeta(), testCatalog(), nil)
	p.SetAnimation(Walk)
	p.Update(3.0 / 8)

	rect, ok := p.SourceRect()
	if !ok {
		t.Fatal("SourceRect not resolved")
	}
	// walk starts at 8, three frames in is index 11: column 3, row 1
	want := image.Rect(96, 48, 128, 96)
	if rect != want {
		t.Errorf("SourceRect() = %v, want %v", rect, want)
	}
	if p.SheetIndex() != 11 {
		t.Errorf("SheetIndex() = %d, want 11", p.SheetIndex())
	}
}

func TestGeoMMirrorsInPlace(t *testing.T) {
	p := NewPlayer(testMeta(), testCatalog(), nil)

	g := p.GeoM(100, 50, 0.5)
	if x, y := g.Apply(0, 0); x != 100 || y != 50 {
		t.Errorf("unflipped origin = (%v,%v), want (100,50)", x, y)
	}
	if x, y := g.Apply(32, 48); x != 116 || y != 74 {
		t.Errorf("unflipped corner = (%v,%v), want (116,74)", x, y)
	}

	p.FlipX = true
	g = p.GeoM(100, 50, 0.5)
	if x, _ := g.Apply(0, 0); x != 116 {
		t.Errorf("flipped left edge maps to %v, want 116", x)
	}
	if x, _ := g.Apply(32, 0); x != 100 {
		t.Errorf("flipped right edge maps to %v, want 100", x)
	}
}

func TestCatalogValidate(t *testing.T) {
	meta := testMeta()
	tests := []struct {
		name    string
		cat     Catalog
		wantErr error
	}{
		{"ok", testCatalog(), nil},
		{"start after end", Catalog{Idle: {StartFrame: 5, EndFrame: 2}}, ErrBadRange},
		{"past frame count", Catalog{Idle: {StartFrame: 20, EndFrame: 24}}, ErrBadRange},
		{"negative", Catalog{Idle: {StartFrame: -1, EndFrame: 2}}, ErrBadRange},
		{"unknown", Catalog{Name("dance"): {StartFrame: 0, EndFrame: 1}}, ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate(meta)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetaPrefill(t *testing.T) {
	meta := testMeta()
	meta.Animations = map[string]RowAnimation{
		"idle":  {Row: 0, Frames: 4, FPS: 6},
		"walk":  {Row: 1, Frames: 6},
		"jump":  {Row: 2, Frames: 12}, // runs past frame 23
		"dance": {Row: 0, Frames: 2},
	}

	got := meta.Prefill()
	if len(got) != 2 {
		t.Fatalf("Prefill() = %v, want idle and walk only", got)
	}
	if got[Idle] != (Def{StartFrame: 0, EndFrame: 3, FPS: 6}) {
		t.Errorf("idle = %+v", got[Idle])
	}
	if got[Walk] != (Def{StartFrame: 8, EndFrame: 13}) {
		t.Errorf("walk = %+v", got[Walk])
	}
}

func TestMetaFrameAt(t *testing.T) {
	meta := testMeta()
	if i, ok := meta.FrameAt(100, 60); !ok || i != 11 {
		t.Errorf("FrameAt(100,60) = %d,%v want 11,true", i, ok)
	}
	if _, ok := meta.FrameAt(300, 0); ok {
		t.Error("FrameAt past last column should fail")
	}
	if _, ok := meta.FrameAt(0, 200); ok {
		t.Error("FrameAt past last row should fail")
	}
}
