package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validJSON = `{
	"frameWidth": 32, "frameHeight": 32, "frameCount": 6,
	"columns": 3, "rows": 2, "fps": 8,
	"animations": {"idle": {"row": 0, "frames": 3}, "walk": {"row": 1, "frames": 3, "fps": 12}}
}`

const validYAML = `frameWidth: 32
frameHeight: 32
frameCount: 6
columns: 3
rows: 2
fps: 8
animations:
  idle: {row: 0, frames: 3}
`

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestParseMeta(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		wantErr  error
		wantMiss string
	}{
		{"json", "sheet.json", validJSON, nil, ""},
		{"yaml", "sheet.yaml", validYAML, nil, ""},
		{"yml", "sheet.YML", validYAML, nil, ""},
		{"missing fps", "sheet.json", `{"frameWidth":1,"frameHeight":1,"frameCount":1,"columns":1,"rows":1}`, nil, "fps"},
		{"missing columns", "sheet.yaml", "frameWidth: 1\nframeHeight: 1\nframeCount: 1\nrows: 1\nfps: 1\n", nil, "columns"},
		{"zero frame size", "sheet.json", `{"frameWidth":0,"frameHeight":1,"frameCount":1,"columns":1,"rows":1,"fps":1}`, ErrInvalidMeta, ""},
		{"too many frames", "sheet.json", `{"frameWidth":1,"frameHeight":1,"frameCount":5,"columns":2,"rows":2,"fps":1}`, ErrInvalidMeta, ""},
		{"unsupported", "sheet.txt", validJSON, ErrUnsupportedFile, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseMeta(tt.file, []byte(tt.data))
			if tt.wantMiss != "" {
				var missing *MissingFieldError
				if !errors.As(err, &missing) || missing.Field != tt.wantMiss {
					t.Fatalf("err = %v, want missing %q", err, tt.wantMiss)
				}
				if !strings.Contains(err.Error(), `"`+tt.wantMiss+`"`) {
					t.Errorf("message %q does not name the field", err.Error())
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (meta.FrameWidth != 32 || meta.Columns != 3 || meta.FPS != 8) {
				t.Errorf("meta = %+v", meta)
			}
		})
	}
}

func TestParseMetaRowAnimations(t *testing.T) {
	meta, err := ParseMeta("sheet.json", []byte(validJSON))
	if err != nil {
		t.Fatal(err)
	}
	walk, ok := meta.Animations["walk"]
	if !ok || walk.Row != 1 || walk.Frames != 3 || walk.FPS != 12 {
		t.Errorf("walk row = %+v (present %v)", walk, ok)
	}
}

func TestParseSheetChecksBounds(t *testing.T) {
	if _, img, err := parseSheet("sheet.png", pngBytes(t, 96, 64), "sheet.json", []byte(validJSON)); err != nil || img == nil {
		t.Fatalf("parseSheet() err = %v", err)
	}

	_, _, err := parseSheet("sheet.png", pngBytes(t, 64, 64), "sheet.json", []byte(validJSON))
	if !errors.Is(err, ErrSheetTooSmall) {
		t.Errorf("err = %v, want ErrSheetTooSmall", err)
	}

	_, _, err = parseSheet("sheet.png", []byte("not a png"), "sheet.json", []byte(validJSON))
	if err == nil {
		t.Error("expected decode error")
	}
}

func TestDropPairing(t *testing.T) {
	var p DropPairing
	if p.Ready() {
		t.Fatal("empty pairing should not be ready")
	}

	status, err := p.Add("dir/hero.png", pngBytes(t, 96, 64))
	if err != nil || !strings.Contains(status, "waiting for metadata") {
		t.Fatalf("after image: %q, %v", status, err)
	}

	if _, err := p.Add("hero.json", []byte(`{"frameWidth": 32}`)); err == nil {
		t.Fatal("expected bad metadata to be rejected")
	}
	if p.Ready() {
		t.Fatal("rejected metadata must not complete the pair")
	}

	if _, err := p.Add("notes.txt", nil); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("err = %v, want ErrUnsupportedFile", err)
	}

	status, err = p.Add("hero.json", []byte(validJSON))
	if err != nil || !p.Ready() {
		t.Fatalf("after metadata: %q, %v", status, err)
	}
	if status != "Loaded hero.png + hero.json" {
		t.Errorf("status = %q", status)
	}

	p.Reset()
	if p.Ready() || !strings.HasPrefix(p.Status(), "Drop") {
		t.Errorf("Reset left %q", p.Status())
	}
}

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := NewLevelLoader().LoadLevel("sandbox")
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	if lvl.Width != 3000 {
		t.Errorf("Width = %d, want 3000", lvl.Width)
	}
	ground := lvl.Platforms[0]
	if ground.Y != 400 || ground.W != 3000 {
		t.Errorf("first platform should be the ground, got %+v", ground)
	}

	floating := 0
	for _, p := range lvl.Platforms {
		if p.Floating {
			floating++
		}
	}
	if floating == 0 {
		t.Error("expected floating platforms in the sandbox level")
	}

	if _, err := NewLevelLoader().LoadLevel("missing"); err == nil {
		t.Error("expected error for a missing level")
	}
}

func TestWatcherReportsWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "hero.json")
	other := filepath.Join(dir, "other.json")

	w, err := NewWatcher(sheet)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sheet, []byte(validJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.Abs(sheet)
	select {
	case got := <-w.Events:
		if got != want {
			t.Errorf("event for %q, want %q", got, want)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for the watched file")
	}
}
