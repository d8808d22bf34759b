package gamemath

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 5}, false},
		{"touching left edge", Rect{X: -5, Y: 0, W: 5, H: 10}, false},
		{"far away", Rect{X: 100, Y: 100, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, base); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		elapsed, want float64
	}{
		{0.016, 0.016},
		{0.05, 0.05},
		{2.5, 0.05},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := ClampDelta(tt.elapsed, 0.05); got != tt.want {
			t.Errorf("ClampDelta(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestCameraX(t *testing.T) {
	tests := []struct {
		name      string
		target    float64
		view, lvl float64
		want      float64
	}{
		{"clamped at left", 50, 800, 3000, 0},
		{"follows", 1000, 800, 3000, 1000 - 800.0/3},
		{"clamped at right", 2900, 800, 3000, 2200},
		{"level narrower than view", 500, 800, 600, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraX(tt.target, tt.view, tt.lvl, 3); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CameraX() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp(-1,0,3) = %v", got)
	}
	if got := Clamp(2, 0, -10); got != 0 {
		t.Errorf("Clamp with inverted range = %v, want lower bound", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 3, Y: 4, W: 10, H: 20}
	if r.Right() != 13 || r.Bottom() != 24 {
		t.Errorf("Right, Bottom = %v, %v, want 13, 24", r.Right(), r.Bottom())
	}
}
