package partsrun

import (
	"image/color"
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", r, true},
		{"contained", Rect{X: 15, Y: 15, Width: 5, Height: 5}, true},
		{"partial", Rect{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, Width: 10, Height: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, Width: 10, Height: 10}, false},
		{"touching corner", Rect{X: 30, Y: 30, Width: 5, Height: 5}, false},
		{"left of", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"above", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"overlap x only", Rect{X: 15, Y: 40, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(r); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectMoved(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}.Moved(Vec2{10, 20})
	if r != (Rect{X: 10, Y: 20, Width: 3, Height: 4}) {
		t.Errorf("Moved = %+v", r)
	}
}

func TestDist(t *testing.T) {
	if got := Dist(Vec2{0, 0}, Vec2{3, 4}); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := Dist(Vec2{7, 7}, Vec2{7, 7}); got != 0 {
		t.Errorf("Dist same point = %v, want 0", got)
	}
}

func TestVec2Len(t *testing.T) {
	v := Vec2{1, -1}
	if math.Abs(v.Len()-math.Sqrt2) > 1e-12 {
		t.Errorf("Len = %v, want sqrt(2)", v.Len())
	}
	if !(Vec2{}).IsZero() {
		t.Error("zero vector should report IsZero")
	}
}

func TestHex(t *testing.T) {
	c := Hex(0xff8000)
	if c.R != 1 || c.G != 128.0/255 || c.B != 0 || c.A != 1 {
		t.Errorf("Hex(0xff8000) = %+v", c)
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"opaque white", Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"transparent", Color{1, 1, 1, 0}, color.RGBA{0, 0, 0, 0}},
		{"half red premultiplied", Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{"clamped", Color{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBA(); got != tt.want {
				t.Errorf("RGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}
