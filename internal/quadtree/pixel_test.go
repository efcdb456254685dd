package quadtree

import (
	"image/color"
	"math"
	"testing"
)

func TestPixel_DistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Pixel
		want float64
	}{
		{"identical", NewPixel(10, 20, 30, 1), NewPixel(10, 20, 30, 1), 0},
		{"red channel", NewPixel(0, 0, 0, 1), NewPixel(3, 0, 0, 1), 3},
		{"three-four-five", NewPixel(0, 0, 0, 1), NewPixel(0, 3, 4, 1), 5},
		{"alpha scaled", NewPixel(0, 0, 0, 0), NewPixel(0, 0, 0, 1), 255},
		{"black to white", NewPixel(0, 0, 0, 1), NewPixel(255, 255, 255, 1), math.Sqrt(3 * 255 * 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.DistanceTo(tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceTo: got %v, want %v", got, tt.want)
			}
			if back := tt.b.DistanceTo(tt.a); back != got {
				t.Errorf("DistanceTo not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestPixelFromColor_RoundTrip(t *testing.T) {
	colors := []color.NRGBA{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{12, 200, 77, 128},
		{1, 2, 3, 1},
	}
	for _, c := range colors {
		p := PixelFromColor(c)
		if got := p.NRGBA(); got != c {
			t.Errorf("round trip of %v: got %v", c, got)
		}
	}
}

func TestPixelFromColor_Premultiplied(t *testing.T) {
	// Half-transparent red stored premultiplied.
	p := PixelFromColor(color.RGBA{R: 128, A: 128})
	if p.R != 255 {
		t.Errorf("R: got %d, want 255", p.R)
	}
	if math.Abs(p.A-128.0/255) > 1e-9 {
		t.Errorf("A: got %v, want %v", p.A, 128.0/255)
	}
}

func TestPixel_NRGBAClampsAlpha(t *testing.T) {
	if got := NewPixel(1, 2, 3, 1.5).NRGBA().A; got != 255 {
		t.Errorf("alpha above 1: got %d, want 255", got)
	}
	if got := NewPixel(1, 2, 3, -0.5).NRGBA().A; got != 0 {
		t.Errorf("alpha below 0: got %d, want 0", got)
	}
}

func TestPixel_ZeroValue(t *testing.T) {
	var p Pixel
	if p.NRGBA() != (color.NRGBA{}) {
		t.Errorf("zero Pixel: got %v, want transparent black", p.NRGBA())
	}
}
