package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestBlur(t *testing.T) {
	img := createInMemoryImage(10, 1, color.NRGBA{0, 0, 0, 255})
	for x := 5; x < 10; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{255, 255, 255, 255})
	}

	blurred, err := Blur(img, 2)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}

	if blurred.Bounds().Dx() != 10 || blurred.Bounds().Dy() != 1 {
		t.Fatalf("size: got %dx%d, want 10x1", blurred.Bounds().Dx(), blurred.Bounds().Dy())
	}

	// The edge between the halves is softened on both sides.
	for _, x := range []int{4, 5} {
		r, _, _, _ := blurred.At(x, 0).RGBA()
		if r == 0 || r == 0xffff {
			t.Errorf("pixel %d: got R=%d, want a value between black and white", x, r>>8)
		}
	}
}

func TestBlur_ZeroRadius(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{10, 20, 30, 255})

	got, err := Blur(img, 0)
	if err != nil {
		t.Fatalf("Blur failed: %v", err)
	}
	if got != image.Image(img) {
		t.Error("radius 0 should return the input image")
	}
}

func TestBlur_InvalidRadius(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{10, 20, 30, 255})

	for _, radius := range []float64{-1, math.NaN()} {
		if _, err := Blur(img, radius); err == nil {
			t.Errorf("radius %v: expected error, got nil", radius)
		}
	}
}
