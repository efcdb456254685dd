package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
)

// Blur applies a Gaussian blur with the given radius. Smoothing noise before
// building a tree lets pruning merge regions that differ only by grain.
// A radius of 0 returns img unchanged.
func Blur(img image.Image, radius float64) (image.Image, error) {
	if math.IsNaN(radius) || radius < 0 {
		return nil, fmt.Errorf("invalid blur radius %v", radius)
	}
	if radius == 0 {
		return img, nil
	}
	return blur.Gaussian(img, radius), nil
}
