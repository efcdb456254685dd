package imaging

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
//
// This struct provides the same color in several formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components without alpha
//   - RGBA: 8-bit components with alpha for transparency
//   - HSL: Perceptual color space for intuitive color operations
//   - Alpha: The exact alpha stored in the tree (0-1), before 8-bit rounding
type ColorResult struct {
	Hex   string    `json:"hex"`   // Hex format "#RRGGBB" (no alpha)
	RGB   RGBColor  `json:"rgb"`   // RGB components
	RGBA  RGBAColor `json:"rgba"`  // RGBA components with alpha
	HSL   HSLColor  `json:"hsl"`   // HSL representation
	Alpha float64   `json:"alpha"` // Real-valued alpha (0-1)
}

// DescribePixel converts a quadtree pixel into every representation of
// ColorResult.
func DescribePixel(p quadtree.Pixel) ColorResult {
	n := p.NRGBA()
	h, s, l := toColorful(p).Hsl()

	return ColorResult{
		Hex:   fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B),
		RGB:   RGBColor{R: n.R, G: n.G, B: n.B},
		RGBA:  RGBAColor{R: n.R, G: n.G, B: n.B, A: n.A},
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Alpha: p.A,
	}
}

// SampledColor is the tree's color at a pixel together with the size of the
// leaf region it came from.
type SampledColor struct {
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// SampleColor returns the color the tree stores for pixel (x, y).
//
// For a pruned tree this is the average of the leaf region containing the
// pixel, not the original pixel color.
func SampleColor(tree *quadtree.Tree, x, y int) (*SampledColor, error) {
	p, err := tree.ColorAt(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample (%d,%d): %w", x, y, err)
	}
	return &SampledColor{X: x, Y: y, Color: DescribePixel(p)}, nil
}

// ColorFrequency represents a color and the share of the image it covers.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB" (quantized)
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components (quantized)
}

// DominantColorsResult contains the colors covering the most area of a tree.
//
// Colors are sorted by coverage in descending order.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors returns the count colors covering the most area of the
// tree's leaves. Each leaf counts with its pixel area, so a pruned tree gives
// the same answer as the image it renders to while visiting far fewer nodes.
//
// # Color Quantization
//
// To group similar colors, RGB values are quantized by dividing each
// component by 16 and rounding down:
//
//	quantized = (original / 16) * 16
func DominantColors(tree *quadtree.Tree, count int) (*DominantColorsResult, error) {
	if tree.Root() == nil {
		return nil, quadtree.ErrEmptyTree
	}
	if count < 1 {
		return nil, errors.New("count must be at least 1")
	}

	areas := make(map[RGBColor]int)
	total := 0
	tree.Walk(func(n *quadtree.Node) bool {
		if !n.IsLeaf() {
			return true
		}
		avg := n.Average()
		key := RGBColor{R: avg.R / 16 * 16, G: avg.G / 16 * 16, B: avg.B / 16 * 16}
		area := n.Bounds().Dx() * n.Bounds().Dy()
		areas[key] += area
		total += area
		return false
	})

	colors := make([]ColorFrequency, 0, len(areas))
	for rgb, area := range areas {
		colors = append(colors, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B),
			Percentage: float64(area) / float64(total) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
