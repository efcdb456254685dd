package imaging

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

// DefaultOutlineColor is a semi-transparent red.
const DefaultOutlineColor = "#FF000080"

// Outline draws the border of every leaf region of tree onto a copy of img.
//
// img is expected to be the tree rendered at scale, so that leaf rectangles
// line up with the painted regions. Leaf borders are one pixel wide at any
// scale. An empty colorHex selects DefaultOutlineColor.
func Outline(img image.Image, tree *quadtree.Tree, scale int, colorHex string) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", quadtree.ErrInvalidScale, scale)
	}
	if colorHex == "" {
		colorHex = DefaultOutlineColor
	}
	lineColor, err := ParseHexColor(colorHex)
	if err != nil {
		return nil, fmt.Errorf("invalid outline color %q: %w", colorHex, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != tree.Width()*scale || bounds.Dy() != tree.Height()*scale {
		return nil, fmt.Errorf("image is %dx%d, tree at scale %d is %dx%d",
			bounds.Dx(), bounds.Dy(), scale, tree.Width()*scale, tree.Height()*scale)
	}

	result := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	line := image.NewUniform(lineColor.NRGBA())
	tree.Walk(func(n *quadtree.Node) bool {
		if !n.IsLeaf() {
			return true
		}
		r := n.Bounds()
		r = image.Rect(r.Min.X*scale, r.Min.Y*scale, r.Max.X*scale, r.Max.Y*scale)

		// Top, bottom, left and right edges.
		edges := []image.Rectangle{
			image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
			image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
			image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
			image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(result, e, line, image.Point{}, draw.Over)
		}
		return false
	})

	return result, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a tree pixel; the
// leading "#" is optional and a missing alpha byte means opaque.
func ParseHexColor(s string) (quadtree.Pixel, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return quadtree.Pixel{}, fmt.Errorf("hex color %q must have 6 or 8 digits", s)
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return quadtree.Pixel{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	alpha := 1.0
	if len(b) == 4 {
		alpha = float64(b[3]) / 255
	}
	return quadtree.NewPixel(b[0], b[1], b[2], alpha), nil
}
