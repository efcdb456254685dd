package quadtree

import (
	"image"
	"image/color"
	"testing"
)

// createImage builds an NRGBA image whose pixels come from fn.
func createImage(width, height int, fn func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fn(x, y))
		}
	}
	return img
}

// createGradientImage returns an image where every pixel has a distinct color.
func createGradientImage(width, height int) *image.NRGBA {
	return createImage(width, height, func(x, y int) color.NRGBA {
		return color.NRGBA{R: uint8(x), G: uint8(y), B: uint8((x*7 + y*13) % 256), A: uint8(255 - (x+y)%3)}
	})
}

// createQuadrantImage fills each quadrant with its own color.
func createQuadrantImage(width, height int) *image.NRGBA {
	return createImage(width, height, func(x, y int) color.NRGBA {
		switch {
		case x < width/2 && y < height/2:
			return color.NRGBA{255, 0, 0, 255}
		case x >= width/2 && y < height/2:
			return color.NRGBA{0, 255, 0, 255}
		case x < width/2:
			return color.NRGBA{0, 0, 255, 255}
		default:
			return color.NRGBA{255, 255, 255, 255}
		}
	})
}

func createUniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	return createImage(width, height, func(int, int) color.NRGBA { return c })
}

func mustBuild(t *testing.T, img image.Image, opts ...Option) *Tree {
	t.Helper()
	tree, err := New(FromImage(img), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func mustRender(t *testing.T, tree *Tree, scale int) *image.NRGBA {
	t.Helper()
	img, err := tree.Render(scale)
	if err != nil {
		t.Fatalf("Render(%d) failed: %v", scale, err)
	}
	return img
}

func mustValidate(t *testing.T, tree *Tree) {
	t.Helper()
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

// assertSameImage compares two images pixel by pixel.
func assertSameImage(t *testing.T, got, want image.Image) {
	t.Helper()
	gb, wb := got.Bounds(), want.Bounds()
	if gb.Dx() != wb.Dx() || gb.Dy() != wb.Dy() {
		t.Fatalf("size: got %dx%d, want %dx%d", gb.Dx(), gb.Dy(), wb.Dx(), wb.Dy())
	}
	for y := 0; y < gb.Dy(); y++ {
		for x := 0; x < gb.Dx(); x++ {
			g := color.NRGBAModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y))
			w := color.NRGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y))
			if g != w {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g, w)
			}
		}
	}
}

type recordingObserver struct {
	built   int
	removed int
	ops     []Op
	rotated [][4]int
}

func (r *recordingObserver) Built(_, _, nodes int) { r.built = nodes }

func (r *recordingObserver) Pruned(_ float64, removed int) { r.removed = removed }

func (r *recordingObserver) Transformed(op Op, _, _ int) { r.ops = append(r.ops, op) }

func (r *recordingObserver) Rotated(bw, bh, aw, ah int) {
	r.rotated = append(r.rotated, [4]int{bw, bh, aw, ah})
}
