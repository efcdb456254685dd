package quadtree

import (
	"image"
	"image/draw"
)

// Source is the raster a tree is built from. Dimensions must stay fixed while
// New runs.
type Source interface {
	Width() int
	Height() int
	PixelAt(x, y int) Pixel
}

// Canvas is the raster a tree renders onto.
type Canvas interface {
	Width() int
	Height() int
	SetPixel(x, y int, p Pixel)
}

// rectFiller is implemented by canvases that can paint a whole rectangle at
// once. Render uses it when available.
type rectFiller interface {
	FillRect(r image.Rectangle, p Pixel)
}

type imageSource struct {
	img  image.Image
	min  image.Point
	w, h int
}

// FromImage adapts img to a Source. Coordinates are relative to the image's
// bounds, so sub-images with a non-zero origin are handled.
func FromImage(img image.Image) Source {
	b := img.Bounds()
	return &imageSource{img: img, min: b.Min, w: b.Dx(), h: b.Dy()}
}

func (s *imageSource) Width() int  { return s.w }
func (s *imageSource) Height() int { return s.h }

func (s *imageSource) PixelAt(x, y int) Pixel {
	if n, ok := s.img.(*image.NRGBA); ok {
		return PixelFromColor(n.NRGBAAt(s.min.X+x, s.min.Y+y))
	}
	return PixelFromColor(s.img.At(s.min.X+x, s.min.Y+y))
}

// NRGBACanvas is a Canvas backed by an *image.NRGBA.
type NRGBACanvas struct {
	img *image.NRGBA
}

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *NRGBACanvas {
	return &NRGBACanvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

func (c *NRGBACanvas) Width() int  { return c.img.Rect.Dx() }
func (c *NRGBACanvas) Height() int { return c.img.Rect.Dy() }

func (c *NRGBACanvas) SetPixel(x, y int, p Pixel) {
	c.img.SetNRGBA(x, y, p.NRGBA())
}

// FillRect paints every pixel of r with p.
func (c *NRGBACanvas) FillRect(r image.Rectangle, p Pixel) {
	draw.Draw(c.img, r, image.NewUniform(p.NRGBA()), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (c *NRGBACanvas) Image() *image.NRGBA {
	return c.img
}
