package quadtree

import (
	"fmt"
	"image"
)

// Render paints the tree onto a new image of (Width*scale)×(Height*scale)
// pixels. Each leaf fills its rectangle, scaled by nearest neighbour, with its
// average color.
func (t *Tree) Render(scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	c := NewCanvas(t.width*scale, t.height*scale)
	render(t.root, c, scale)
	return c.Image(), nil
}

// RenderTo paints the tree onto dst, which must be exactly
// (Width*scale)×(Height*scale).
func (t *Tree) RenderTo(dst Canvas, scale int) error {
	if scale < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	if t.root == nil {
		return ErrEmptyTree
	}
	if w, h := t.width*scale, t.height*scale; dst.Width() != w || dst.Height() != h {
		return fmt.Errorf("quadtree: canvas is %dx%d, want %dx%d", dst.Width(), dst.Height(), w, h)
	}
	render(t.root, dst, scale)
	return nil
}

func render(n *Node, dst Canvas, scale int) {
	if !n.IsLeaf() {
		for _, c := range n.children {
			if c != nil {
				render(c, dst, scale)
			}
		}
		return
	}

	r := image.Rect(
		n.topLeft.X*scale, n.topLeft.Y*scale,
		(n.bottomRight.X+1)*scale, (n.bottomRight.Y+1)*scale,
	)
	if f, ok := dst.(rectFiller); ok {
		f.FillRect(r, n.average)
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetPixel(x, y, n.average)
		}
	}
}
