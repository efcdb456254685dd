package quadtree

import (
	"fmt"
	"image"
)

// Validate checks that every node lies inside the image, that the children of
// each internal node partition it exactly, and that children sit in the slot
// matching their position. It returns nil for a cleared tree.
func (t *Tree) Validate() error {
	if t.root == nil {
		return nil
	}
	bounds := image.Rect(0, 0, t.width, t.height)
	if r := t.root.Bounds(); r != bounds {
		return fmt.Errorf("%w: root covers %v, image is %v", ErrInvariant, r, bounds)
	}
	return validate(t.root)
}

func validate(n *Node) error {
	r := n.Bounds()
	if r.Empty() {
		return fmt.Errorf("%w: inverted corners %v %v", ErrInvariant, n.topLeft, n.bottomRight)
	}
	if n.IsLeaf() {
		return nil
	}

	column, row := r.Dx() == 1, r.Dy() == 1
	switch {
	case column && row:
		return fmt.Errorf("%w: single pixel %v has children", ErrInvariant, r)
	case column && (n.children[NE] != nil || n.children[SE] != nil):
		return fmt.Errorf("%w: single column %v uses an east slot", ErrInvariant, r)
	case row && (n.children[SW] != nil || n.children[SE] != nil):
		return fmt.Errorf("%w: single row %v uses a south slot", ErrInvariant, r)
	}

	area := 0
	var seen []image.Rectangle
	for i, c := range n.children {
		if c == nil {
			continue
		}
		q := Quadrant(i)
		cr := c.Bounds()
		if !cr.In(r) {
			return fmt.Errorf("%w: %s child %v outside parent %v", ErrInvariant, q, cr, r)
		}
		for _, s := range seen {
			if s.Overlaps(cr) {
				return fmt.Errorf("%w: children %v and %v of %v overlap", ErrInvariant, s, cr, r)
			}
		}

		west := q == NW || q == SW
		north := q == NW || q == NE
		if !column && west != (cr.Min.X == r.Min.X) {
			return fmt.Errorf("%w: %s child %v misplaced in %v", ErrInvariant, q, cr, r)
		}
		if !row && north != (cr.Min.Y == r.Min.Y) {
			return fmt.Errorf("%w: %s child %v misplaced in %v", ErrInvariant, q, cr, r)
		}

		area += cr.Dx() * cr.Dy()
		seen = append(seen, cr)
		if err := validate(c); err != nil {
			return err
		}
	}

	if area != r.Dx()*r.Dy() {
		return fmt.Errorf("%w: children cover %d of %d pixels in %v", ErrInvariant, area, r.Dx()*r.Dy(), r)
	}
	return nil
}
