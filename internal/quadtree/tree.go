package quadtree

import (
	"fmt"
	"image"
)

// DistanceFunc measures how far apart two colors are. It must be symmetric
// and non-negative.
type DistanceFunc func(a, b Pixel) float64

// Option configures a Tree at construction.
type Option func(*Tree)

// WithDistance sets the metric Prune compares leaf colors with. The default is
// Pixel.DistanceTo.
func WithDistance(fn DistanceFunc) Option {
	return func(t *Tree) {
		if fn != nil {
			t.distance = fn
		}
	}
}

// WithObserver sets the observer notified of build, prune and transform
// events.
func WithObserver(o Observer) Option {
	return func(t *Tree) {
		if o != nil {
			t.observer = o
		}
	}
}

// Tree is a region quadtree over an image.
//
// Width and Height are the current logical dimensions; RotateCCW swaps them.
type Tree struct {
	root          *Node
	width, height int
	pruned        bool
	distance      DistanceFunc
	observer      Observer
}

// New builds a tree from src. Every leaf of the result is a single pixel and
// every internal node stores the area-weighted average of its children.
func New(src Source, opts ...Option) (*Tree, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}

	t := &Tree{
		width:    w,
		height:   h,
		distance: Pixel.DistanceTo,
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.root = build(src, image.Pt(0, 0), image.Pt(w-1, h-1))
	t.observer.Built(w, h, t.CountNodes())
	return t, nil
}

// Clone returns a deep copy of t sharing no nodes with it. The copy keeps the
// pruned state, metric and observer.
func (t *Tree) Clone() *Tree {
	c := *t
	c.root = copyNode(t.root)
	return &c
}

// Assign replaces the contents of t with a deep copy of src. Assigning a tree
// to itself does nothing.
func (t *Tree) Assign(src *Tree) {
	if t == src {
		return
	}
	t.Clear()
	*t = *src
	t.root = copyNode(src.root)
}

// Clear releases every node. The dimensions are kept, but the tree has no
// nodes afterwards: Render fails with ErrEmptyTree and transforms do nothing.
func (t *Tree) Clear() {
	detach(t.root)
	t.root = nil
}

// Root returns the root node, or nil for a cleared tree.
func (t *Tree) Root() *Node { return t.root }

// Width returns the current logical width.
func (t *Tree) Width() int { return t.width }

// Height returns the current logical height.
func (t *Tree) Height() int { return t.height }

// Pruned reports whether t, or the tree it was copied from, has been pruned.
func (t *Tree) Pruned() bool { return t.pruned }

// CountNodes returns the number of nodes in the tree.
func (t *Tree) CountNodes() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// CountLeaves returns the number of leaves in the tree.
func (t *Tree) CountLeaves() int {
	count := 0
	t.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of levels in the tree; a single leaf has depth 1.
func (t *Tree) Depth() int {
	return depth(t.root)
}

func depth(n *Node) int {
	if n == nil {
		return 0
	}
	d := 0
	for _, c := range n.children {
		if cd := depth(c); cd > d {
			d = cd
		}
	}
	return d + 1
}

// Walk visits nodes in pre-order. Returning false from fn skips the node's
// children.
func (t *Tree) Walk(fn func(*Node) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		walk(c, fn)
	}
}

// ColorAt returns the color the tree stores for pixel (x, y) in its current
// orientation.
func (t *Tree) ColorAt(x, y int) (Pixel, error) {
	if t.root == nil {
		return Pixel{}, ErrEmptyTree
	}
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, x, y, t.width, t.height)
	}

	n := t.root
	for !n.IsLeaf() {
		var next *Node
		for _, c := range n.children {
			if c != nil && c.contains(x, y) {
				next = c
				break
			}
		}
		if next == nil {
			panic(fmt.Sprintf("quadtree: no child of %v covers (%d,%d)", n.Bounds(), x, y))
		}
		n = next
	}
	return n.average, nil
}
