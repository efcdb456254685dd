package quadtree

import "image"

// Quadrant names a child slot of a Node.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// Quadrants lists the child slots in storage order.
var Quadrants = [4]Quadrant{NW, NE, SW, SE}

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "Quadrant(?)"
}

// Node is one rectangular region of the image. A nil child slot means the
// child is absent; a node without children is a leaf.
type Node struct {
	topLeft     image.Point
	bottomRight image.Point
	average     Pixel
	children    [4]*Node
}

// TopLeft returns the first pixel of the region (inclusive).
func (n *Node) TopLeft() image.Point { return n.topLeft }

// BottomRight returns the last pixel of the region (inclusive).
func (n *Node) BottomRight() image.Point { return n.bottomRight }

// Bounds returns the region as a half-open rectangle.
func (n *Node) Bounds() image.Rectangle {
	return image.Rect(n.topLeft.X, n.topLeft.Y, n.bottomRight.X+1, n.bottomRight.Y+1)
}

// Average returns the average color of the region.
func (n *Node) Average() Pixel { return n.average }

// Child returns the child in slot q, or nil.
func (n *Node) Child(q Quadrant) *Node { return n.children[q] }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.children == [4]*Node{}
}

func (n *Node) width() int  { return n.bottomRight.X - n.topLeft.X + 1 }
func (n *Node) height() int { return n.bottomRight.Y - n.topLeft.Y + 1 }

// area is the pixel count of the region.
func (n *Node) area() int {
	return n.width() * n.height()
}

func (n *Node) contains(x, y int) bool {
	return x >= n.topLeft.X && x <= n.bottomRight.X &&
		y >= n.topLeft.Y && y <= n.bottomRight.Y
}
