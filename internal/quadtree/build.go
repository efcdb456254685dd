package quadtree

import "image"

// build returns the subtree covering the inclusive rectangle ul..lr.
func build(src Source, ul, lr image.Point) *Node {
	n := &Node{topLeft: ul, bottomRight: lr}

	switch {
	case ul == lr:
		n.average = src.PixelAt(ul.X, ul.Y)
		return n

	case ul.X == lr.X:
		midY := (ul.Y + lr.Y) / 2
		n.children[NW] = build(src, ul, image.Pt(ul.X, midY))
		n.children[SW] = build(src, image.Pt(ul.X, midY+1), lr)

	case ul.Y == lr.Y:
		midX := (ul.X + lr.X) / 2
		n.children[NW] = build(src, ul, image.Pt(midX, ul.Y))
		n.children[NE] = build(src, image.Pt(midX+1, ul.Y), lr)

	default:
		midX := (ul.X + lr.X) / 2
		midY := (ul.Y + lr.Y) / 2
		n.children[NW] = build(src, ul, image.Pt(midX, midY))
		n.children[NE] = build(src, image.Pt(midX+1, ul.Y), image.Pt(lr.X, midY))
		n.children[SW] = build(src, image.Pt(ul.X, midY+1), image.Pt(midX, lr.Y))
		n.children[SE] = build(src, image.Pt(midX+1, midY+1), lr)
	}

	n.average = aggregate(n.children)
	return n
}

// copyNode returns a deep copy of the subtree rooted at n.
func copyNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{topLeft: n.topLeft, bottomRight: n.bottomRight, average: n.average}
	for q, child := range n.children {
		c.children[q] = copyNode(child)
	}
	return c
}

// detach unlinks every descendant of n, bottom-up, and returns how many
// nodes were removed from the tree including n itself.
func detach(n *Node) int {
	if n == nil {
		return 0
	}
	removed := 1
	for q, child := range n.children {
		removed += detach(child)
		n.children[q] = nil
	}
	return removed
}
