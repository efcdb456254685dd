package quadtree

// FlipHorizontal mirrors the tree across its vertical center line.
func (t *Tree) FlipHorizontal() {
	if t.root == nil {
		return
	}
	t.root = flipHorizontal(t.root, t.width-1)
	t.observer.Transformed(OpFlipHorizontal, t.width, t.height)
}

// FlipVertical mirrors the tree across its horizontal center line.
func (t *Tree) FlipVertical() {
	if t.root == nil {
		return
	}
	t.root = flipVertical(t.root, t.height-1)
	t.observer.Transformed(OpFlipVertical, t.width, t.height)
}

// RotateCCW rotates the tree 90 degrees counter-clockwise: pixel (x, y) of a
// W×H image moves to (y, W-1-x) of an H×W image.
//
// The rotation is a transpose followed by a vertical flip over the new height.
func (t *Tree) RotateCCW() {
	if t.root == nil {
		return
	}
	t.root = transpose(t.root)

	w, h := t.width, t.height
	t.width, t.height = h, w
	t.observer.Rotated(w, h, t.width, t.height)

	t.root = flipVertical(t.root, t.height-1)
	t.observer.Transformed(OpRotateCCW, t.width, t.height)
}

// flipHorizontal remaps x over [0, right] and swaps east and west children.
// A single column has nothing to swap: its children stay in NW and SW.
func flipHorizontal(n *Node, right int) *Node {
	if n == nil {
		return nil
	}
	left := n.topLeft.X
	n.topLeft.X = right - n.bottomRight.X
	n.bottomRight.X = right - left

	var c [4]*Node
	for q, child := range n.children {
		c[q] = flipHorizontal(child, right)
	}
	if n.width() == 1 {
		n.children = c
	} else {
		n.children = [4]*Node{NW: c[NE], NE: c[NW], SW: c[SE], SE: c[SW]}
	}
	return n
}

// flipVertical remaps y over [0, bottom] and swaps north and south children.
// A single row keeps its children in NW and NE.
func flipVertical(n *Node, bottom int) *Node {
	if n == nil {
		return nil
	}
	top := n.topLeft.Y
	n.topLeft.Y = bottom - n.bottomRight.Y
	n.bottomRight.Y = bottom - top

	var c [4]*Node
	for q, child := range n.children {
		c[q] = flipVertical(child, bottom)
	}
	if n.height() == 1 {
		n.children = c
	} else {
		n.children = [4]*Node{NW: c[SW], NE: c[SE], SW: c[NW], SE: c[NE]}
	}
	return n
}

// transpose swaps the axes of every rectangle. NE and SW trade places, which
// also turns a column's NW/SW pair into a row's NW/NE pair and back.
func transpose(n *Node) *Node {
	if n == nil {
		return nil
	}
	var c [4]*Node
	for q, child := range n.children {
		c[q] = transpose(child)
	}

	n.topLeft.X, n.topLeft.Y = n.topLeft.Y, n.topLeft.X
	n.bottomRight.X, n.bottomRight.Y = n.bottomRight.Y, n.bottomRight.X
	n.children = [4]*Node{NW: c[NW], NE: c[SW], SW: c[NE], SE: c[SE]}
	return n
}
