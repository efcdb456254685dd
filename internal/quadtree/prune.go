package quadtree

import (
	"fmt"
	"math"
)

// Prune collapses every subtree whose leaves all lie within tolerance of the
// subtree's own average. The decision is made as high as possible along each
// branch; sibling branches are decided independently. A collapsed node keeps
// its average and becomes a leaf.
//
// Prune may only run once per tree: averages of merged leaves no longer
// describe single pixels, so a second pass would compare against the wrong
// colors. Calling it on a pruned tree, or a copy of one, returns
// ErrAlreadyPruned.
func (t *Tree) Prune(tolerance float64) error {
	if math.IsNaN(tolerance) || tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, tolerance)
	}
	if t.pruned {
		return ErrAlreadyPruned
	}
	if t.root == nil {
		return ErrEmptyTree
	}

	removed := t.prune(t.root, tolerance)
	t.pruned = true
	t.observer.Pruned(tolerance, removed)
	return nil
}

func (t *Tree) prune(n *Node, tolerance float64) int {
	if n == nil {
		return 0
	}

	removed := 0
	if t.leavesWithin(n, n, tolerance) {
		for q, c := range n.children {
			removed += detach(c)
			n.children[q] = nil
		}
		return removed
	}

	for _, c := range n.children {
		removed += t.prune(c, tolerance)
	}
	return removed
}

// leavesWithin reports whether every leaf under n is within tolerance of
// root's average. Absent children hold no leaves and pass.
func (t *Tree) leavesWithin(root, n *Node, tolerance float64) bool {
	if n == nil {
		return true
	}
	if n.IsLeaf() {
		return t.distance(n.average, root.average) <= tolerance
	}
	for _, c := range n.children {
		if !t.leavesWithin(root, c, tolerance) {
			return false
		}
	}
	return true
}
