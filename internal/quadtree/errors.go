package quadtree

import "errors"

var (
	// ErrEmptyImage is returned by New for a nil source or one without pixels.
	ErrEmptyImage = errors.New("quadtree: image has no pixels")

	// ErrEmptyTree is returned when an operation needs a root but the tree
	// has been cleared.
	ErrEmptyTree = errors.New("quadtree: tree is empty")

	// ErrInvalidScale is returned by Render for a scale below 1.
	ErrInvalidScale = errors.New("quadtree: scale must be at least 1")

	// ErrInvalidTolerance is returned by Prune for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("quadtree: tolerance must be a non-negative number")

	// ErrAlreadyPruned is returned by Prune when the tree, or the tree it was
	// copied from, has already been pruned.
	ErrAlreadyPruned = errors.New("quadtree: tree has already been pruned")

	// ErrOutOfBounds is returned for coordinates outside the tree's image.
	ErrOutOfBounds = errors.New("quadtree: coordinates outside image")

	// ErrInvariant is returned by Validate when a node's children do not
	// partition its rectangle.
	ErrInvariant = errors.New("quadtree: invariant violated")
)
