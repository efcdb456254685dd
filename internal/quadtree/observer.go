package quadtree

// Op identifies a geometric rewrite of the tree.
type Op int

const (
	OpFlipHorizontal Op = iota
	OpFlipVertical
	OpRotateCCW
)

func (o Op) String() string {
	switch o {
	case OpFlipHorizontal:
		return "flip-horizontal"
	case OpFlipVertical:
		return "flip-vertical"
	case OpRotateCCW:
		return "rotate-ccw"
	}
	return "unknown"
}

// Observer receives events from tree operations. Implementations must not
// call back into the tree.
type Observer interface {
	// Built is called once New has finished building the tree.
	Built(width, height, nodes int)

	// Pruned reports the tolerance used and how many nodes were removed.
	Pruned(tolerance float64, removed int)

	// Transformed is called after a flip or rotation with the tree's
	// dimensions at that point.
	Transformed(op Op, width, height int)

	// Rotated reports the dimension swap performed halfway through RotateCCW.
	Rotated(beforeWidth, beforeHeight, afterWidth, afterHeight int)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Built(int, int, int)        {}
func (NopObserver) Pruned(float64, int)        {}
func (NopObserver) Transformed(Op, int, int)   {}
func (NopObserver) Rotated(int, int, int, int) {}
