package quadtree

import (
	"fmt"
	"image"
	"testing"

	"github.com/disintegration/imaging"
)

var transformSizes = []image.Point{
	{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 3}, {4, 7}, {7, 4}, {16, 9}, {5, 13},
}

func TestFlipHorizontal_MatchesImaging(t *testing.T) {
	for _, size := range transformSizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			img := createGradientImage(size.X, size.Y)
			tree := mustBuild(t, img)
			tree.FlipHorizontal()
			mustValidate(t, tree)
			assertSameImage(t, mustRender(t, tree, 1), imaging.FlipH(img))
		})
	}
}

func TestFlipVertical_MatchesImaging(t *testing.T) {
	for _, size := range transformSizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			img := createGradientImage(size.X, size.Y)
			tree := mustBuild(t, img)
			tree.FlipVertical()
			mustValidate(t, tree)
			assertSameImage(t, mustRender(t, tree, 1), imaging.FlipV(img))
		})
	}
}

func TestRotateCCW_MatchesImaging(t *testing.T) {
	for _, size := range transformSizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			img := createGradientImage(size.X, size.Y)
			tree := mustBuild(t, img)
			tree.RotateCCW()
			mustValidate(t, tree)

			if tree.Width() != size.Y || tree.Height() != size.X {
				t.Fatalf("dimensions: got %dx%d, want %dx%d", tree.Width(), tree.Height(), size.Y, size.X)
			}
			// imaging.Rotate90 rotates counter-clockwise.
			assertSameImage(t, mustRender(t, tree, 1), imaging.Rotate90(img))
		})
	}
}

func TestFlipHorizontal_Involution(t *testing.T) {
	img := createGradientImage(9, 6)
	tree := mustBuild(t, img)
	tree.FlipHorizontal()
	tree.FlipHorizontal()
	mustValidate(t, tree)
	assertSameImage(t, mustRender(t, tree, 1), img)
}

func TestFlipVertical_Involution(t *testing.T) {
	img := createGradientImage(6, 9)
	tree := mustBuild(t, img)
	tree.FlipVertical()
	tree.FlipVertical()
	mustValidate(t, tree)
	assertSameImage(t, mustRender(t, tree, 1), img)
}

func TestRotateCCW_FourTimesIsIdentity(t *testing.T) {
	for _, size := range transformSizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			img := createGradientImage(size.X, size.Y)
			tree := mustBuild(t, img)
			for i := 0; i < 4; i++ {
				tree.RotateCCW()
				mustValidate(t, tree)
			}
			assertSameImage(t, mustRender(t, tree, 1), img)
		})
	}
}

func TestRotateCCW_SlotsFollowGeometry(t *testing.T) {
	tree := mustBuild(t, createGradientImage(4, 4))
	before := tree.Root().children

	tree.RotateCCW()
	after := tree.Root().children

	want := map[Quadrant]*Node{NW: before[NE], NE: before[SE], SE: before[SW], SW: before[NW]}
	for q, n := range want {
		if after[q] != n {
			t.Errorf("%s slot holds the wrong child", q)
		}
	}
}

func TestRotateCCW_DegenerateSlots(t *testing.T) {
	column := mustBuild(t, createGradientImage(1, 4))
	top := column.Root().Child(NW)
	column.RotateCCW()
	root := column.Root()
	if root.Child(NW) != top || root.Child(NE) == nil {
		t.Error("rotated column should become a row with its top half in NW")
	}
	if root.Child(SW) != nil || root.Child(SE) != nil {
		t.Error("rotated column should not use south slots")
	}

	row := mustBuild(t, createGradientImage(4, 1))
	right := row.Root().Child(NE)
	row.RotateCCW()
	root = row.Root()
	if root.Child(NW) != right || root.Child(SW) == nil {
		t.Error("rotated row should become a column with its right half in NW")
	}
}

func TestTransforms_PreserveAverages(t *testing.T) {
	tree := mustBuild(t, createGradientImage(8, 5))
	before := make(map[*Node]Pixel)
	tree.Walk(func(n *Node) bool {
		before[n] = n.Average()
		return true
	})

	tree.FlipHorizontal()
	tree.RotateCCW()
	tree.FlipVertical()

	tree.Walk(func(n *Node) bool {
		if before[n] != n.Average() {
			t.Errorf("average of %v changed: got %v, want %v", n.Bounds(), n.Average(), before[n])
		}
		return true
	})
}

func TestTransforms_OnPrunedTree(t *testing.T) {
	img := createQuadrantImage(10, 6)
	tree := mustBuild(t, img)
	if err := tree.Prune(0); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	pruned := mustRender(t, tree, 1)

	tree.RotateCCW()
	mustValidate(t, tree)
	assertSameImage(t, mustRender(t, tree, 1), imaging.Rotate90(pruned))

	tree.FlipHorizontal()
	mustValidate(t, tree)
	assertSameImage(t, mustRender(t, tree, 1), imaging.FlipH(imaging.Rotate90(pruned)))
}

func TestTransforms_ComposedMatchImaging(t *testing.T) {
	img := createGradientImage(11, 7)
	tree := mustBuild(t, img)

	tree.FlipVertical()
	tree.RotateCCW()
	tree.RotateCCW()
	tree.FlipHorizontal()
	mustValidate(t, tree)

	want := imaging.FlipH(imaging.Rotate90(imaging.Rotate90(imaging.FlipV(img))))
	assertSameImage(t, mustRender(t, tree, 1), want)
}

func TestRotateCCW_NotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	tree := mustBuild(t, createGradientImage(5, 3), WithObserver(obs))
	tree.RotateCCW()
	tree.FlipHorizontal()

	if len(obs.rotated) != 1 {
		t.Fatalf("Rotated events: got %d, want 1", len(obs.rotated))
	}
	if got, want := obs.rotated[0], [4]int{5, 3, 3, 5}; got != want {
		t.Errorf("Rotated: got %v, want %v", got, want)
	}
	wantOps := []Op{OpRotateCCW, OpFlipHorizontal}
	if len(obs.ops) != len(wantOps) {
		t.Fatalf("ops: got %v, want %v", obs.ops, wantOps)
	}
	for i := range wantOps {
		if obs.ops[i] != wantOps[i] {
			t.Errorf("op %d: got %s, want %s", i, obs.ops[i], wantOps[i])
		}
	}
}
