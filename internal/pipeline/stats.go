package pipeline

import (
	"context"
	"image"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	Nodes  int `json:"nodes"`
	Leaves int `json:"leaves"`
	Depth  int `json:"depth"`
}

// Stats describes a tree before and, when opts.Prune is set, after pruning.
type Stats struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Pixels int        `json:"pixels"`
	Full   TreeStats  `json:"full"`
	Pruned *TreeStats `json:"pruned,omitempty"`

	// Ratio is Pruned.Nodes / Full.Nodes, or 1 without pruning.
	Ratio float64 `json:"ratio"`
}

func statsOf(t *quadtree.Tree) TreeStats {
	return TreeStats{Nodes: t.CountNodes(), Leaves: t.CountLeaves(), Depth: t.Depth()}
}

// Analyze builds a tree for img and reports its size. Transform and render
// options are ignored.
func Analyze(ctx context.Context, img image.Image, opts Options, logger *log.Logger) (*Stats, error) {
	prune := opts.Prune
	opts.Prune = false

	tree, _, err := Build(ctx, img, opts, logger)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Width:  tree.Width(),
		Height: tree.Height(),
		Pixels: tree.Width() * tree.Height(),
		Full:   statsOf(tree),
		Ratio:  1,
	}
	if !prune {
		return stats, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := tree.Prune(opts.Tolerance); err != nil {
		return nil, err
	}
	pruned := statsOf(tree)
	stats.Pruned = &pruned
	stats.Ratio = float64(pruned.Nodes) / float64(stats.Full.Nodes)
	return stats, nil
}
