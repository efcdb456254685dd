// Package pipeline runs the full image compression flow shared by the CLI and
// the MCP server.
//
// A run goes through these stages, each optional except build and render:
//
//  1. Crop: keep only Region of the input
//  2. Blur: Gaussian pre-blur so that pruning can merge grainy regions
//  3. Build: a quadtree with one leaf per pixel
//  4. Prune: collapse regions within Tolerance of their average
//  5. Transform: horizontal flip, vertical flip, then Rotations × 90° CCW
//  6. Render: paint every leaf at Scale
//  7. Outline: draw leaf borders over the rendered image
//
// # Usage
//
//	opts := pipeline.DefaultOptions()
//	opts.Tolerance = 12
//	result, err := pipeline.Run(ctx, img, opts, logger)
//	if err != nil {
//	    return err
//	}
//	imaging.Save(result.Image, "out.png", 0)
package pipeline

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/quadtree"
)

const (
	// DefaultScale renders at the source resolution.
	DefaultScale = 1

	// DefaultMetric is the color distance used by Prune.
	DefaultMetric = imaging.MetricRGBA

	// MaxScale bounds the rendered image to a sane size.
	MaxScale = 64
)

// Options configures a pipeline run. The JSON form is what MCP clients send.
type Options struct {
	// Crop stage: a name from imaging.RegionNames or "x1,y1,x2,y2"
	Region string `json:"region,omitempty"`

	// Prune stage
	Prune     bool    `json:"prune"`
	Tolerance float64 `json:"tolerance"`
	Metric    string  `json:"metric,omitempty"`
	Blur      float64 `json:"blur,omitempty"`

	// Transform stage
	FlipHorizontal bool `json:"flip_horizontal,omitempty"`
	FlipVertical   bool `json:"flip_vertical,omitempty"`
	Rotations      int  `json:"rotations,omitempty"` // counter-clockwise quarter turns, any integer

	// Render stage
	Scale   int    `json:"scale,omitempty"`
	Outline string `json:"outline,omitempty"` // hex color; empty disables the overlay
}

// DefaultOptions returns lossless settings: prune identical regions only,
// render at scale 1.
func DefaultOptions() Options {
	return Options{
		Prune:  true,
		Metric: DefaultMetric,
		Scale:  DefaultScale,
	}
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Region != "" {
		if err := imaging.ValidateRegion(o.Region); err != nil {
			return err
		}
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return fmt.Errorf("tolerance must be a non-negative number, got %v", o.Tolerance)
	}
	if o.Scale < 1 || o.Scale > MaxScale {
		return fmt.Errorf("scale must be between 1 and %d, got %d", MaxScale, o.Scale)
	}
	if _, err := imaging.Metric(o.Metric); err != nil {
		return err
	}
	if math.IsNaN(o.Blur) || o.Blur < 0 {
		return fmt.Errorf("blur must be a non-negative number, got %v", o.Blur)
	}
	if o.Outline != "" {
		if _, err := imaging.ParseHexColor(o.Outline); err != nil {
			return fmt.Errorf("invalid outline color %q: %w", o.Outline, err)
		}
	}
	return nil
}

// Result is the output of a pipeline run.
type Result struct {
	Image *image.NRGBA `json:"-"`

	Width  int `json:"width"`  // rendered width in pixels
	Height int `json:"height"` // rendered height in pixels

	NodesBefore int `json:"nodes_before"`
	NodesAfter  int `json:"nodes_after"`
	Leaves      int `json:"leaves"`
	Depth       int `json:"depth"`

	// Ratio is NodesAfter / NodesBefore; 1 means nothing was pruned.
	Ratio float64 `json:"ratio"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Build validates opts and returns the tree for img after the crop, blur,
// build and prune stages. It is what Run renders; callers that only want the tree
// (stats, sampling) use it directly.
func Build(ctx context.Context, img image.Image, opts Options, logger *log.Logger) (*quadtree.Tree, int, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, fmt.Errorf("invalid options: %w", err)
	}
	if img == nil {
		return nil, 0, quadtree.ErrEmptyImage
	}
	if logger == nil {
		logger = log.Default()
	}

	if opts.Region != "" {
		cropped, err := imaging.Crop(img, opts.Region)
		if err != nil {
			return nil, 0, fmt.Errorf("crop: %w", err)
		}
		img = cropped
		logger.Debug("cropped image", "region", opts.Region,
			"width", cropped.Bounds().Dx(), "height", cropped.Bounds().Dy())
	}

	if opts.Blur > 0 {
		start := time.Now()
		blurred, err := imaging.Blur(img, opts.Blur)
		if err != nil {
			return nil, 0, fmt.Errorf("blur: %w", err)
		}
		img = blurred
		logger.Debug("blurred image", "radius", opts.Blur, "duration", time.Since(start))
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	distance, err := imaging.Metric(opts.Metric)
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	tree, err := quadtree.New(quadtree.FromImage(img),
		quadtree.WithDistance(distance),
		quadtree.WithObserver(NewLogObserver(logger)))
	if err != nil {
		return nil, 0, fmt.Errorf("build: %w", err)
	}
	nodesBefore := tree.CountNodes()
	logger.Info("built quadtree",
		"width", tree.Width(),
		"height", tree.Height(),
		"nodes", nodesBefore,
		"duration", time.Since(start))
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	if opts.Prune {
		start := time.Now()
		if err := tree.Prune(opts.Tolerance); err != nil {
			return nil, 0, fmt.Errorf("prune: %w", err)
		}
		logger.Info("pruned quadtree",
			"tolerance", opts.Tolerance,
			"metric", opts.Metric,
			"leaves", tree.CountLeaves(),
			"duration", time.Since(start))
	}

	return tree, nodesBefore, nil
}

// Run executes every stage on img.
//
// Cancellation is checked between stages; a stage that has started runs to
// completion.
func Run(ctx context.Context, img image.Image, opts Options, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	start := time.Now()

	tree, nodesBefore, err := Build(ctx, img, opts, logger)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	Transform(tree, opts)

	out, err := tree.Render(opts.Scale)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if opts.Outline != "" {
		out, err = imaging.Outline(out, tree, opts.Scale, opts.Outline)
		if err != nil {
			return nil, fmt.Errorf("outline: %w", err)
		}
	}

	nodesAfter := tree.CountNodes()
	result := &Result{
		Image:       out,
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		NodesBefore: nodesBefore,
		NodesAfter:  nodesAfter,
		Leaves:      tree.CountLeaves(),
		Depth:       tree.Depth(),
		Ratio:       float64(nodesAfter) / float64(nodesBefore),
		Elapsed:     time.Since(start),
	}

	logger.Info("rendered image",
		"width", result.Width,
		"height", result.Height,
		"scale", opts.Scale,
		"duration", result.Elapsed)

	return result, nil
}

// Transform applies the flips and rotations in opts to tree, in that order.
func Transform(tree *quadtree.Tree, opts Options) {
	if opts.FlipHorizontal {
		tree.FlipHorizontal()
	}
	if opts.FlipVertical {
		tree.FlipVertical()
	}
	for i := 0; i < normalizeRotations(opts.Rotations); i++ {
		tree.RotateCCW()
	}
}

// normalizeRotations maps any quarter-turn count into 0-3; -1 is one
// clockwise turn, which is three counter-clockwise ones.
func normalizeRotations(n int) int {
	return ((n % 4) + 4) % 4
}
