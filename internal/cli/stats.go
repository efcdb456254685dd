package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

type statsOpts struct {
	treeFlags
	colors int
	json   bool
}

// statsReport is the --json form of the stats command.
type statsReport struct {
	*pipeline.Stats
	Colors []imaging.ColorFrequency `json:"colors,omitempty"`
}

func (c *CLI) statsCommand() *cobra.Command {
	var opts statsOpts

	cmd := &cobra.Command{
		Use:   "stats <input>",
		Short: "Show quadtree size before and after pruning",
		Long: `Build a quadtree from the input image and report its node count, leaf count
and depth. With --tolerance the tree is pruned and reported again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&opts.colors, "colors", 0, "also list the N colors covering the most area")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")

	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, input string, opts *statsOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts := c.Config.Compress.Options()
	opts.apply(cmd, &popts)
	popts.Prune = cmd.Flags().Changed("tolerance")
	if err := popts.Validate(); err != nil {
		return err
	}
	if opts.colors < 0 {
		return fmt.Errorf("--colors must not be negative, got %d", opts.colors)
	}

	img, err := c.loadImage(input)
	if err != nil {
		return err
	}

	stats, err := pipeline.Analyze(ctx, img, popts, logger)
	if err != nil {
		return err
	}
	report := statsReport{Stats: stats}

	if opts.colors > 0 {
		tree, _, err := pipeline.Build(ctx, img, popts, logger)
		if err != nil {
			return err
		}
		dominant, err := imaging.DominantColors(tree, opts.colors)
		if err != nil {
			return err
		}
		report.Colors = dominant.Colors
	}

	w := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printStats(w, &report)
	return nil
}

func printStats(w io.Writer, r *statsReport) {
	fmt.Fprintf(w, "image   %dx%d (%d pixels)\n", r.Width, r.Height, r.Pixels)
	fmt.Fprintf(w, "full    %d nodes, %d leaves, depth %d\n", r.Full.Nodes, r.Full.Leaves, r.Full.Depth)
	if r.Pruned != nil {
		fmt.Fprintf(w, "pruned  %d nodes, %d leaves, depth %d (%.1f%%)\n",
			r.Pruned.Nodes, r.Pruned.Leaves, r.Pruned.Depth, r.Ratio*100)
	}
	for _, c := range r.Colors {
		fmt.Fprintf(w, "color   %s %5.1f%%\n", c.Hex, c.Percentage)
	}
}
