package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

type sampleOpts struct {
	treeFlags
	json bool
}

func (c *CLI) sampleCommand() *cobra.Command {
	var opts sampleOpts

	cmd := &cobra.Command{
		Use:   "sample <input> <x> <y>",
		Short: "Print the color a quadtree stores at a pixel",
		Long: `Build a quadtree from the input image and print the color it stores at
(x, y). With --tolerance the tree is pruned first, so the color is the
average of the merged region containing the pixel.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[1], err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[2], err)
			}
			return c.runSample(cmd, args[0], x, y, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")

	return cmd
}

func (c *CLI) runSample(cmd *cobra.Command, input string, x, y int, opts *sampleOpts) error {
	ctx := cmd.Context()

	popts := c.Config.Compress.Options()
	opts.apply(cmd, &popts)
	popts.Prune = cmd.Flags().Changed("tolerance")
	if err := popts.Validate(); err != nil {
		return err
	}

	img, err := c.loadImage(input)
	if err != nil {
		return err
	}
	tree, _, err := pipeline.Build(ctx, img, popts, loggerFromContext(ctx))
	if err != nil {
		return err
	}

	sample, err := imaging.SampleColor(tree, x, y)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sample)
	}

	col := sample.Color
	fmt.Fprintf(w, "(%d,%d) %s rgba(%d,%d,%d,%.3g) hsl(%d,%d%%,%d%%)\n",
		sample.X, sample.Y, col.Hex,
		col.RGBA.R, col.RGBA.G, col.RGBA.B, col.Alpha,
		col.HSL.H, col.HSL.S, col.HSL.L)
	return nil
}
