package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

// compressOpts holds the command-line flags for the compress command.
type compressOpts struct {
	treeFlags
	output      string
	scale       int
	flipH       bool
	flipV       bool
	rotate      int
	outline     string
	noPrune     bool
	jpegQuality int
}

func (c *CLI) compressCommand() *cobra.Command {
	var opts compressOpts

	cmd := &cobra.Command{
		Use:   "compress <input>",
		Short: "Prune, transform and render an image",
		Long: `Build a quadtree from the input image, merge regions whose pixels all lie
within --tolerance of the region average, apply flips and rotations, and
write the rendered result. The output format follows the file extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompress(cmd, args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (png, jpg, gif, bmp, tiff)")
	cmd.Flags().IntVarP(&opts.scale, "scale", "s", 1, "integer upscale factor")
	cmd.Flags().BoolVar(&opts.flipH, "flip-h", false, "mirror left to right")
	cmd.Flags().BoolVar(&opts.flipV, "flip-v", false, "mirror top to bottom")
	cmd.Flags().IntVar(&opts.rotate, "rotate", 0, "quarter turns counter-clockwise (negative for clockwise)")
	cmd.Flags().StringVar(&opts.outline, "outline", "", "draw leaf borders in this hex color (#RRGGBB or #RRGGBBAA)")
	cmd.Flags().BoolVar(&opts.noPrune, "no-prune", false, "keep every pixel")
	cmd.Flags().IntVar(&opts.jpegQuality, "jpeg-quality", imaging.DefaultJPEGQuality, "JPEG output quality (1-100)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runCompress(cmd *cobra.Command, input string, opts *compressOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts := c.Config.Compress.Options()
	opts.apply(cmd, &popts)
	if cmd.Flags().Changed("scale") {
		popts.Scale = opts.scale
	}
	if cmd.Flags().Changed("outline") {
		popts.Outline = opts.outline
	}
	popts.Prune = !opts.noPrune
	popts.FlipHorizontal = opts.flipH
	popts.FlipVertical = opts.flipV
	popts.Rotations = opts.rotate

	quality := c.Config.Compress.JPEGQuality
	if cmd.Flags().Changed("jpeg-quality") {
		quality = opts.jpegQuality
	}

	// Fail on bad arguments before decoding anything.
	if err := popts.Validate(); err != nil {
		return err
	}
	if err := imaging.CheckOutputPath(opts.output); err != nil {
		return err
	}

	img, err := c.loadImage(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded image", "path", input, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	result, err := pipeline.Run(ctx, img, popts, logger)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := imaging.Save(result.Image, opts.output, quality); err != nil {
		return err
	}
	logger.Info("wrote image", "path", opts.output)

	printCompressSummary(cmd.OutOrStdout(), opts.output, result)
	return nil
}

func printCompressSummary(w io.Writer, path string, r *pipeline.Result) {
	fmt.Fprintf(w, "%s: %dx%d, %d -> %d nodes (%.1f%%), %d leaves, depth %d\n",
		path, r.Width, r.Height, r.NodesBefore, r.NodesAfter, r.Ratio*100, r.Leaves, r.Depth)
}

