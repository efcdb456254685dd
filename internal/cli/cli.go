// Package cli implements the image-quadtree command-line interface.
//
// # Commands
//
//   - compress: prune, transform and render an image to a file
//   - stats: node, leaf and depth counts before and after pruning
//   - sample: the color a tree stores at a pixel
//   - serve: the MCP server over stdio
//
// # Configuration
//
// Defaults come from the config file (see package config), which --config
// selects explicitly. Flags given on the command line override it.
//
// # Logging
//
// Logs go to stderr at the configured level; --verbose (-v) forces debug.
// Loggers are passed through context.Context.
package cli

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-quadtree/internal/config"
	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

const appName = "image-quadtree"

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	cache      *imaging.ImageCache
	configPath string
	verbose    bool
}

// New creates a CLI logging to w at info level until the config is loaded.
func New(w io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(w, log.InfoLevel),
		Config: config.Default(),
		cache:  imaging.NewImageCache(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Compress and transform images with region quadtrees",
		Long: `image-quadtree builds a region quadtree from an image, merges regions whose
colors lie within a tolerance of their average, and renders the result,
optionally flipped, rotated and upscaled.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/image-quadtree/config.toml)")

	root.AddCommand(c.compressCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// setup loads the config and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.Logger.SetLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) loadImage(path string) (image.Image, error) {
	img, err := c.cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// treeFlags are the flags shared by every command that builds a tree.
type treeFlags struct {
	tolerance float64
	metric    string
	blur      float64
	region    string
}

func (f *treeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.tolerance, "tolerance", "t", 0, "merge regions within this color distance of their average")
	cmd.Flags().StringVarP(&f.metric, "metric", "m", "", fmt.Sprintf("color distance: %v", imaging.MetricNames()))
	cmd.Flags().Float64Var(&f.blur, "blur", 0, "Gaussian blur radius applied before building the tree")
	cmd.Flags().StringVar(&f.region, "region", "", fmt.Sprintf("only use this part of the image: x1,y1,x2,y2 or one of %v", imaging.RegionNames()))
}

// apply overrides opts with the flags set on the command line.
func (f *treeFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("tolerance") {
		opts.Tolerance = f.tolerance
	}
	if cmd.Flags().Changed("metric") {
		opts.Metric = f.metric
	}
	if cmd.Flags().Changed("blur") {
		opts.Blur = f.blur
	}
	if cmd.Flags().Changed("region") {
		opts.Region = f.region
	}
}
