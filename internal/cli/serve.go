package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-quadtree/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: `Serve MCP (Model Context Protocol) requests, one JSON-RPC message per line
on stdin, with responses on stdout. Logs go to stderr. Tool defaults come
from the [compress] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			logger.Debug("starting MCP server", "version", version, "commit", commit)

			srv := server.New(
				server.WithLogger(logger),
				server.WithDefaults(c.Config.Compress.Options()),
				server.WithVersion(version),
			)
			return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
