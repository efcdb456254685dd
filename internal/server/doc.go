// Package server implements the MCP (Model Context Protocol) server for
// quadtree image compression.
//
// The server speaks JSON-RPC 2.0 over stdio: one request per line on stdin,
// one response per line on stdout. Logs go to the logger given with
// WithLogger and never to stdout.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Quadtree Operations:
//   - quadtree_compress: Prune, transform and render an image
//   - quadtree_stats: Node and leaf counts before and after pruning
//   - quadtree_sample_color: Color stored in the tree at a pixel
//   - quadtree_dominant_colors: Area-weighted palette from the tree's leaves
//
// Every quadtree tool accepts path, tolerance, metric and blur. Omitting
// tolerance skips pruning, so results describe the image exactly.
//
// # Image Caching
//
// Decoded images are cached by path and decoded again when the file changes.
// Trees are rebuilt for every call since pruning and transforms are
// destructive.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors:
//   - -32602: malformed params or invalid tool arguments
//   - -32000: the tool ran and failed (missing file, out-of-bounds pixel)
//   - -32601: unknown method
//   - -32700: a line that is not valid JSON (answered with a null id)
//
// The Go error string is carried in the error's data field.
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil {
//	    return err
//	}
package server
