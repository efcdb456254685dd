package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-quadtree/internal/imaging"
	"github.com/ironsheep/image-quadtree/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "quadtree_compress").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArgs marks argument errors so they map to -32602.
var errInvalidArgs = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Bad arguments return -32602; any other tool failure returns -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Quadtree Operations
	case "quadtree_compress":
		return s.handleQuadtreeCompress(ctx, args)
	case "quadtree_stats":
		return s.handleQuadtreeStats(ctx, args)
	case "quadtree_sample_color":
		return s.handleQuadtreeSampleColor(ctx, args)
	case "quadtree_dominant_colors":
		return s.handleQuadtreeDominantColors(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Quadtree Handlers ===

// treeArgs are shared by every quadtree tool. A nil Tolerance disables
// pruning.
type treeArgs struct {
	Path      string   `json:"path"`
	Tolerance *float64 `json:"tolerance"`
	Metric    string   `json:"metric"`
	Blur      float64  `json:"blur"`
	Region    string   `json:"region"`
}

func (a treeArgs) options(defaults pipeline.Options) pipeline.Options {
	opts := defaults
	opts.Prune = a.Tolerance != nil
	if a.Tolerance != nil {
		opts.Tolerance = *a.Tolerance
	}
	if a.Metric != "" {
		opts.Metric = a.Metric
	}
	if a.Blur != 0 {
		opts.Blur = a.Blur
	}
	if a.Region != "" {
		opts.Region = a.Region
	}
	return opts
}

type quadtreeCompressArgs struct {
	treeArgs
	Scale          int    `json:"scale"`
	FlipHorizontal bool   `json:"flip_horizontal"`
	FlipVertical   bool   `json:"flip_vertical"`
	Rotations      int    `json:"rotations"`
	Outline        string `json:"outline"`
	OutputPath     string `json:"output_path"`
}

// compressResult is returned by quadtree_compress. Image is set unless the
// result was written to OutputPath.
type compressResult struct {
	*pipeline.Result
	OutputPath string                `json:"output_path,omitempty"`
	Image      *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleQuadtreeCompress(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a quadtreeCompressArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts := a.options(s.defaults)
	if a.Scale != 0 {
		opts.Scale = a.Scale
	}
	if a.Outline != "" {
		opts.Outline = a.Outline
	}
	opts.FlipHorizontal = a.FlipHorizontal
	opts.FlipVertical = a.FlipVertical
	opts.Rotations = a.Rotations

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	if a.OutputPath != "" {
		if err := imaging.CheckOutputPath(a.OutputPath); err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
		}
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := pipeline.Run(ctx, img, opts, s.logger)
	if err != nil {
		return nil, err
	}

	out := &compressResult{Result: result}
	if a.OutputPath != "" {
		if err := imaging.Save(result.Image, a.OutputPath, 0); err != nil {
			return nil, err
		}
		out.OutputPath = a.OutputPath
		return out, nil
	}

	out.Image, err = imaging.EncodePNGBase64(result.Image)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Server) handleQuadtreeStats(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a treeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts := a.options(s.defaults)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return pipeline.Analyze(ctx, img, opts, s.logger)
}

type quadtreeSampleColorArgs struct {
	treeArgs
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleQuadtreeSampleColor(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a quadtreeSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts := a.options(s.defaults)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	tree, _, err := pipeline.Build(ctx, img, opts, s.logger)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(tree, a.X, a.Y)
}

type quadtreeDominantColorsArgs struct {
	treeArgs
	Count int `json:"count"`
}

func (s *Server) handleQuadtreeDominantColors(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a quadtreeDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	opts := a.options(s.defaults)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	tree, _, err := pipeline.Build(ctx, img, opts, s.logger)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(tree, a.Count)
}
