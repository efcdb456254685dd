package server

import (
	"strings"

	"github.com/ironsheep/image-quadtree/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// treeProperties are the arguments shared by every quadtree tool.
func treeProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"tolerance": map[string]interface{}{
			"type":        "number",
			"description": "Prune regions whose pixels all lie within this color distance of the region average. Omit to keep every pixel.",
			"minimum":     0,
		},
		"metric": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"rgba", "lab", "ciede2000"},
			"description": "Color distance used for pruning. rgba ranges 0-510; lab and ciede2000 are in ΔE units (about 2.3 is just noticeable). Default rgba",
		},
		"blur": map[string]interface{}{
			"type":        "number",
			"description": "Gaussian blur radius applied before building the tree. Default 0 (off)",
			"minimum":     0,
		},
		"region": map[string]interface{}{
			"type":        "string",
			"description": "Build the tree from part of the image only: \"x1,y1,x2,y2\" (x2, y2 exclusive) or one of " + strings.Join(imaging.RegionNames(), ", ") + ". Coordinates of other arguments are relative to the region",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	compress := treeProperties()
	compress["scale"] = map[string]interface{}{
		"type":        "integer",
		"description": "Integer upscale factor for the rendered image. Default 1",
		"default":     1,
		"minimum":     1,
	}
	compress["flip_horizontal"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Mirror left to right",
	}
	compress["flip_vertical"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Mirror top to bottom",
	}
	compress["rotations"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of 90° counter-clockwise rotations applied after flips; negative values rotate clockwise",
	}
	compress["outline"] = map[string]interface{}{
		"type":        "string",
		"description": "Hex color (#RRGGBB or #RRGGBBAA) for drawing leaf region borders. Omit for no outline",
	}
	compress["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Write the result to this path (format from extension) instead of returning it as base64 PNG",
	}

	sample := treeProperties()
	sample["x"] = map[string]interface{}{
		"type":        "integer",
		"description": "X coordinate (0-based, from left)",
	}
	sample["y"] = map[string]interface{}{
		"type":        "integer",
		"description": "Y coordinate (0-based, from top)",
	}

	dominant := treeProperties()
	dominant["count"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of colors to return. Default 5",
		"default":     5,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and pixel count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Quadtree Operations
		{
			Name:        "quadtree_compress",
			Description: "Build a region quadtree from an image, prune it at a color tolerance, optionally flip and rotate it, and render the result. Returns node counts and the rendered image as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": compress,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "quadtree_stats",
			Description: "Report node count, leaf count and depth of an image's quadtree, before and after pruning at the given tolerance.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": treeProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "quadtree_sample_color",
			Description: "Get the color the quadtree stores at a pixel. With a tolerance this is the average of the pruned region containing the pixel.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sample,
				"required":   []string{"path", "x", "y"},
			},
		},
		{
			Name:        "quadtree_dominant_colors",
			Description: "Find the colors covering the most area of the image, weighting each quadtree leaf by its size.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": dominant,
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
