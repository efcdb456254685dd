package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_load",
		"image_dimensions",
		"quadtree_compress",
		"quadtree_stats",
		"quadtree_sample_color",
		"quadtree_dominant_colors",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("InputSchema required should be a string slice")
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required property %q not in properties", name)
				}
			}
		})
	}
}

func TestToolDefinitions_QuadtreeArguments(t *testing.T) {
	tools := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		tools[tool.Name] = tool
	}

	tests := []struct {
		tool  string
		props []string
	}{
		{"quadtree_compress", []string{"path", "tolerance", "metric", "blur", "scale", "flip_horizontal", "flip_vertical", "rotations", "outline", "output_path"}},
		{"quadtree_stats", []string{"path", "tolerance", "metric", "blur"}},
		{"quadtree_sample_color", []string{"path", "x", "y", "tolerance"}},
		{"quadtree_dominant_colors", []string{"path", "count", "tolerance"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			props := tools[tt.tool].InputSchema["properties"].(map[string]interface{})
			for _, name := range tt.props {
				if _, ok := props[name]; !ok {
					t.Errorf("property %q missing", name)
				}
			}
		})
	}
}

// The compress-only properties must not leak into the shared schema.
func TestToolDefinitions_IndependentSchemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "quadtree_stats" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		if _, ok := props["scale"]; ok {
			t.Error("quadtree_stats should not accept scale")
		}
	}
}
