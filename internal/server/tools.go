package server

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

// treeProperties returns the schema shared by every quadtree tool, merged
// with extra.
func treeProperties(extra map[string]interface{}) map[string]interface{} {
	props := map[string]interface{}{
		"path": pathProperty(),
		"max_depth": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum subdivision depth (root is depth 0). Default 10",
			"minimum":     0,
		},
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Regions whose luma-weighted RMS error (0-255 scale) is at or below this are not subdivided. Default 13",
		},
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func depthProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Level of detail: nodes deeper than this are hidden and their ancestors shown flat. Defaults to the tree height",
		"minimum":     0,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and size.",
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

		// Quadtree Construction
		{
			Name:        "quadtree_build",
			Description: "Build a quadtree approximation of an image and return its summary at full detail. Trees are cached per path and configuration.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": treeProperties(nil),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "quadtree_summary",
			Description: "Report leaf count and total, average, maximum and standard deviation of distortion at a level of detail.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": treeProperties(map[string]interface{}{
					"depth": depthProperty(),
				}),
				"required": []string{"path"},
			},
		},

		// Quadtree Output
		{
			Name:        "quadtree_render",
			Description: "Reconstruct the image from quadtree regions at a level of detail and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": treeProperties(map[string]interface{}{
					"depth": depthProperty(),
					"show_lines": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw a one-pixel border inside every region",
						"default":     false,
					},
					"show_edge": map[string]interface{}{
						"type":        "boolean",
						"description": "Fill true leaves in white and leave depth-pruned regions black",
						"default":     false,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional nearest-neighbor scale factor. Default 1.0",
						"default":     1.0,
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "quadtree_serialize",
			Description: "Encode the regions at a level of detail as 7 integers each (x, y, width, height, r, g, b), either as a JSON array or as base64 little-endian int32 records (28 bytes each).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": treeProperties(map[string]interface{}{
					"depth": depthProperty(),
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"ints", "bytes"},
						"description": "Output form. Default ints",
						"default":     "ints",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "quadtree_leaves",
			Description: "List the regions at a level of detail with their box, color, depth, error and whether each is a true leaf.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": treeProperties(map[string]interface{}{
					"depth": depthProperty(),
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "quadtree_animate",
			Description: "Render every level of detail from the root to the full tree as an animated GIF, returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": treeProperties(map[string]interface{}{
					"delay_ms": map[string]interface{}{
						"type":        "integer",
						"description": "Milliseconds per frame. Default 1000",
						"default":     1000,
					},
					"loop_count": map[string]interface{}{
						"type":        "integer",
						"description": "0 loops forever, -1 plays once. Default 0",
						"default":     0,
					},
					"hold": map[string]interface{}{
						"type":        "integer",
						"description": "Number of copies of the final frame. Default 5",
						"default":     5,
					},
					"show_lines": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw region borders on every frame",
						"default":     false,
					},
					"show_edge": map[string]interface{}{
						"type":        "boolean",
						"description": "Highlight true leaves instead of filling average colors",
						"default":     false,
					},
				}),
				"required": []string{"path"},
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
