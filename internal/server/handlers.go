package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/quadtree-mcp/internal/imaging"
	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "quadtree_build").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Quadtree Construction
	case "quadtree_build":
		return s.handleQuadtreeBuild(args)
	case "quadtree_summary":
		return s.handleQuadtreeSummary(args)

	// Quadtree Output
	case "quadtree_render":
		return s.handleQuadtreeRender(args)
	case "quadtree_serialize":
		return s.handleQuadtreeSerialize(args)
	case "quadtree_leaves":
		return s.handleQuadtreeLeaves(args)
	case "quadtree_animate":
		return s.handleQuadtreeAnimate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Quadtree Helpers ===

// treeArgs is embedded by every quadtree tool. Pointer fields distinguish an
// explicit zero from an omitted value.
type treeArgs struct {
	Path      string   `json:"path"`
	MaxDepth  *int     `json:"max_depth,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
}

func (s *Server) config(a treeArgs) quadtree.Config {
	cfg := s.defaults
	if a.MaxDepth != nil {
		cfg.MaxDepth = *a.MaxDepth
	}
	if a.Threshold != nil {
		cfg.Threshold = *a.Threshold
	}
	return cfg
}

func (s *Server) loadTree(a treeArgs) (*quadtree.Tree, error) {
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	cfg := s.config(a)
	start := time.Now()
	tree, built, err := s.trees.Load(s.cache, a.Path, cfg)
	if err != nil {
		return nil, err
	}
	if built && s.debug {
		log.Printf("Built quadtree for %s (%dx%d, max_depth=%d, threshold=%g): height %d in %s",
			a.Path, tree.Width, tree.Height, cfg.MaxDepth, cfg.Threshold, tree.TreeHeight, time.Since(start))
	}
	return tree, nil
}

// resolveDepth returns *depth, or the tree height when depth is omitted.
func resolveDepth(tree *quadtree.Tree, depth *int) int {
	if depth == nil {
		return tree.TreeHeight
	}
	return *depth
}

// === Quadtree Construction Handlers ===

func (s *Server) handleQuadtreeBuild(args json.RawMessage) (interface{}, error) {
	var a treeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tree, err := s.loadTree(a)
	if err != nil {
		return nil, err
	}
	return tree.Summarize(tree.TreeHeight)
}

type quadtreeDepthArgs struct {
	treeArgs
	Depth *int `json:"depth,omitempty"`
}

func (s *Server) handleQuadtreeSummary(args json.RawMessage) (interface{}, error) {
	var a quadtreeDepthArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tree, err := s.loadTree(a.treeArgs)
	if err != nil {
		return nil, err
	}
	return tree.Summarize(resolveDepth(tree, a.Depth))
}

// === Quadtree Output Handlers ===

type quadtreeRenderArgs struct {
	treeArgs
	Depth     *int    `json:"depth,omitempty"`
	ShowLines bool    `json:"show_lines"`
	ShowEdge  bool    `json:"show_edge"`
	Scale     float64 `json:"scale"`
}

// RenderResult is a reconstructed image plus the level of detail it shows.
type RenderResult struct {
	*imaging.EncodedImage
	Depth     int `json:"depth"`
	LeafCount int `json:"leaf_count"`
}

func (s *Server) handleQuadtreeRender(args json.RawMessage) (interface{}, error) {
	var a quadtreeRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	tree, err := s.loadTree(a.treeArgs)
	if err != nil {
		return nil, err
	}

	depth := resolveDepth(tree, a.Depth)
	img, err := tree.Render(depth, quadtree.RenderOptions{ShowLines: a.ShowLines, ShowEdge: a.ShowEdge})
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNG(img, a.Scale)
	if err != nil {
		return nil, err
	}
	nodes, err := tree.Leaves(depth)
	if err != nil {
		return nil, err
	}

	return &RenderResult{EncodedImage: encoded, Depth: depth, LeafCount: len(nodes)}, nil
}

type quadtreeSerializeArgs struct {
	treeArgs
	Depth  *int   `json:"depth,omitempty"`
	Format string `json:"format"`
}

// SerializeResult carries flat records in one of two encodings: Values for
// format "ints", DataBase64 for format "bytes".
type SerializeResult struct {
	Depth           int    `json:"depth"`
	Format          string `json:"format"`
	FieldsPerRecord int    `json:"fields_per_record"`
	RecordCount     int    `json:"record_count"`
	Values          []int  `json:"values,omitempty"`
	DataBase64      string `json:"data_base64,omitempty"`
	ByteOrder       string `json:"byte_order,omitempty"`
}

func (s *Server) handleQuadtreeSerialize(args json.RawMessage) (interface{}, error) {
	var a quadtreeSerializeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "ints"
	}
	if a.Format != "ints" && a.Format != "bytes" {
		return nil, fmt.Errorf("unknown format: %s", a.Format)
	}
	tree, err := s.loadTree(a.treeArgs)
	if err != nil {
		return nil, err
	}

	depth := resolveDepth(tree, a.Depth)
	result := &SerializeResult{
		Depth:           depth,
		Format:          a.Format,
		FieldsPerRecord: quadtree.FieldsPerRecord,
	}

	if a.Format == "bytes" {
		data, err := tree.MarshalFlat(depth)
		if err != nil {
			return nil, err
		}
		result.RecordCount = len(data) / quadtree.RecordSize
		result.DataBase64 = base64.StdEncoding.EncodeToString(data)
		result.ByteOrder = "little-endian int32"
		return result, nil
	}

	values, err := tree.Flat(depth)
	if err != nil {
		return nil, err
	}
	result.RecordCount = len(values) / quadtree.FieldsPerRecord
	result.Values = values
	return result, nil
}

// LeafRecord is one visible region with its metadata.
type LeafRecord struct {
	quadtree.Box
	quadtree.Color
	Hex   string  `json:"hex"`
	Depth int     `json:"depth"`
	Error float64 `json:"error"`
	Leaf  bool    `json:"leaf"`
}

// LeavesResult lists the regions visible at Depth in traversal order.
type LeavesResult struct {
	Depth  int          `json:"depth"`
	Count  int          `json:"count"`
	Leaves []LeafRecord `json:"leaves"`
}

func (s *Server) handleQuadtreeLeaves(args json.RawMessage) (interface{}, error) {
	var a quadtreeDepthArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tree, err := s.loadTree(a.treeArgs)
	if err != nil {
		return nil, err
	}

	depth := resolveDepth(tree, a.Depth)
	nodes, err := tree.Leaves(depth)
	if err != nil {
		return nil, err
	}

	records := make([]LeafRecord, len(nodes))
	for i, n := range nodes {
		records[i] = LeafRecord{
			Box:   n.Box,
			Color: n.Stats.Color,
			Hex:   imaging.HexColor(n.Stats.Color),
			Depth: n.Depth,
			Error: n.Stats.Error,
			Leaf:  n.Leaf,
		}
	}
	return &LeavesResult{Depth: depth, Count: len(records), Leaves: records}, nil
}

type quadtreeAnimateArgs struct {
	treeArgs
	DelayMS   int  `json:"delay_ms"`
	LoopCount int  `json:"loop_count"`
	Hold      int  `json:"hold"`
	ShowLines bool `json:"show_lines"`
	ShowEdge  bool `json:"show_edge"`
}

func (s *Server) handleQuadtreeAnimate(args json.RawMessage) (interface{}, error) {
	var a quadtreeAnimateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tree, err := s.loadTree(a.treeArgs)
	if err != nil {
		return nil, err
	}

	return imaging.EncodeAnimationBase64(tree, imaging.AnimationOptions{
		Delay:     time.Duration(a.DelayMS) * time.Millisecond,
		LoopCount: a.LoopCount,
		Hold:      a.Hold,
		Render:    quadtree.RenderOptions{ShowLines: a.ShowLines, ShowEdge: a.ShowEdge},
	})
}
