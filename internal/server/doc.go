// Package server implements the MCP (Model Context Protocol) server for
// quadtree image approximation.
//
// This package provides a JSON-RPC 2.0 server that exposes quadtree
// construction, rendering and serialization through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
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
// Quadtree Construction:
//   - quadtree_build: Build a tree and report its full-detail summary
//   - quadtree_summary: Leaf count and distortion at a level of detail
//
// Quadtree Output:
//   - quadtree_render: Reconstructed image as base64 PNG
//   - quadtree_serialize: Flat 7-integer records, as ints or int32 bytes
//   - quadtree_leaves: Visible regions with color and error
//   - quadtree_animate: Animated GIF stepping through every depth
//
// Every quadtree tool accepts optional max_depth and threshold overrides; the
// server defaults come from Options.
//
// # Caching
//
// Decoded images are cached by path. Built trees are cached by path and
// configuration, so rendering the same tree at several depths builds it once.
// Both caches persist for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
