package quadtree

import "fmt"

// Node is one region of the tree. A node owns its children; empty slots are
// nil. Nodes are never modified after Build returns.
type Node struct {
	Box      Box
	Depth    int
	Stats    Stats
	Leaf     bool
	Children [4]*Node
}

// newNode computes the statistics of box immediately.
func newNode(src PixelSource, box Box, depth int) *Node {
	return &Node{
		Box:   box,
		Depth: depth,
		Stats: RegionStats(src, box),
	}
}

// Tree is a finished quadtree over a width x height image.
type Tree struct {
	Root      *Node
	Width     int
	Height    int
	MaxDepth  int
	Threshold float64

	// TreeHeight is the depth of the deepest leaf. It never exceeds MaxDepth.
	TreeHeight int
}

// Build subdivides src under cfg and returns the finished tree.
//
// Nodes are evaluated in pre-order, children in quadrant order. A node
// becomes a leaf when it reaches cfg.MaxDepth, when its error is at or below
// cfg.Threshold, or when its own box covers at most one pixel. Otherwise every
// non-empty quadrant becomes a child.
// Every node rescans its own pixels; nothing is derived from parent or child
// statistics.
func Build(src PixelSource, cfg Config) (*Tree, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := src.Width(), src.Height()
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("quadtree: invalid source dimensions %dx%d", w, h)
	}

	b := builder{src: src, cfg: cfg}
	root := newNode(src, Box{W: w, H: h}, 0)

	return &Tree{
		Root:       root,
		Width:      w,
		Height:     h,
		MaxDepth:   cfg.MaxDepth,
		Threshold:  cfg.Threshold,
		TreeHeight: b.build(root),
	}, nil
}

type builder struct {
	src PixelSource
	cfg Config
}

// build evaluates n and its descendants and returns the deepest leaf depth
// reached below (and including) n.
func (b *builder) build(n *Node) int {
	if n.Depth >= b.cfg.MaxDepth || n.Stats.Error <= b.cfg.Threshold {
		n.Leaf = true
		return n.Depth
	}

	if !n.Box.Subdividable() {
		n.Leaf = true
		return n.Depth
	}

	instantiated := false
	for i, q := range n.Box.Quadrants() {
		if q.Empty() {
			continue
		}
		n.Children[i] = newNode(b.src, q, n.Depth+1)
		instantiated = true
	}
	if !instantiated {
		n.Leaf = true
		return n.Depth
	}

	height := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		height = max(height, b.build(c))
	}
	return height
}
