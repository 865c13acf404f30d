package quadtree

import "fmt"

// Visit calls fn for every node visible at the given level of detail, in
// pre-order. Descent stops at a true leaf or at a node whose depth equals
// depth, whichever comes first.
func (t *Tree) Visit(depth int, fn func(*Node)) error {
	if depth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	visit(t.Root, depth, fn)
	return nil
}

func visit(n *Node, depth int, fn func(*Node)) {
	if n == nil {
		return
	}
	if n.Leaf || n.Depth == depth {
		fn(n)
		return
	}
	for _, c := range n.Children {
		visit(c, depth, fn)
	}
}

// Leaves returns the nodes visible at depth. Internal nodes cut off by depth
// are returned with their own statistics.
func (t *Tree) Leaves(depth int) ([]*Node, error) {
	var nodes []*Node
	if err := t.Visit(depth, func(n *Node) {
		nodes = append(nodes, n)
	}); err != nil {
		return nil, err
	}
	return nodes, nil
}
