package server

import (
	"fmt"
	"sync"

	"github.com/ironsheep/quadtree-mcp/internal/imaging"
	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
)

type treeKey struct {
	path string
	cfg  quadtree.Config
}

// TreeCache keeps built trees keyed by image path and configuration so
// repeated render, serialize and summary calls reuse one build.
//
// Trees are immutable, so a cached tree may be shared between callers.
type TreeCache struct {
	mu    sync.RWMutex
	trees map[treeKey]*quadtree.Tree
}

// NewTreeCache creates an empty tree cache.
func NewTreeCache() *TreeCache {
	return &TreeCache{trees: make(map[treeKey]*quadtree.Tree)}
}

// Load returns the tree for path under cfg, building it from images on first
// use. built reports whether this call performed the build.
func (c *TreeCache) Load(images *imaging.ImageCache, path string, cfg quadtree.Config) (tree *quadtree.Tree, built bool, err error) {
	key := treeKey{path: path, cfg: cfg}

	c.mu.RLock()
	tree, ok := c.trees[key]
	c.mu.RUnlock()
	if ok {
		return tree, false, nil
	}

	img, err := images.Load(path)
	if err != nil {
		return nil, false, err
	}
	tree, err = quadtree.Build(imaging.NewPixelSource(img), cfg)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build quadtree for %s: %w", path, err)
	}

	c.mu.Lock()
	c.trees[key] = tree
	c.mu.Unlock()

	return tree, true, nil
}

// Evict drops every tree built from path.
func (c *TreeCache) Evict(path string) {
	c.mu.Lock()
	for k := range c.trees {
		if k.path == path {
			delete(c.trees, k)
		}
	}
	c.mu.Unlock()
}

// Len returns the number of cached trees.
func (c *TreeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.trees)
}
