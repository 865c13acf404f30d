package quadtree

import (
	"math/rand"
	"testing"
)

// gridSource is an in-memory PixelSource backed by row-major RGB triples.
type gridSource struct {
	w, h int
	pix  []Color
}

func (s *gridSource) Width() int  { return s.w }
func (s *gridSource) Height() int { return s.h }

func (s *gridSource) RGB(x, y int) (uint8, uint8, uint8) {
	c := s.pix[y*s.w+x]
	return c.R, c.G, c.B
}

func newUniformSource(w, h int, c Color) *gridSource {
	pix := make([]Color, w*h)
	for i := range pix {
		pix[i] = c
	}
	return &gridSource{w: w, h: h, pix: pix}
}

func newNoiseSource(w, h int, seed int64) *gridSource {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]Color, w*h)
	for i := range pix {
		pix[i] = Color{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
	}
	return &gridSource{w: w, h: h, pix: pix}
}

// newQuadrantSource paints each half-width/half-height quadrant a different color.
func newQuadrantSource(w, h int) *gridSource {
	colors := [4]Color{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 255}}
	pix := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			q := 0
			if x >= w/2 {
				q++
			}
			if y >= h/2 {
				q += 2
			}
			pix[y*w+x] = colors[q]
		}
	}
	return &gridSource{w: w, h: h, pix: pix}
}

// checkerSource is the 2x2 black/white image: black left column, white right.
func checkerSource() *gridSource {
	black, white := Color{0, 0, 0}, Color{255, 255, 255}
	return &gridSource{w: 2, h: 2, pix: []Color{black, white, black, white}}
}

func mustBuild(t *testing.T, src PixelSource, cfg Config) *Tree {
	t.Helper()
	tree, err := Build(src, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

// walk visits every node of the tree regardless of level of detail.
func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}
