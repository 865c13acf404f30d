package quadtree

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func nrgbaOf(c Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func TestRender_ReconstructsLeaves(t *testing.T) {
	src := checkerSource()
	tree := mustBuild(t, src, Config{MaxDepth: 1, Threshold: 0})

	img, err := tree.Render(1, RenderOptions{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v, want 2x2", img.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := nrgbaOf(src.pix[y*2+x])
			if got := img.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRender_PrunedDepthUsesNodeAverage(t *testing.T) {
	tree := mustBuild(t, checkerSource(), Config{MaxDepth: 1, Threshold: 0})

	img, err := tree.Render(0, RenderOptions{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := color.NRGBA{127, 127, 127, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRender_ShowEdge(t *testing.T) {
	tree := mustBuild(t, checkerSource(), Config{MaxDepth: 1, Threshold: 0})

	tests := []struct {
		name  string
		depth int
		want  color.NRGBA
	}{
		// The root is internal, so nothing is painted at depth 0.
		{"pruned internal left unfilled", 0, Background},
		{"leaves highlighted", 1, HighlightColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tree.Render(tt.depth, RenderOptions{ShowEdge: true})
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					if got := img.NRGBAAt(x, y); got != tt.want {
						t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, tt.want)
					}
				}
			}
		})
	}
}

func TestRender_ShowLines(t *testing.T) {
	src := newQuadrantSource(8, 8)
	tree := mustBuild(t, src, Config{MaxDepth: 4, Threshold: 0})

	plain, err := tree.Render(1, RenderOptions{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	lined, err := tree.Render(1, RenderOptions{ShowLines: true})
	if err != nil {
		t.Fatalf("Render with lines failed: %v", err)
	}

	red := color.NRGBA{255, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}

	tests := []struct {
		x, y        int
		plain, line color.NRGBA
	}{
		{0, 0, red, LineColor},   // top-left corner of first box
		{3, 3, red, LineColor},   // bottom-right corner of first box
		{1, 2, red, red},         // interior
		{4, 4, white, LineColor}, // top-left corner of last box
		{6, 5, white, white},     // interior
	}

	for _, tt := range tests {
		if got := plain.NRGBAAt(tt.x, tt.y); got != tt.plain {
			t.Errorf("plain (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.plain)
		}
		if got := lined.NRGBAAt(tt.x, tt.y); got != tt.line {
			t.Errorf("lined (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.line)
		}
	}
}

func TestRender_OvershootIsClipped(t *testing.T) {
	src := newNoiseSource(5, 3, 2)
	tree := mustBuild(t, src, Config{MaxDepth: 3, Threshold: 0})

	img, err := tree.Render(tree.TreeHeight, RenderOptions{ShowLines: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Errorf("bounds: got %v, want 5x3", img.Bounds())
	}
}

func TestRender_LaterBoxesOverpaint(t *testing.T) {
	// At depth 2 the 3x3 children split into 2x2 grandchildren, so each
	// right or bottom grandchild reaches one pixel into the next subtree.
	src := newNoiseSource(6, 6, 13)
	tree := mustBuild(t, src, Config{MaxDepth: 2, Threshold: 0})
	if tree.TreeHeight != 2 {
		t.Fatalf("TreeHeight: got %d, want 2", tree.TreeHeight)
	}

	img, err := tree.Render(2, RenderOptions{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var want [6][6]Color
	var painted [6][6]int
	if err := tree.Visit(2, func(n *Node) {
		r := n.Box.Rect().Intersect(image.Rect(0, 0, 6, 6))
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				want[y][x] = n.Stats.Color
				painted[y][x]++
			}
		}
	}); err != nil {
		t.Fatalf("Visit failed: %v", err)
	}

	overlaps := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if painted[y][x] > 1 {
				overlaps++
			}
			if got := img.NRGBAAt(x, y); got != nrgbaOf(want[y][x]) {
				t.Errorf("pixel (%d,%d): got %v, want %v from the last box covering it", x, y, got, nrgbaOf(want[y][x]))
			}
		}
	}
	if overlaps == 0 {
		t.Error("expected overshooting boxes to overlap")
	}
}

func TestRender_EmptyTree(t *testing.T) {
	tree := mustBuild(t, &gridSource{}, DefaultConfig())

	img, err := tree.Render(0, RenderOptions{ShowLines: true})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !img.Bounds().Empty() {
		t.Errorf("bounds: got %v, want empty", img.Bounds())
	}
}

func TestRender_NegativeDepth(t *testing.T) {
	tree := mustBuild(t, checkerSource(), DefaultConfig())

	if _, err := tree.Render(-1, RenderOptions{}); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("Render(-1): got %v, want ErrInvalidDepth", err)
	}
}
