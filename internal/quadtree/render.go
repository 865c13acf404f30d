package quadtree

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

var (
	// Background is the color of pixels no box paints.
	Background = color.NRGBA{0, 0, 0, 255}

	// LineColor is used for box borders when RenderOptions.ShowLines is set.
	LineColor = color.NRGBA{0, 0, 0, 255}

	// HighlightColor fills leaves when RenderOptions.ShowEdge is set.
	HighlightColor = color.NRGBA{255, 255, 255, 255}
)

// RenderOptions selects how boxes are painted.
type RenderOptions struct {
	// ShowLines draws a one-pixel border just inside every visible box.
	ShowLines bool `json:"show_lines"`

	// ShowEdge paints true leaves in HighlightColor instead of their average
	// color and leaves depth-pruned internal nodes unfilled.
	ShowEdge bool `json:"show_edge"`
}

// Render paints the nodes visible at depth onto a black Width x Height canvas.
//
// Boxes are painted in traversal order, so where right or bottom quadrants
// overshoot their parent a later box overpaints an earlier one. Pixels falling
// outside the canvas are clipped.
func (t *Tree) Render(depth int, opts RenderOptions) (*image.NRGBA, error) {
	dst := imaging.New(t.Width, t.Height, Background)

	err := t.Visit(depth, func(n *Node) {
		r := n.Box.Rect().Intersect(dst.Bounds())
		if r.Empty() {
			return
		}

		switch {
		case !opts.ShowEdge:
			fill(dst, r, n.Stats.Color)
		case n.Leaf:
			fill(dst, r, HighlightColor)
		}

		if opts.ShowLines {
			outline(dst, n.Box.Rect(), LineColor)
		}
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

func fill(dst *image.NRGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// outline sets the outermost ring of pixels of r, clipped to dst.
func outline(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	if r.Empty() {
		return
	}
	bounds := dst.Bounds()
	set := func(x, y int) {
		if (image.Point{X: x, Y: y}).In(bounds) {
			dst.SetNRGBA(x, y, c)
		}
	}

	for x := r.Min.X; x < r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y-1)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X-1, y)
	}
}
