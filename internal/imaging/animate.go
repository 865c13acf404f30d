package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"time"

	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
)

const (
	// DefaultFrameDelay is the time each level of detail is shown.
	DefaultFrameDelay = time.Second

	// DefaultHoldFrames is how many times the final frame is repeated.
	DefaultHoldFrames = 5
)

// AnimationOptions controls EncodeAnimation.
type AnimationOptions struct {
	// Delay per frame. Zero means DefaultFrameDelay.
	Delay time.Duration

	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int

	// Hold is the number of copies of the final frame. Zero or less means
	// DefaultHoldFrames.
	Hold int

	Render quadtree.RenderOptions
}

// EncodeAnimation writes an animated GIF stepping through every level of
// detail of tree: one frame for each depth below TreeHeight, then Hold copies
// of the fully detailed frame.
func EncodeAnimation(w io.Writer, tree *quadtree.Tree, opts AnimationOptions) error {
	if opts.Delay <= 0 {
		opts.Delay = DefaultFrameDelay
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHoldFrames
	}
	delay := int(opts.Delay / (10 * time.Millisecond))

	anim := &gif.GIF{LoopCount: opts.LoopCount}
	add := func(frame *image.Paletted, n int) {
		for i := 0; i < n; i++ {
			anim.Image = append(anim.Image, frame)
			anim.Delay = append(anim.Delay, delay)
		}
	}

	for depth := 0; depth <= tree.TreeHeight; depth++ {
		img, err := tree.Render(depth, opts.Render)
		if err != nil {
			return fmt.Errorf("failed to render depth %d: %w", depth, err)
		}
		frame := toPaletted(img)
		if depth == tree.TreeHeight {
			add(frame, opts.Hold)
		} else {
			add(frame, 1)
		}
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode animation: %w", err)
	}
	return nil
}

// AnimationResult contains an animated GIF encoded as base64.
type AnimationResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Frames      int    `json:"frames"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodeAnimationBase64 runs EncodeAnimation into memory.
func EncodeAnimationBase64(tree *quadtree.Tree, opts AnimationOptions) (*AnimationResult, error) {
	var buf bytes.Buffer
	if err := EncodeAnimation(&buf, tree, opts); err != nil {
		return nil, err
	}

	hold := opts.Hold
	if hold <= 0 {
		hold = DefaultHoldFrames
	}
	return &AnimationResult{
		Width:       tree.Width,
		Height:      tree.Height,
		Frames:      tree.TreeHeight + hold,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/gif",
	}, nil
}

// toPaletted quantizes img against the Plan 9 palette with error diffusion.
func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
