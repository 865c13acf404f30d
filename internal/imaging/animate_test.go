package imaging

import (
	"bytes"
	"encoding/base64"
	"image/gif"
	"testing"
	"time"

	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
)

func buildPatternTree(t *testing.T, size int, cfg quadtree.Config) *quadtree.Tree {
	t.Helper()
	tree, err := quadtree.Build(NewPixelSource(createPatternImage(size, size)), cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

func TestEncodeAnimation_FrameLayout(t *testing.T) {
	// Negative threshold forces a full tree down to MaxDepth.
	tree := buildPatternTree(t, 16, quadtree.Config{MaxDepth: 3, Threshold: -1})
	if tree.TreeHeight != 3 {
		t.Fatalf("TreeHeight: got %d, want 3", tree.TreeHeight)
	}

	var buf bytes.Buffer
	opts := AnimationOptions{Delay: 250 * time.Millisecond, Hold: 2}
	if err := EncodeAnimation(&buf, tree, opts); err != nil {
		t.Fatalf("EncodeAnimation failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed to decode GIF: %v", err)
	}

	// Depths 0, 1, 2 once each, then the depth-3 frame twice.
	if len(anim.Image) != 5 {
		t.Errorf("frames: got %d, want 5", len(anim.Image))
	}
	for i, d := range anim.Delay {
		if d != 25 {
			t.Errorf("frame %d delay: got %d, want 25", i, d)
		}
	}
	if anim.Config.Width != 16 || anim.Config.Height != 16 {
		t.Errorf("size: got %dx%d, want 16x16", anim.Config.Width, anim.Config.Height)
	}
}

func TestEncodeAnimation_Defaults(t *testing.T) {
	tree := buildPatternTree(t, 8, quadtree.DefaultConfig())

	var buf bytes.Buffer
	if err := EncodeAnimation(&buf, tree, AnimationOptions{}); err != nil {
		t.Fatalf("EncodeAnimation failed: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed to decode GIF: %v", err)
	}

	want := tree.TreeHeight + DefaultHoldFrames
	if len(anim.Image) != want {
		t.Errorf("frames: got %d, want %d", len(anim.Image), want)
	}
	if anim.Delay[0] != 100 {
		t.Errorf("delay: got %d, want 100", anim.Delay[0])
	}
}

func TestEncodeAnimationBase64(t *testing.T) {
	tree := buildPatternTree(t, 8, quadtree.DefaultConfig())

	result, err := EncodeAnimationBase64(tree, AnimationOptions{Hold: 3})
	if err != nil {
		t.Fatalf("EncodeAnimationBase64 failed: %v", err)
	}
	if result.MimeType != "image/gif" {
		t.Errorf("MimeType: got %s, want image/gif", result.MimeType)
	}
	if result.Frames != tree.TreeHeight+3 {
		t.Errorf("Frames: got %d, want %d", result.Frames, tree.TreeHeight+3)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode GIF: %v", err)
	}
	if len(anim.Image) != result.Frames {
		t.Errorf("decoded frames: got %d, want %d", len(anim.Image), result.Frames)
	}
}
