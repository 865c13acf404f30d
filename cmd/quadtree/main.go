// quadtree approximates an image with a quadtree of flat-colored regions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ironsheep/quadtree-mcp/internal/imaging"
	"github.com/ironsheep/quadtree-mcp/internal/quadtree"
)

var (
	maxDepthFlag  = flag.Int("max-depth", quadtree.DefaultMaxDepth, "maximum subdivision depth")
	thresholdFlag = flag.Float64("threshold", quadtree.DefaultThreshold, "error at or below which a region is not subdivided")
	depthFlag     = flag.Int("depth", -1, "level of detail to render; -1 means the tree height")
	linesFlag     = flag.Bool("lines", false, "draw region borders")
	edgeFlag      = flag.Bool("edge", false, "fill true leaves white instead of their average color")
	outFlag       = flag.String("out", "", "output PNG path")
	gifFlag       = flag.String("gif", "", "optional animated GIF path")
	gifDelayFlag  = flag.Duration("gif-delay", imaging.DefaultFrameDelay, "time each animation frame is shown")
	flatFlag      = flag.String("flat", "", "optional path for little-endian int32 region records")
	verboseFlag   = flag.Bool("v", false, "print a summary to stderr")
)

const usageStr = `quadtree approximates an image with a quadtree of flat-colored regions.

Usage:

    quadtree [flags] -out=result.png input

Flags:

    -max-depth=10     maximum subdivision depth
    -threshold=13     error (0-255 scale) at or below which a region is kept whole
    -depth=N          level of detail to render (default: the tree height)
    -lines            draw a one-pixel border around every region
    -edge             fill true leaves white and depth-pruned regions black
    -gif=path         also write an animated GIF stepping through every depth
    -gif-delay=1s     time each animation frame is shown
    -flat=path        also write 28-byte little-endian int32 region records
    -v                print a summary to stderr

Inputs may be BMP, GIF, JPEG, PNG, TIFF or WEBP.
`

var ErrNoOutput = errors.New("main: must specify at least one of -out, -gif or -flat")

func main() {
	if err := main1(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func main1() error {
	flag.Usage = func() { os.Stderr.WriteString(usageStr) }
	flag.Parse()

	if flag.NArg() != 1 {
		return errors.New("expected exactly one input filename")
	}
	if *outFlag == "" && *gifFlag == "" && *flatFlag == "" {
		return ErrNoOutput
	}

	img, err := imaging.Decode(flag.Arg(0))
	if err != nil {
		return err
	}

	cfg := quadtree.Config{MaxDepth: *maxDepthFlag, Threshold: *thresholdFlag}
	start := time.Now()
	tree, err := quadtree.Build(imaging.NewPixelSource(img), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	depth, err := levelOfDetail(*depthFlag, tree.TreeHeight)
	if err != nil {
		return err
	}
	opts := quadtree.RenderOptions{ShowLines: *linesFlag, ShowEdge: *edgeFlag}

	if *verboseFlag {
		s, err := tree.Summarize(depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%dx%d: height %d, %d regions at depth %d, average error %.3f (built in %s)\n",
			tree.Width, tree.Height, s.TreeHeight, s.LeafCount, s.Depth, s.AverageDistortion, elapsed)
	}

	if *outFlag != "" {
		dst, err := tree.Render(depth, opts)
		if err != nil {
			return err
		}
		if err := imaging.SavePNG(*outFlag, dst); err != nil {
			return err
		}
	}

	if *gifFlag != "" {
		if err := writeAnimation(*gifFlag, tree, opts); err != nil {
			return err
		}
	}

	if *flatFlag != "" {
		data, err := tree.MarshalFlat(depth)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*flatFlag, data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// levelOfDetail resolves the -depth flag: -1 selects the tree height and any
// other negative value is rejected.
func levelOfDetail(depth, treeHeight int) (int, error) {
	switch {
	case depth == -1:
		return treeHeight, nil
	case depth < 0:
		return 0, fmt.Errorf("%w: -depth=%d", quadtree.ErrInvalidDepth, depth)
	}
	return depth, nil
}

func writeAnimation(path string, tree *quadtree.Tree, opts quadtree.RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = imaging.EncodeAnimation(f, tree, imaging.AnimationOptions{
		Delay:  *gifDelayFlag,
		Render: opts,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
