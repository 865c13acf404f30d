package quadtree

import (
	"errors"
	"math"
	"testing"
)

func TestSummarize_TwoByTwo(t *testing.T) {
	tree := mustBuild(t, checkerSource(), Config{MaxDepth: 1, Threshold: 0})

	s, err := tree.Summarize(1)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.MaxDepth != 1 || s.TreeHeight != 1 || s.Depth != 1 {
		t.Errorf("depths: got %+v", s)
	}
	if s.LeafCount != 4 {
		t.Errorf("LeafCount: got %d, want 4", s.LeafCount)
	}
	if s.Threshold != 0 {
		t.Errorf("Threshold: got %v, want 0", s.Threshold)
	}
	if s.TotalDistortion != 0 || s.AverageDistortion != 0 || s.MaxDistortion != 0 || s.DistortionStdDev != 0 {
		t.Errorf("distortion: got %+v, want zeros", s)
	}
}

func TestSummarize_PrunedRoot(t *testing.T) {
	tree := mustBuild(t, checkerSource(), Config{MaxDepth: 1, Threshold: 0})

	s, err := tree.Summarize(0)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.LeafCount != 1 {
		t.Errorf("LeafCount: got %d, want 1", s.LeafCount)
	}
	rootErr := tree.Root.Stats.Error
	if s.TotalDistortion != rootErr || s.AverageDistortion != rootErr || s.MaxDistortion != rootErr {
		t.Errorf("distortion: got %+v, want root error %v", s, rootErr)
	}
	if s.DistortionStdDev != 0 {
		t.Errorf("DistortionStdDev: got %v, want 0", s.DistortionStdDev)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	tree := mustBuild(t, newNoiseSource(40, 40, 4), Config{MaxDepth: 3, Threshold: 10})

	s, err := tree.Summarize(tree.TreeHeight)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	nodes, _ := tree.Leaves(tree.TreeHeight)

	var total, maxErr float64
	for _, n := range nodes {
		total += n.Stats.Error
		maxErr = math.Max(maxErr, n.Stats.Error)
	}
	if s.LeafCount != len(nodes) {
		t.Errorf("LeafCount: got %d, want %d", s.LeafCount, len(nodes))
	}
	if math.Abs(s.TotalDistortion-total) > 1e-9 {
		t.Errorf("TotalDistortion: got %v, want %v", s.TotalDistortion, total)
	}
	if want := total / float64(len(nodes)); math.Abs(s.AverageDistortion-want) > 1e-9 {
		t.Errorf("AverageDistortion: got %v, want %v", s.AverageDistortion, want)
	}
	if s.MaxDistortion != maxErr {
		t.Errorf("MaxDistortion: got %v, want %v", s.MaxDistortion, maxErr)
	}
	if s.DistortionStdDev < 0 {
		t.Errorf("DistortionStdDev: got %v, want >= 0", s.DistortionStdDev)
	}
}

func TestSummarize_NegativeDepth(t *testing.T) {
	tree := mustBuild(t, checkerSource(), DefaultConfig())

	if _, err := tree.Summarize(-2); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("Summarize(-2): got %v, want ErrInvalidDepth", err)
	}
}
