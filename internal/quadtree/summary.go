package quadtree

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the nodes visible at one level of detail.
type Summary struct {
	MaxDepth          int     `json:"max_depth"`
	TreeHeight        int     `json:"tree_height"`
	Depth             int     `json:"depth"`
	LeafCount         int     `json:"leaf_count"`
	Threshold         float64 `json:"threshold"`
	TotalDistortion   float64 `json:"total_distortion"`
	AverageDistortion float64 `json:"average_distortion"`
	MaxDistortion     float64 `json:"max_distortion"`
	DistortionStdDev  float64 `json:"distortion_stddev"`
}

// Summarize reports leaf count and distortion figures for Leaves(depth).
// An empty leaf set yields zero distortion rather than dividing by zero.
func (t *Tree) Summarize(depth int) (*Summary, error) {
	nodes, err := t.Leaves(depth)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		MaxDepth:   t.MaxDepth,
		TreeHeight: t.TreeHeight,
		Depth:      depth,
		LeafCount:  len(nodes),
		Threshold:  t.Threshold,
	}
	if len(nodes) == 0 {
		return s, nil
	}

	errs := make([]float64, len(nodes))
	for i, n := range nodes {
		errs[i] = n.Stats.Error
		s.TotalDistortion += n.Stats.Error
	}
	s.AverageDistortion = s.TotalDistortion / float64(len(nodes))
	s.MaxDistortion = floats.Max(errs)
	s.DistortionStdDev = stat.PopStdDev(errs, nil)

	return s, nil
}
