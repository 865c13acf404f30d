package quadtree

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxDepth bounds the tree height when no depth is configured.
	DefaultMaxDepth = 10

	// DefaultThreshold is the combined error at or below which a region is
	// kept as a single flat block. Errors are on the 0-255 channel scale.
	DefaultThreshold = 13.0
)

// Config holds the termination policy for Build.
type Config struct {
	// MaxDepth is the deepest level a node may reach. The root is depth 0.
	MaxDepth int `json:"max_depth"`

	// Threshold is compared directly against Stats.Error.
	Threshold float64 `json:"threshold"`
}

// DefaultConfig returns MaxDepth 10 and Threshold 13.
func DefaultConfig() Config {
	return Config{
		MaxDepth:  DefaultMaxDepth,
		Threshold: DefaultThreshold,
	}
}

// Validate rejects negative depths and non-finite thresholds.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d is negative", ErrInvalidConfig, c.MaxDepth)
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: threshold %v is not finite", ErrInvalidConfig, c.Threshold)
	}
	return nil
}
