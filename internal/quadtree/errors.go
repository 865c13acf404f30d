package quadtree

import "errors"

var (
	// ErrInvalidDepth is returned when a negative level of detail is requested.
	ErrInvalidDepth = errors.New("quadtree: depth must be >= 0")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("quadtree: invalid config")

	// ErrNilSource is returned by Build when no pixel source is supplied.
	ErrNilSource = errors.New("quadtree: nil pixel source")

	// ErrBadRecord is returned by UnmarshalFlat for truncated input.
	ErrBadRecord = errors.New("quadtree: flat record length is not a multiple of 28 bytes")
)
