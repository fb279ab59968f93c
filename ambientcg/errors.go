package ambientcg

import "errors"

var (
	// ErrNoSmallerResolution indicates negotiation exhausted the tier list
	// without finding an existing material directory.
	ErrNoSmallerResolution = errors.New("no smaller resolution available")

	// ErrDecode indicates a channel image exists on disk but could not be
	// decoded.
	ErrDecode = errors.New("decode failure")

	// ErrDimensionMismatch indicates the roughness and metalness source
	// images disagree in width or height.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
