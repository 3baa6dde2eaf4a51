package strutil

import "errors"

var (
	// ErrNegativePadding is returned when AlignColumns receives a negative
	// padding value.
	ErrNegativePadding = errors.New("strutil: extra padding must be non-negative")

	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("strutil: all rows must have the same number of cells")
)
