package markdown

import "errors"

var (
	// ErrEmptyTable is returned when Table receives no rows or no columns.
	ErrEmptyTable = errors.New("markdown: table needs at least one row and one column")

	// ErrRaggedRows is returned when rows differ in length.
	ErrRaggedRows = errors.New("markdown: all rows must have the same number of cells")
)
