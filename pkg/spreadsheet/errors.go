package spreadsheet

import (
	"errors"
	"fmt"
)

// ErrPieRange is returned when a pie chart range does not span exactly a
// label column and a value column.
var ErrPieRange = errors.New("spreadsheet: invalid pie chart range")

// InvalidRangeError reports a malformed or degenerate data range. Ranges
// must be of the "A1:B4" form and cover at least two columns and two rows
// (headers plus data).
type InvalidRangeError struct {
	Range string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("spreadsheet: invalid data range %q", e.Range)
}
