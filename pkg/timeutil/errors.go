package timeutil

import "fmt"

// InvalidUTCOffsetError reports a UTC offset outside the assigned range.
type InvalidUTCOffsetError struct {
	Minutes int
}

func (e *InvalidUTCOffsetError) Error() string {
	return fmt.Sprintf("timeutil: invalid UTC offset %d minutes, want %d..%d",
		e.Minutes, MinUTCOffsetMinutes, MaxUTCOffsetMinutes)
}
