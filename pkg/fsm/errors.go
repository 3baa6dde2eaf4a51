package fsm

import (
	"errors"
	"fmt"
)

// InvalidTransitionError indicates that no table entry matches the current
// state and the supplied trigger. The machine's state is left untouched.
type InvalidTransitionError struct {
	State string // current state at lookup time
	Input string // triggering input, "none" for epsilon
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("fsm: invalid transition from state %q on input %q", e.State, e.Input)
}

// IsInvalidTransitionError reports whether err is an InvalidTransitionError.
func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
