package async

import "errors"

var (
	// ErrTimeout is returned when AwaitWithTimeout expires before the
	// future completes.
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")

	// ErrNoFutures is returned when WaitAny is called with no futures.
	ErrNoFutures = errors.New("async: WaitAny called with empty futures slice")
)
