package broadcast

import "errors"

// ErrPublisherClosed is returned by Notify after the publisher has been
// closed.
var ErrPublisherClosed = errors.New("broadcast: publisher is closed")
