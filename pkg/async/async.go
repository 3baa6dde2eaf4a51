package async

import (
	"context"
	"time"
)

// Future represents the result of a computation running in its own
// goroutine.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until completion or the timeout, whichever comes
// first. On timeout the zero value and ErrTimeout are returned; the
// computation itself keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn in a new goroutine and returns a Future for its result.
// A context already cancelled at call time short-circuits without invoking
// fn; otherwise cancellation handling is fn's own responsibility.
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()

	return f
}

// WaitAll waits for every future and collects the results in argument
// order. The first error encountered is returned alongside the partially
// filled results.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, f := range futures {
		result, err := f.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// WaitAny waits for the first future to complete and returns its index,
// result, and error. Calling with no futures returns ErrNoFutures.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index  int
		result U
		err    error
	}

	// Buffer one slot; later finishers hit the default and exit.
	done := make(chan outcome, 1)
	for i, f := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			select {
			case done <- outcome{index, result, err}:
			default:
			}
		}(i, f)
	}

	res := <-done
	return res.index, res.result, res.err
}

// WaitUntil polls cond every interval until it returns true or the timeout
// elapses, reporting whether the condition was met. Useful for waiting on
// goroutine startup or other out-of-band readiness signals.
func WaitUntil(cond func() bool, timeout, interval time.Duration) bool {
	if cond() {
		return true
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-deadline.C:
			return cond()
		case <-tick.C:
			if cond() {
				return true
			}
		}
	}
}
