package broadcast

import (
	"sync"

	"github.com/google/uuid"
)

// Event wraps a value delivered to listeners.
type Event[T any] struct {
	Data T
}

// Listener receives events from the Publisher it is registered with.
// Events arrive on the Events channel; the channel is closed when the
// listener is closed or its publisher shuts down.
type Listener[T any] struct {
	id       string
	nickname string
	ch       chan Event[T]

	mu     sync.RWMutex
	closed bool
}

func newListener[T any](nickname string, bufferSize int) *Listener[T] {
	if nickname == "" {
		nickname = "listener"
	}
	return &Listener[T]{
		id:       uuid.NewString(),
		nickname: nickname,
		ch:       make(chan Event[T], bufferSize),
	}
}

// ID returns the unique identifier assigned at registration.
func (l *Listener[T]) ID() string {
	return l.id
}

// Nickname returns the human-readable name used in diagnostics.
func (l *Listener[T]) Nickname() string {
	return l.nickname
}

// Events returns the channel events are delivered on.
func (l *Listener[T]) Events() <-chan Event[T] {
	return l.ch
}

// Close closes the listener; its Events channel is closed and no further
// events arrive. Close is idempotent.
func (l *Listener[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		close(l.ch)
		l.closed = true
	}
}

// send delivers without blocking; a full buffer drops the event.
func (l *Listener[T]) send(ev Event[T]) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return false
	}
	select {
	case l.ch <- ev:
		return true
	default:
		return false
	}
}
