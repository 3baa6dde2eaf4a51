package broadcast

import (
	"context"
	"sync"
)

// Publisher fans events out to registered listeners. Delivery is
// non-blocking: a listener whose buffer is full misses the event and is
// dropped from the registry rather than stalling the publisher.
// All methods are safe for concurrent use.
type Publisher[T any] struct {
	nickname   string
	bufferSize int

	mu        sync.RWMutex
	listeners map[string]*Listener[T]
	closed    bool
	done      chan struct{}
	cleanupWg sync.WaitGroup
}

// Option configures a Publisher.
type Option func(*settings)

type settings struct {
	nickname   string
	bufferSize int
}

// WithNickname names the publisher for diagnostics.
func WithNickname(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.nickname = name
		}
	}
}

// WithBufferSize sets the per-listener channel buffer. Values below 1 are
// raised to 1: an unbuffered channel would make every send blocking and
// defeat the drop-on-slow design.
func WithBufferSize(n int) Option {
	return func(s *settings) {
		s.bufferSize = max(n, 1)
	}
}

// NewPublisher creates a publisher with no listeners.
func NewPublisher[T any](opts ...Option) *Publisher[T] {
	s := &settings{nickname: "publisher", bufferSize: 16}
	for _, opt := range opts {
		opt(s)
	}
	return &Publisher[T]{
		nickname:   s.nickname,
		bufferSize: s.bufferSize,
		listeners:  make(map[string]*Listener[T]),
		done:       make(chan struct{}),
	}
}

// Nickname returns the publisher's diagnostic name.
func (p *Publisher[T]) Nickname() string {
	return p.nickname
}

// Register creates and registers a listener. The listener is unregistered
// automatically when ctx is cancelled. Registering on a closed publisher
// returns an already-closed listener.
func (p *Publisher[T]) Register(ctx context.Context, nickname string) *Listener[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	l := newListener[T](nickname, p.bufferSize)
	if p.closed {
		l.Close()
		return l
	}
	p.listeners[l.id] = l

	if ctx.Done() != nil {
		p.cleanupWg.Add(1)
		go func() {
			defer p.cleanupWg.Done()
			select {
			case <-ctx.Done():
				p.Unregister(l)
			case <-p.done:
			}
		}()
	}

	return l
}

// Unregister removes a listener and closes it. Unknown listeners are a
// no-op.
func (p *Publisher[T]) Unregister(l *Listener[T]) {
	if l == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.listeners, l.id)
	l.Close()
}

// Notify delivers an event to every registered listener without blocking.
// Listeners that cannot keep up are dropped asynchronously. Returns
// ErrPublisherClosed after Close.
func (p *Publisher[T]) Notify(data T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	ev := Event[T]{Data: data}
	for _, l := range p.listeners {
		if !l.send(ev) {
			// Dropping in a goroutine avoids write-lock contention while
			// the read lock is held.
			go p.Unregister(l)
		}
	}
	return nil
}

// Count returns the number of registered listeners.
func (p *Publisher[T]) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.listeners)
}

// Close shuts the publisher down and closes all listeners. Close is
// idempotent and waits for pending context-cancel cleanups.
func (p *Publisher[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	for _, l := range p.listeners {
		l.Close()
	}
	clear(p.listeners)
	p.mu.Unlock()

	p.cleanupWg.Wait()
}
