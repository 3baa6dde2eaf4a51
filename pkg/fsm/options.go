package fsm

// Option configures a machine during construction. Each option maps onto
// one of the runtime registration methods.
type Option[S comparable, I comparable] func(*Machine[S, I])

// WithInputHandler pre-registers a handler for an input.
func WithInputHandler[S comparable, I comparable](input I, fn func()) Option[S, I] {
	return func(m *Machine[S, I]) {
		m.RegisterInputHandler(input, fn)
	}
}

// WithStateFunc pre-installs the current-state override.
func WithStateFunc[S comparable, I comparable](fn func() S) Option[S, I] {
	return func(m *Machine[S, I]) {
		m.RegisterStateFunc(fn)
	}
}

// WithJumpGuard pre-installs the jump guard consulted by JumpTo.
func WithJumpGuard[S comparable, I comparable](fn func(S) bool) Option[S, I] {
	return func(m *Machine[S, I]) {
		m.RegisterJumpGuard(fn)
	}
}
