package fsm

import "fmt"

// Trigger is an input-or-epsilon value used to drive transitions and to key
// the transition table. The zero value is the epsilon (no-input) marker;
// wrap a real input with On.
type Trigger[I comparable] struct {
	input I
	ok    bool
}

// On wraps an input into a Trigger.
func On[I comparable](input I) Trigger[I] {
	return Trigger[I]{input: input, ok: true}
}

// Epsilon returns the no-input trigger used for automatic transitions.
func Epsilon[I comparable]() Trigger[I] {
	return Trigger[I]{}
}

// Input returns the wrapped input and true, or the zero input and false when
// the trigger is epsilon.
func (t Trigger[I]) Input() (I, bool) {
	return t.input, t.ok
}

// IsEpsilon reports whether the trigger is the no-input marker.
func (t Trigger[I]) IsEpsilon() bool {
	return !t.ok
}

// String renders the trigger for diagnostics; epsilon renders as "none".
func (t Trigger[I]) String() string {
	if !t.ok {
		return "none"
	}
	return fmt.Sprintf("%v", t.input)
}

// Key is a transition-table key: the pair of a source state and the trigger
// that leaves it.
type Key[S comparable, I comparable] struct {
	State   S
	Trigger Trigger[I]
}

// When builds a table key for a state/input pair.
func When[S comparable, I comparable](state S, input I) Key[S, I] {
	return Key[S, I]{State: state, Trigger: On(input)}
}

// OnEpsilon builds a table key for the automatic transition out of a state.
func OnEpsilon[S comparable, I comparable](state S) Key[S, I] {
	return Key[S, I]{State: state, Trigger: Epsilon[I]()}
}

// Table maps (state, input-or-epsilon) pairs to target states. At most one
// target exists per key. The machine treats the table as read-only after
// construction; callers must not mutate a table a machine was built from.
type Table[S comparable, I comparable] map[Key[S, I]]S
