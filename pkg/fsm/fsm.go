package fsm

import "fmt"

// Machine is a table-driven finite state machine generic over a comparable
// state type S and input type I. It holds the current state, validates and
// executes transitions, follows epsilon (input-less) transitions
// automatically, and supports two pluggable hooks: a state func that
// overrides how the current state is read, and a jump guard that vets
// direct state jumps.
//
// A Machine is not safe for concurrent use; callers that share one across
// goroutines must provide their own locking. The transition table is never
// mutated after construction and may be shared for reads.
type Machine[S comparable, I comparable] struct {
	state     S
	table     Table[S, I]
	handlers  map[I]func()
	stateFunc func() S
	jumpGuard func(S) bool
}

// New creates a machine in the initial state with the given transition
// table. The table may be nil or empty, producing a machine that can only
// move via JumpTo. No check is made that initial appears in the table; a
// machine may start in a state with no outgoing transitions.
func New[S comparable, I comparable](initial S, table Table[S, I], opts ...Option[S, I]) *Machine[S, I] {
	m := &Machine[S, I]{
		state:    initial,
		table:    table,
		handlers: make(map[I]func()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state. When a state func is registered its
// result is returned instead of the internal field; the machine makes no
// assumption about the func's determinism or cost.
func (m *Machine[S, I]) State() S {
	if m.stateFunc != nil {
		return m.stateFunc()
	}
	return m.state
}

// Transition attempts to move the machine from its current state using the
// given trigger. If no table entry matches (current state, trigger) it
// returns an *InvalidTransitionError and leaves the state untouched.
//
// On success the machine advances to the table's target, invokes the
// handler registered for the trigger's input (if any), then follows epsilon
// transitions from each state reached until none is defined or a state
// repeats. The handler registered for the original input re-fires on every
// epsilon hop, so handlers should be idempotent when epsilon chains are in
// play. Handler panics propagate to the caller.
//
// The state reached after closure is returned.
func (m *Machine[S, I]) Transition(tr Trigger[I]) (S, error) {
	current := m.State()
	next, ok := m.table[Key[S, I]{State: current, Trigger: tr}]
	if !ok {
		return current, &InvalidTransitionError{
			State: fmt.Sprintf("%v", current),
			Input: tr.String(),
		}
	}

	// The assignment happens even when a state func hides the internal
	// field, so clearing the override later exposes a consistent value.
	m.state = next
	m.fireHandler(tr)

	// Epsilon closure. Visited-state tracking terminates epsilon cycles of
	// any length, not just self-loops.
	visited := map[S]bool{m.State(): true}
	for {
		next, ok := m.table[OnEpsilon[S, I](m.State())]
		if !ok {
			break
		}
		m.state = next
		m.fireHandler(tr)
		if visited[m.State()] {
			break
		}
		visited[m.State()] = true
	}

	return m.State(), nil
}

// JumpTo forces the machine directly to target, bypassing the transition
// table. When a jump guard is registered it is consulted first; a false
// verdict leaves the state untouched and returns false. JumpTo never fires
// input handlers and never follows epsilon transitions.
func (m *Machine[S, I]) JumpTo(target S) bool {
	if m.jumpGuard != nil && !m.jumpGuard(target) {
		return false
	}
	m.state = target
	return true
}

// RegisterInputHandler associates a callback with an input, replacing any
// previously registered handler for the same input. The callback fires
// after each successful transition on that input, including epsilon hops
// chained off it.
func (m *Machine[S, I]) RegisterInputHandler(input I, fn func()) {
	m.handlers[input] = fn
}

// RegisterStateFunc installs the current-state override, or clears it when
// fn is nil. While installed, State ignores the internal field; internal
// writes from Transition and JumpTo still occur and become visible again
// once the override is cleared.
func (m *Machine[S, I]) RegisterStateFunc(fn func() S) {
	m.stateFunc = fn
}

// RegisterJumpGuard installs the predicate consulted by JumpTo, or clears
// it when fn is nil.
func (m *Machine[S, I]) RegisterJumpGuard(fn func(S) bool) {
	m.jumpGuard = fn
}

func (m *Machine[S, I]) fireHandler(tr Trigger[I]) {
	input, ok := tr.Input()
	if !ok {
		return
	}
	if fn := m.handlers[input]; fn != nil {
		fn()
	}
}
