// Package fsm provides a generic, table-driven finite state machine.
//
// A Machine is parameterized over two comparable types: a state type S and
// an input type I, typically small const-based enumerations. All legal
// moves are declared up front as a Table mapping (state, input-or-epsilon)
// keys to target states; the machine itself never grows or shrinks the
// table.
//
// # Triggers and epsilon transitions
//
// Inputs are fed to the machine wrapped in a Trigger, an option-style value
// that distinguishes a real input (On) from the absence of one (Epsilon).
// An epsilon entry in the table fires automatically: whenever a transition
// lands the machine in a state with an epsilon entry, the machine keeps
// advancing until no epsilon entry exists or a state repeats. The repeat
// check makes self-loops and longer epsilon cycles terminate instead of
// spinning.
//
// # Usage
//
//	type Phase int
//	type Cmd int
//
//	const (
//	    Start Phase = iota
//	    Running
//	    Done
//	)
//
//	const (
//	    Go Cmd = iota
//	    Stop
//	)
//
//	m := fsm.New(Start, fsm.Table[Phase, Cmd]{
//	    fsm.When(Start, Go):      Running,
//	    fsm.When(Running, Stop):  Done,
//	})
//
//	next, err := m.Transition(fsm.On(Go)) // Running, nil
//
// A failed lookup returns *InvalidTransitionError and leaves the state
// untouched; use IsInvalidTransitionError to detect it.
//
// # Hooks
//
// Three hooks customize behavior, settable at construction through options
// or at runtime through the Register methods:
//
//   - input handlers: a zero-argument callback per input, fired after each
//     successful transition on that input and re-fired on every epsilon hop
//     chained off it
//   - state func: replaces the internal field as the source of truth for
//     State() reads, e.g. when the real state lives in hardware or another
//     process
//   - jump guard: a predicate that can veto JumpTo calls
//
// The machine performs no I/O and no logging, and treats hook callbacks as
// opaque: their panics propagate to the caller unswallowed.
//
// # Concurrency
//
// A Machine is not safe for concurrent use. The table is read-only after
// construction and may be shared; current-state mutation and hook
// registration require caller-side synchronization.
package fsm
