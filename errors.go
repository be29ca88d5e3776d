package fsm

import (
	"errors"
	"fmt"
)

// ErrUninitialized is returned when a dispatch or a state read happens on a
// machine built with NewDeferred before its first SetState call.
var ErrUninitialized = errors.New("fsm: state machine is uninitialized")

// ErrTransitionNotFound is returned when no handler is registered for the
// observed (state, event) pair. Only explicitly registered transitions are
// legal; every other pair fails with this error and the state is unchanged.
type ErrTransitionNotFound[S, E comparable] struct {
	From  S
	Event E
}

func (e *ErrTransitionNotFound[S, E]) Error() string {
	return fmt.Sprintf("fsm: no transition registered for event %v in state %v", e.Event, e.From)
}

// ErrUnexpectedEvent is returned when the registered handler declined the
// event by returning Unhandled. State carries the state that was current
// before the handler ran. It is distinct from ErrTransitionNotFound so
// callers can tell "nobody was asked" from "the handler said no".
type ErrUnexpectedEvent[S, E comparable] struct {
	State S
	Event E
}

func (e *ErrUnexpectedEvent[S, E]) Error() string {
	return fmt.Sprintf("fsm: event %v not expected in state %v", e.Event, e.State)
}
