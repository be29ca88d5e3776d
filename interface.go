package fsm

import . "github.com/enetx/g"

// StateMachine is the operation surface shared by FSM and SyncFSM.
// Registration (AddTransition, Transition, Observe) stays on the concrete
// types: the table is populated once at construction time by the owner.
type StateMachine[S, E comparable, C any] interface {
	HandleEvent(event E) error
	Current() (S, error)
	SetState(s S)
	Context() *C
	Reset()
	History() Slice[S]
	States() Slice[S]
	ToDOT() String
}
