package fsm

import "fmt"

// responseKind tags the variant of a Response. The zero value is Handled.
type responseKind int

const (
	responseHandled responseKind = iota
	responseTransition
	responseUnhandled
)

// Response is the outcome a Handler reports back to the dispatcher. It has
// three variants: Handled (event consumed, state unchanged), TransitionTo
// (event consumed, state replaced) and Unhandled (event declined).
type Response[S comparable] struct {
	kind responseKind
	to   S
}

// Handled reports that the event was consumed without a state change.
func Handled[S comparable]() Response[S] {
	return Response[S]{kind: responseHandled}
}

// TransitionTo reports that the event was consumed and the machine should
// replace its current state with to.
func TransitionTo[S comparable](to S) Response[S] {
	return Response[S]{kind: responseTransition, to: to}
}

// Unhandled reports that the event is not meaningful in the current state.
// The dispatcher turns it into an ErrUnexpectedEvent. There is no state
// hierarchy to defer to; Unhandled only signals "the handler declined".
func Unhandled[S comparable]() Response[S] {
	return Response[S]{kind: responseUnhandled}
}

func (r Response[S]) String() string {
	switch r.kind {
	case responseTransition:
		return fmt.Sprintf("Transition(%v)", r.to)
	case responseUnhandled:
		return "Unhandled"
	default:
		return "Handled"
	}
}
