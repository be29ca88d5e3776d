// Package fsm provides a generic finite state machine (FSM) engine: a
// current state, a caller-owned context value, and a dispatch table mapping
// (state, event) pairs to handler functions. It is built with types and
// utilities from the github.com/enetx/g library.
//
// The engine performs no locking of its own. Sharing one FSM across
// goroutines without external synchronization is undefined; wrap the
// machine with Sync for a mutex-guarded view.
package fsm

import . "github.com/enetx/g"

// Handler is the user logic bound to a (state, event) pair. It receives
// mutable access to the machine and the triggering event, and reports the
// outcome as a Response. An error returned by a handler propagates to the
// HandleEvent caller unchanged, and the current state is left untouched.
type Handler[S, E comparable, C any] func(m *FSM[S, E, C], event E) (Response[S], error)

// tableKey is the composite identity a transition is registered under.
type tableKey[S, E comparable] struct {
	from  S
	event E
}

// tableEntry holds one registered handler. to/static record the declared
// target when the entry came from Transition rather than AddTransition;
// States and ToDOT use them, dispatch never does.
type tableEntry[S, E comparable, C any] struct {
	handler Handler[S, E, C]
	to      S
	static  bool
}

// FSM is the state machine engine, parameterized over the state alphabet S,
// the event alphabet E and a caller-owned context C. S and E must be
// comparable since the pair (S, E) keys the dispatch table. C is opaque to
// the engine: it is threaded through for handlers and never inspected.
type FSM[S, E comparable, C any] struct {
	initial     S
	current     S
	ready       bool
	context     C
	history     Slice[S]
	transitions Map[tableKey[S, E], tableEntry[S, E, C]]
	observers   Slice[Observer[S, E]]
}

// New creates a machine with the given initial state and context and an
// empty transition table. S and C are inferred from the arguments; E must
// be supplied explicitly: New[CallState, CallEvent](StateIdle, ctx).
func New[S, E comparable, C any](initial S, context C) *FSM[S, E, C] {
	return &FSM[S, E, C]{
		initial:     initial,
		current:     initial,
		ready:       true,
		context:     context,
		history:     Slice[S]{initial},
		transitions: NewMap[tableKey[S, E], tableEntry[S, E, C]](),
	}
}

// NewDeferred creates a machine with no committed state. Every dispatch and
// every state read fails with ErrUninitialized until the first SetState
// call, which commits the initial state. The uninitialized condition is
// one-way: once a state is set the machine never reverts.
func NewDeferred[S, E comparable, C any](context C) *FSM[S, E, C] {
	return &FSM[S, E, C]{
		context:     context,
		transitions: NewMap[tableKey[S, E], tableEntry[S, E, C]](),
	}
}

// Current returns the current state, or ErrUninitialized if no state has
// ever been set.
func (f *FSM[S, E, C]) Current() (S, error) {
	if !f.ready {
		var zero S
		return zero, ErrUninitialized
	}

	return f.current, nil
}

// Context returns a pointer to the machine's context for read and
// read-write use by handlers and the surrounding system.
func (f *FSM[S, E, C]) Context() *C {
	return &f.context
}

// History returns a copy of the list of visited states, starting with the
// initial one. It is empty while the machine is uninitialized.
func (f *FSM[S, E, C]) History() Slice[S] {
	return f.history.Clone()
}

// Reset returns an initialized machine to its initial state and truncates
// the history. The context is caller-owned and is left untouched. A
// machine that has never been assigned a state stays uninitialized.
func (f *FSM[S, E, C]) Reset() {
	if !f.ready {
		return
	}

	f.current = f.initial
	f.history = Slice[S]{f.initial}
}

// SetState sets the current state directly, bypassing the transition table
// and all observers. On a machine built with NewDeferred the first call
// commits the initial state.
func (f *FSM[S, E, C]) SetState(s S) {
	if !f.ready {
		f.ready = true
		f.initial = s
		f.current = s
		f.history = Slice[S]{s}

		return
	}

	f.current = s
}

// States returns a slice of all unique states known to the machine: the
// initial state, every registered source state, and the declared targets of
// transitions added through Transition. Targets chosen dynamically by
// AddTransition handlers cannot be known statically and are not included.
func (f *FSM[S, E, C]) States() Slice[S] {
	stateSet := NewSet[S]()
	if f.ready {
		stateSet.Insert(f.initial)
	}

	for key, entry := range f.transitions.Iter() {
		stateSet.Insert(key.from)
		if entry.static {
			stateSet.Insert(entry.to)
		}
	}

	return stateSet.ToSlice()
}

// AddTransition registers handler for the (from, event) pair. At most one
// handler exists per pair: registering the same pair again silently
// replaces the previous handler.
func (f *FSM[S, E, C]) AddTransition(from S, event E, handler Handler[S, E, C]) *FSM[S, E, C] {
	f.transitions[tableKey[S, E]{from: from, event: event}] = tableEntry[S, E, C]{handler: handler}
	return f
}

// Transition registers a handler that unconditionally moves from -> to on
// event. It is sugar over AddTransition for the common case.
func (f *FSM[S, E, C]) Transition(from S, event E, to S) *FSM[S, E, C] {
	f.transitions[tableKey[S, E]{from: from, event: event}] = tableEntry[S, E, C]{
		handler: func(*FSM[S, E, C], E) (Response[S], error) { return TransitionTo(to), nil },
		to:      to,
		static:  true,
	}

	return f
}

// Observe registers an observer. Observers fan out in registration order.
func (f *FSM[S, E, C]) Observe(obs Observer[S, E]) *FSM[S, E, C] {
	f.observers.Push(obs)
	return f
}

// HandleEvent dispatches event against the current state. Exactly one
// handler is consulted, the one registered for (current state, event);
// unregistered pairs fail with ErrTransitionNotFound. The current state
// changes only when the handler returns a Transition response: every
// failure path, including a handler error, leaves it untouched.
func (f *FSM[S, E, C]) HandleEvent(event E) error {
	if !f.ready {
		return ErrUninitialized
	}

	from := f.current

	entry, ok := f.transitions[tableKey[S, E]{from: from, event: event}]
	if !ok {
		return &ErrTransitionNotFound[S, E]{From: from, Event: event}
	}

	f.notify(func(obs Observer[S, E]) { obs.OnDispatch(from, event) })

	resp, err := entry.handler(f, event)
	if err != nil {
		return err
	}

	switch resp.kind {
	case responseTransition:
		f.current = resp.to
		f.history.Push(resp.to)
		f.notify(func(obs Observer[S, E]) { obs.OnExit(from, event) })
		f.notify(func(obs Observer[S, E]) { obs.OnEnter(resp.to, event) })

		return nil
	case responseUnhandled:
		return &ErrUnexpectedEvent[S, E]{State: from, Event: event}
	default:
		return nil
	}
}

// notify fans one observer call out to every registered observer.
// Observers are side-effect-only: a panicking observer is recovered and
// ignored so that tracing can never change the dispatch outcome.
func (f *FSM[S, E, C]) notify(call func(Observer[S, E])) {
	for obs := range f.observers.Iter() {
		func() {
			defer func() { _ = recover() }()
			call(obs)
		}()
	}
}

// Sync wraps the machine in a mutex-guarded view for cross-goroutine use.
func (f *FSM[S, E, C]) Sync() *SyncFSM[S, E, C] {
	return &SyncFSM[S, E, C]{fsm: f}
}
