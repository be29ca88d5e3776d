package fsm

import (
	"sync"

	. "github.com/enetx/g"
)

// Interface compliance check.
var (
	_ StateMachine[string, string, int] = (*FSM[string, string, int])(nil)
	_ StateMachine[string, string, int] = (*SyncFSM[string, string, int])(nil)
)

// SyncFSM is a mutex-guarded wrapper around an FSM. The base FSM performs
// no locking of its own; SyncFSM is the packaged form of the external
// mutual exclusion required to share one machine across goroutines.
// Handlers and observers run while the lock is held and must not call back
// into the same SyncFSM.
type SyncFSM[S, E comparable, C any] struct {
	fsm *FSM[S, E, C]
	mu  sync.RWMutex
}

// HandleEvent is the thread-safe version of FSM.HandleEvent. It atomically
// executes one dispatch cycle.
func (sf *SyncFSM[S, E, C]) HandleEvent(event E) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.HandleEvent(event)
}

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM[S, E, C]) Current() (S, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// Context is the thread-safe version of FSM.Context. The returned pointer
// outlives the lock; concurrent access to the context value itself is the
// caller's responsibility.
func (sf *SyncFSM[S, E, C]) Context() *C {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Context()
}

// SetState is the thread-safe version of FSM.SetState. It forcefully sets
// the current state, bypassing the transition table and all observers.
func (sf *SyncFSM[S, E, C]) SetState(s S) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.SetState(s)
}

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM[S, E, C]) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// History is the thread-safe version of FSM.History.
func (sf *SyncFSM[S, E, C]) History() Slice[S] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.History()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM[S, E, C]) States() Slice[S] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// ToDOT is the thread-safe version of FSM.ToDOT.
func (sf *SyncFSM[S, E, C]) ToDOT() String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}
