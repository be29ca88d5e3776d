package fsm

import "log/slog"

// Observer receives dispatch trace notifications. Observers are
// side-effect-only: they cannot fail a dispatch, and a panicking observer
// is recovered and ignored.
type Observer[S, E comparable] interface {
	// OnDispatch runs after handler lookup succeeds, before the handler is
	// invoked, with the state the event is being processed in.
	OnDispatch(state S, event E)
	// OnExit runs after a successful state change with the state that was
	// just left and the event that caused the change.
	OnExit(state S, event E)
	// OnEnter runs after a successful state change with the new current
	// state and the event that caused the change.
	OnEnter(state S, event E)
}

// LogObserver traces dispatch activity as structured log records.
type LogObserver[S, E comparable] struct {
	logger *slog.Logger
}

// NewLogObserver returns an observer writing to logger, or to
// slog.Default() when logger is nil.
func NewLogObserver[S, E comparable](logger *slog.Logger) *LogObserver[S, E] {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogObserver[S, E]{logger: logger}
}

func (o *LogObserver[S, E]) OnDispatch(state S, event E) {
	o.logger.Debug("dispatching event", "state", state, "event", event)
}

func (o *LogObserver[S, E]) OnExit(state S, event E) {
	o.logger.Info("exiting state", "state", state, "event", event)
}

func (o *LogObserver[S, E]) OnEnter(state S, event E) {
	o.logger.Info("entering state", "state", state, "event", event)
}
