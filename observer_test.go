package fsm_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "github.com/Mpinyaz/fsmportal"
	. "github.com/enetx/g"
)

// captureObserver records every notification in order.
type captureObserver struct {
	calls Slice[string]
}

func (o *captureObserver) OnDispatch(state, event string) {
	o.calls.Push("dispatch " + state + "/" + event)
}

func (o *captureObserver) OnExit(state, event string) {
	o.calls.Push("exit " + state + "/" + event)
}

func (o *captureObserver) OnEnter(state, event string) {
	o.calls.Push("enter " + state + "/" + event)
}

// panicObserver panics on every notification.
type panicObserver struct{}

func (panicObserver) OnDispatch(string, string) { panic("observer down") }
func (panicObserver) OnExit(string, string)     { panic("observer down") }
func (panicObserver) OnEnter(string, string)    { panic("observer down") }

func TestObserver_TransitionSequence(t *testing.T) {
	obs := &captureObserver{}

	m := New[string, string]("idle", 0).
		Transition("idle", "start", "running").
		Observe(obs)

	assertNoError(t, m.HandleEvent("start"))

	want := SliceOf(
		"dispatch idle/start",
		"exit idle/start",
		"enter running/start",
	)
	assertTrue(t, obs.calls.Eq(want))
}

func TestObserver_HandledNoExitEnter(t *testing.T) {
	obs := &captureObserver{}

	m := New[string, string]("idle", 0).
		AddTransition("idle", "ping", func(*FSM[string, string, int], string) (Response[string], error) {
			return Handled[string](), nil
		}).
		Observe(obs)

	assertNoError(t, m.HandleEvent("ping"))
	assertTrue(t, obs.calls.Eq(SliceOf("dispatch idle/ping")))
}

func TestObserver_NotFoundNotNotified(t *testing.T) {
	obs := &captureObserver{}

	m := New[string, string]("idle", 0).Observe(obs)

	assertError(t, m.HandleEvent("nope"))
	assertEqual(t, obs.calls.Len(), 0)
}

func TestObserver_PanicIsolated(t *testing.T) {
	obs := &captureObserver{}

	m := New[string, string]("idle", 0).
		Transition("idle", "start", "running").
		Observe(panicObserver{}).
		Observe(obs)

	// A panicking observer never fails the dispatch or starves later ones.
	assertNoError(t, m.HandleEvent("start"))
	assertEqual(t, mustCurrent(t, m), "running")
	assertEqual(t, obs.calls.Len(), 3)
}

func TestObserver_FanOutOrder(t *testing.T) {
	first := &captureObserver{}
	second := &captureObserver{}

	var order Slice[string]
	tap := func(name string, o *captureObserver) Observer[string, string] {
		return observerFunc{fn: func(kind, state, event string) {
			order.Push(name + ":" + kind)
			switch kind {
			case "dispatch":
				o.OnDispatch(state, event)
			case "exit":
				o.OnExit(state, event)
			case "enter":
				o.OnEnter(state, event)
			}
		}}
	}

	m := New[string, string]("a", 0).
		Transition("a", "go", "b").
		Observe(tap("first", first)).
		Observe(tap("second", second))

	assertNoError(t, m.HandleEvent("go"))

	assertEqual(t, order[0], "first:dispatch")
	assertEqual(t, order[1], "second:dispatch")
	assertTrue(t, first.calls.Eq(second.calls))
}

// observerFunc adapts a single function to the Observer interface.
type observerFunc struct {
	fn func(kind, state, event string)
}

func (o observerFunc) OnDispatch(state, event string) { o.fn("dispatch", state, event) }
func (o observerFunc) OnExit(state, event string)     { o.fn("exit", state, event) }
func (o observerFunc) OnEnter(state, event string)    { o.fn("enter", state, event) }

func TestLogObserver_TraceLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	m := New[string, string]("idle", 0).
		Transition("idle", "start", "running").
		Observe(NewLogObserver[string, string](logger))

	assertNoError(t, m.HandleEvent("start"))

	out := buf.String()
	assertTrue(t, strings.Contains(out, "exiting state"))
	assertTrue(t, strings.Contains(out, "entering state"))
	assertTrue(t, strings.Contains(out, "state=running"))
	assertTrue(t, strings.Contains(out, "event=start"))
}
