package fsm

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the registered
// transition table for visualization. Pairs registered through Transition
// render as solid edges to their declared target. Pairs registered through
// AddTransition pick their target at dispatch time, so they render as
// dashed edges into a shared "?" placeholder node.
func (f *FSM[S, E, C]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph FSM {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	if f.ready {
		b.WriteString("  __start [shape=point, style=invis];\n")
		b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", f.initial))
	}

	grouped := g.NewMap[g.Pair[S, S], g.Slice[g.String]]()
	dynamic := g.NewMap[S, g.Slice[g.String]]()

	for key, entry := range f.transitions.Iter() {
		label := g.Format("{}", key.event)

		if entry.static {
			pair := g.Pair[S, S]{Key: key.from, Value: entry.to}
			grouped.Entry(pair).
				AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
				OrInsert(g.SliceOf(label))
		} else {
			dynamic.Entry(key.from).
				AndModify(func(s *g.Slice[g.String]) { s.Push(label) }).
				OrInsert(g.SliceOf(label))
		}
	}

	states := f.States()
	states.SortBy(func(a, b S) cmp.Ordering { return cmp.Cmp(g.Format("{}", a), g.Format("{}", b)) })

	outgoing := g.NewSet[S]()
	for key := range f.transitions.Iter() {
		outgoing.Insert(key.from)
	}

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case f.ready && state == f.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for pair, labels := range grouped.Iter() {
		b.WriteString(g.Format("  \"{}\" -> \"{}\" [label=\" {} \"];\n", pair.Key, pair.Value, labels.Join("\\n")))
	}

	if len(dynamic) > 0 {
		b.WriteString("\n  __dynamic [label=\"?\", style=dashed, fillcolor=\"#ffffff\"];\n")

		for from, labels := range dynamic.Iter() {
			b.WriteString(
				g.Format("  \"{}\" -> __dynamic [label=\" {} \", style=dashed, color=gray];\n", from, labels.Join("\\n")),
			)
		}
	}

	b.WriteString("}\n")

	return b.String()
}
