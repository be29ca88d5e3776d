package fsm

import "github.com/enetx/g"

// Counters is the default context shape: a string-keyed tally map handlers
// can bump across dispatch calls. The engine never reads it; any context
// type works, this one covers the common bookkeeping case.
type Counters = g.Map[g.String, g.Int]

// NewCounters returns an empty Counters map.
func NewCounters() Counters {
	return g.NewMap[g.String, g.Int]()
}
