// Package solver ties together the engine primitives, move ordering,
// heuristics, transposition table, and search into a single Solve
// entry point.
package solver

import "github.com/bran/bridgesolve/internal/engine"

// Config is the immutable input to one solve: a starting deal, the
// trump denomination, and the seat on lead for the first trick. A
// solve never mutates its Config; engine.State is where the mutable
// play state lives.
type Config struct {
	Hands  engine.Hands
	Trump  engine.Denomination
	Leader engine.Seat
}

// NewState builds the mutable play state this config's solve will
// thread through search.
func (c Config) NewState() *engine.State {
	return engine.NewState(c.Hands, c.Trump, c.Leader)
}
