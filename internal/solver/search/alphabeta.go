// Package search implements a null-window alpha-beta descent: one
// driver call per MTD(f) iteration, make/unmake over a single shared
// engine.State, pattern-indexed transposition table probes and stores
// at trick boundaries, and heuristic pruning from the fast/slow trick
// bounds.
//
// Shaped after TreffnonX-taktician's ai-minimax.go (the table-probe /
// negamax-ish recursion shape) and janpfeifer-hiveGo's alpha-beta
// pruning file for the cutoff bookkeeping, adapted from a
// general-game-playing negamax into bridge's NS-maximizes /
// EW-minimizes trick count.
package search

import (
	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/solver/diag"
	"github.com/bran/bridgesolve/internal/solver/heur"
	"github.com/bran/bridgesolve/internal/solver/order"
	"github.com/bran/bridgesolve/internal/solver/tt"
)

// Searcher threads one State through repeated null-window searches.
// It owns the TT, cutoff cache, and diagnostic counters for exactly
// one solve — never shared across concurrent solves.
type Searcher struct {
	State    *engine.State
	Table    *tt.Table
	Cutoffs  *tt.CutoffCache
	Flags    *diag.Flags
	Counters *diag.Counters
}

// NewSearcher builds a Searcher around s, sizing the TT and cutoff
// cache to comfortably cover the deal (a handful of entries per card
// in play is ample for the descriptor's equivalence classing).
func NewSearcher(s *engine.State, flags *diag.Flags) *Searcher {
	size := 1
	for n := s.TotalTricks * 64; size < n; {
		size <<= 1
	}
	return &Searcher{
		State:    s,
		Table:    tt.NewTable(size),
		Cutoffs:  tt.NewCutoffCache(size),
		Flags:    flags,
		Counters: diag.NewCounters(flags),
	}
}

// Search performs one null-window descent against the window
// [beta-1, beta] and returns the NS trick total reached under optimal
// play.
func (sr *Searcher) Search(beta int) int {
	return sr.search(beta)
}

func (sr *Searcher) search(beta int) int {
	sr.Counters.Node()
	s := sr.State

	// 1. Terminal.
	if s.IsTerminal() {
		return s.NSTricksWon
	}

	// 2. Cheap bound cutoffs.
	tricksRemaining := s.TricksRemaining()
	if s.NSTricksWon >= beta {
		return s.NSTricksWon
	}
	if s.NSTricksWon+tricksRemaining < beta {
		return s.NSTricksWon + tricksRemaining
	}

	atBoundary := s.CardInTrick() == 0
	var desc tt.Descriptor
	var hash uint64
	if atBoundary && !sr.Flags.DisableTT {
		desc = tt.BuildDescriptor(s, sr.Flags.DisableRankSkip)
		hash = desc.Hash()
		// 3. TT probe.
		if b, ok := sr.Table.Probe(desc, hash); ok {
			relLower := s.NSTricksWon + b.Lower
			relUpper := s.NSTricksWon + b.Upper
			if relLower >= beta {
				return relLower
			}
			if relUpper < beta {
				return relUpper
			}
		}
	}

	// 4. Heuristic prune.
	if atBoundary && !sr.Flags.DisablePruning {
		toPlay := s.ActiveSeat()
		// FastTricks is a guaranteed floor for the side to play;
		// SlowTricks is a guaranteed floor for the side not to play.
		// Both are sound lower bounds, so they only ever let the
		// search return early with a value at least as extreme as the
		// true one — never an unsound shortcut.
		ownFast := heur.FastTricks(s)
		oppSlow := heur.SlowTricks(s)
		var floor, ceiling int
		if engine.IsNS(toPlay) {
			floor = s.NSTricksWon + ownFast
			ceiling = s.NSTricksWon + tricksRemaining - oppSlow
		} else {
			ceiling = s.NSTricksWon + tricksRemaining - ownFast
			floor = s.NSTricksWon + oppSlow
		}
		if floor >= beta {
			return floor
		}
		if ceiling < beta {
			return ceiling
		}
	}

	// 5. Enumerate legal plays in heuristic order, trying the cutoff
	// hint first if present and still legal.
	toPlay := s.ActiveSeat()
	var ordered []engine.Card
	if s.CardInTrick() == 0 {
		ordered = order.OrderLeads(s)
	} else {
		ordered = order.OrderFollows(s)
	}
	if atBoundary && !sr.Flags.DisableTT {
		if hint, ok := sr.Cutoffs.Hint(hash, toPlay); ok {
			ordered = moveToFront(ordered, hint)
		}
	}

	maximizing := engine.IsNS(toPlay)
	var best int
	if maximizing {
		best = s.NSTricksWon // worst case for NS: nothing more is won
	} else {
		best = s.NSTricksWon + tricksRemaining // worst case for EW: NS sweeps the rest
	}

	var tried engine.Cards
	cutoffCard := engine.NoCard
	cutoff := false

	for _, c := range ordered {
		if skippedByEquivalence(c, tried, toPlay, s) {
			continue
		}
		tried = tried.Add(c)

		s.PlayCard(c)
		val := sr.search(beta)
		s.UnplayCard()

		if maximizing {
			if val > best {
				best = val
			}
			if best >= beta {
				cutoffCard, cutoff = c, true
				break
			}
		} else {
			if val < best {
				best = val
			}
			if best < beta {
				cutoffCard, cutoff = c, true
				break
			}
		}
	}

	// 8. Record cutting card.
	if cutoff && atBoundary && !sr.Flags.DisableTT {
		sr.Cutoffs.Record(hash, toPlay, cutoffCard)
	}

	// 9. TT store.
	if atBoundary && !sr.Flags.DisableTT {
		rel := best - s.NSTricksWon
		var b tt.Bounds
		if best < beta {
			b = tt.Bounds{Lower: 0, Upper: rel}
		} else {
			b = tt.Bounds{Lower: rel, Upper: tricksRemaining}
		}
		if prior, ok := sr.Table.Probe(desc, hash); ok {
			b = mergeBounds(prior, b)
		}
		sr.Table.Store(hash, b)
	}

	return best
}

// skippedByEquivalence reports whether c is equivalent to a card
// already tried at this node (same suit, and every card strictly
// between them that is still in a hand or on the current trick is held
// by the player to move) — such a card cannot produce a different
// outcome and is skipped.
func skippedByEquivalence(c engine.Card, tried engine.Cards, toPlay engine.Seat, s *engine.State) bool {
	if tried.IsEmpty() {
		return false
	}
	hand := s.Hands.Hand(toPlay)
	allCards := s.Hands.AllCards()
	for _, p := range s.CurrentTrick().Plays() {
		allCards = allCards.Add(p.Card)
	}
	for _, t := range tried.Suit(c.Suit()).Cards() {
		lo, hi := c, t
		if hi < lo {
			lo, hi = hi, lo
		}
		between := allCards.Slice(lo+1, hi)
		if between.Diff(hand).IsEmpty() {
			return true
		}
	}
	return false
}

// moveToFront reorders cards so that hint (if present) comes first.
func moveToFront(cards []engine.Card, hint engine.Card) []engine.Card {
	idx := -1
	for i, c := range cards {
		if c == hint {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return cards
	}
	out := make([]engine.Card, 0, len(cards))
	out = append(out, hint)
	out = append(out, cards[:idx]...)
	out = append(out, cards[idx+1:]...)
	return out
}

// mergeBounds tightens a newly computed bound against a bound already
// on file for the same descriptor.
func mergeBounds(prior, fresh tt.Bounds) tt.Bounds {
	lower := prior.Lower
	if fresh.Lower > lower {
		lower = fresh.Lower
	}
	upper := prior.Upper
	if fresh.Upper < upper {
		upper = fresh.Upper
	}
	if lower > upper {
		// Conflicting bounds from different beta windows: prefer the
		// fresh measurement over the stale one.
		return fresh
	}
	return tt.Bounds{Lower: lower, Upper: upper}
}
