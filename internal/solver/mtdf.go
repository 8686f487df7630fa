package solver

import (
	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/solver/diag"
	"github.com/bran/bridgesolve/internal/solver/search"
)

// Solve runs the full double-dummy solve for cfg: builds the play
// state, drives MTD(f) to convergence, and returns a single integer —
// the number of tricks NS takes under optimal defense and declarer
// play from both sides.
func Solve(cfg Config, flags *diag.Flags) int {
	result, _ := SolveWithNodes(cfg, flags)
	return result
}

// SolveWithNodes runs the same solve as Solve but also returns the
// number of search nodes explored, for diagnostic reporting.
func SolveWithNodes(cfg Config, flags *diag.Flags) (int, int64) {
	if flags == nil {
		flags = diag.Default
	}
	state := cfg.NewState()
	sr := search.NewSearcher(state, flags)
	sr.Counters.Start()
	result := mtdf(sr, state.TotalTricks, initialGuess(cfg))
	sr.Counters.ReportPerf(flags, nil)
	return result, sr.Counters.Nodes
}

// mtdf implements the MTD(f) convergence loop: repeated null-window
// searches that tighten [lower, upper] until they meet.
func mtdf(sr *search.Searcher, numTricks, guess int) int {
	lower, upper := 0, numTricks
	f := guess
	for lower < upper {
		beta := f
		if f <= lower {
			beta = f + 1
		}
		f = sr.Search(beta)
		if f < beta {
			upper = f
		} else {
			lower = f
		}
	}
	return lower
}

// initialGuess seeds MTD(f) with an HCP/trump-length heuristic, shaped
// after BiddingEvaluator's HCP-counting (internal/ai/rule_based/bidding.go),
// adapted from a bid-strength score into a trick-count guess.
func initialGuess(cfg Config) int {
	numTricks := cfg.Hands.NumTricks()
	nsHCP := engine.HCP(cfg.Hands.Hand(engine.North)) + engine.HCP(cfg.Hands.Hand(engine.South))
	ewHCP := engine.HCP(cfg.Hands.Hand(engine.East)) + engine.HCP(cfg.Hands.Hand(engine.West))

	diff := nsHCP - ewHCP
	if cfg.Trump.IsTrump() {
		nsTrump := cfg.Hands.Hand(engine.North).Suit(cfg.Trump.Suit()).Size() +
			cfg.Hands.Hand(engine.South).Suit(cfg.Trump.Suit()).Size()
		ewTrump := cfg.Hands.Hand(engine.East).Suit(cfg.Trump.Suit()).Size() +
			cfg.Hands.Hand(engine.West).Suit(cfg.Trump.Suit()).Size()
		diff += (nsTrump - ewTrump) * 3
	}

	switch {
	case diff <= -10:
		return 0
	case diff < 3:
		return (numTricks + 1) / 2
	default:
		return numTricks
	}
}
