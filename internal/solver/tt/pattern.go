// Package tt implements a pattern-indexed transposition table and
// cutoff (killer-move) cache: a descriptor that collapses irrelevant
// low cards into an anonymous pool so that strategically identical
// positions share one table entry.
//
// Shaped after TreffnonX-taktician's ai-minimax.go table-entry/hash
// shape (tableEntry{hash, depth, value, bound}, power-of-two sizing
// via hash & (size-1)), adapted from a single-game hash key to a
// per-suit holder-multiset descriptor.
package tt

import (
	"github.com/bran/bridgesolve/internal/engine"
)

// Descriptor is the equivalence-class key for a position: per suit,
// which seat holds each of that suit's "relevant" ranks (everything
// below the minimum relevant rank is collapsed into one anonymous
// low-card count per seat), plus trump and the seat to play.
type Descriptor struct {
	Trump  engine.Denomination
	ToPlay engine.Seat
	suits  [4]suitPattern
}

// suitPattern records, for the relevant (non-collapsed) cards of one
// suit, which seat holds each rank — encoded as a seat index 0..3, or
// 4 for "collapsed into the low-card pool" — plus each seat's
// low-card count.
type suitPattern struct {
	holder   [13]uint8 // per original rank index: seat (0..3) or 4 if collapsed
	lowCount [4]uint8  // per seat: count of cards collapsed into its low pool
}

// BuildDescriptor derives the pattern descriptor for the current
// position in s, honoring the rank-skip toggle.
func BuildDescriptor(s *engine.State, disableRankSkip bool) Descriptor {
	d := Descriptor{Trump: s.Trump, ToPlay: s.ActiveSeat()}
	suitsOrder := [4]engine.Suit{engine.Spades, engine.Hearts, engine.Diamonds, engine.Clubs}
	for i, suit := range suitsOrder {
		d.suits[i] = buildSuitPattern(s, suit, disableRankSkip)
	}
	return d
}

// buildSuitPattern keeps the top max(hand_size_in_suit_over_all_seats)
// relevant cards that anyone holds, collapsing the rest per seat into
// a count.
func buildSuitPattern(s *engine.State, suit engine.Suit, disableRankSkip bool) suitPattern {
	var sp suitPattern
	for i := range sp.holder {
		sp.holder[i] = 4 // unheld by anyone, or collapsed
	}

	maxLen := 0
	for seat := engine.West; seat <= engine.South; seat++ {
		if n := s.Hands.Hand(seat).Suit(suit).Size(); n > maxLen {
			maxLen = n
		}
	}

	relevantRanks := 13
	if !disableRankSkip {
		relevantRanks = maxLen
	}

	kept := 0
	for _, c := range s.Hands.AllCards().Suit(suit).Cards() {
		seat := engine.West
		for !s.Hands.Hand(seat).Has(c) {
			seat++
		}
		if kept < relevantRanks {
			sp.holder[c.RankIndex()] = uint8(seat)
			kept++
		} else {
			sp.lowCount[seat]++
		}
	}
	return sp
}

// Hash combines the descriptor into a single uint64 for table lookup.
func (d Descriptor) Hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	mix := func(b byte) {
		h ^= uint64(b)
		h *= 1099511628211 // FNV prime
	}
	mix(byte(d.Trump))
	mix(byte(d.ToPlay))
	for _, sp := range d.suits {
		for _, holder := range sp.holder {
			mix(holder)
		}
		for _, n := range sp.lowCount {
			mix(n)
		}
	}
	return h
}
