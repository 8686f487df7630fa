package heur

import (
	"testing"

	"github.com/bran/bridgesolve/internal/engine"
)

// suitOnlyState builds a *State whose North/East/South/West hands hold
// only the given cards — constructed directly (NewState performs
// no size validation) so fast/slow-trick math can be exercised without
// needing a fully dealt, equal-sized four-hand deck.
func suitOnlyState(north, east, south, west engine.Cards) *engine.State {
	var hands engine.Hands
	hands.SetHand(engine.North, north)
	hands.SetHand(engine.East, east)
	hands.SetHand(engine.South, south)
	hands.SetHand(engine.West, west)
	return engine.NewState(hands, engine.NoTrump, engine.North)
}

func spades(ranks ...int) engine.Cards {
	return suitCards(engine.Spades, ranks...)
}

func hearts(ranks ...int) engine.Cards {
	return suitCards(engine.Hearts, ranks...)
}

func diamonds(ranks ...int) engine.Cards {
	return suitCards(engine.Diamonds, ranks...)
}

func suitCards(suit engine.Suit, ranks ...int) engine.Cards {
	var c engine.Cards
	for _, r := range ranks {
		c = c.Add(engine.NewCard(suit, r))
	}
	return c
}

func TestFastTricksTopRunAllOurs(t *testing.T) {
	// North: AKQ, South (partner): 54, East: 98, West: 76.
	s := suitOnlyState(spades(0, 1, 2), spades(5, 6), spades(9, 10), spades(7, 8))
	if got := FastTricks(s); got != 3 {
		t.Errorf("FastTricks = %d, want 3 (AKQ run)", got)
	}
}

func TestFastTricksReachPartnersRun(t *testing.T) {
	// North holds a lone small spade (entry); South (partner) holds AKQ.
	// Diamonds only pad North's hand so TricksRemaining doesn't clip the
	// result; East holds the top diamond so that suit adds nothing.
	north := spades(9).Union(diamonds(5, 6))
	east := spades(5).Union(diamonds(0))
	s := suitOnlyState(north, east, spades(0, 1, 2), spades(6))
	if got := FastTricks(s); got != 3 {
		t.Errorf("FastTricks = %d, want 3 (reach partner's AKQ via our entry)", got)
	}
}

func TestFastTricksNoEntryToPartner(t *testing.T) {
	// North holds nothing in the suit at all; South's AKQ is unreachable.
	s := suitOnlyState(engine.EmptyCards, spades(5), spades(0, 1, 2), spades(6))
	if got := FastTricks(s); got != 0 {
		t.Errorf("FastTricks = %d, want 0 (no entry to partner's winners)", got)
	}
}

func TestFastTricksPartnerEntryUnlocksASecondSuit(t *testing.T) {
	// Spades: North holds a lone low entry, South (partner) holds AKQ —
	// the same shape as TestFastTricksReachPartnersRun, worth 3 either
	// way you cash it, and it's what sets the partner-entry flag.
	// Hearts: North is void, South holds KQJ unguarded — worthless from
	// North's own lead (North has nothing to lead hearts with) but
	// worth 3 run from partner's side once the entry gets partner in.
	// Diamonds only pads North's hand so TricksRemaining doesn't clip
	// the result; East holds the top diamond so the suit breaks
	// immediately and contributes nothing either way.
	north := spades(11).Union(diamonds(5, 6, 7, 8, 9))
	east := diamonds(0)
	south := spades(0, 1, 2).Union(hearts(1, 2, 3))
	west := engine.EmptyCards
	s := suitOnlyState(north, east, south, west)
	if got := FastTricks(s); got != 6 {
		t.Errorf("FastTricks = %d, want 6 (partner's entry unlocks the heart suit too)", got)
	}
}

func TestFastTricksBoundedByTricksRemaining(t *testing.T) {
	hands, _, err := engine.ParsePBN("N:A... K... Q... J...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	if got := FastTricks(s); got > s.TricksRemaining() {
		t.Errorf("FastTricks = %d exceeds TricksRemaining = %d", got, s.TricksRemaining())
	}
}

func TestSlowTricksNoTrumpConcentratedTopsGiveAll(t *testing.T) {
	hands, _, err := engine.ParsePBN("N:2.2.2.2 A.K.Q.J 3.3.3.3 4.4.4.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	// All four suit tops belong to East alone, so all four count.
	if got := slowTricksNoTrump(s); got != 4 {
		t.Errorf("slowTricksNoTrump = %d, want 4 (concentrated in East)", got)
	}
}

func TestSlowTricksNoTrumpOwnSideControlsGivesZero(t *testing.T) {
	hands, _, err := engine.ParsePBN("N:A.A.A.A K.K.K.K 2.2.2.2 3.3.3.3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	if got := slowTricksNoTrump(s); got != 0 {
		t.Errorf("slowTricksNoTrump = %d, want 0 (North holds every top card)", got)
	}
}
