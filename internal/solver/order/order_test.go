package order

import (
	"testing"

	"github.com/bran/bridgesolve/internal/engine"
)

func mustParse(t *testing.T, deal string) (engine.Hands, engine.Seat) {
	t.Helper()
	hands, first, err := engine.ParsePBN(deal)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return hands, first
}

func TestOrderLeadsReturnsEveryLegalCard(t *testing.T) {
	hands, _ := mustParse(t, "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72")
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	ordered := OrderLeads(s)
	if len(ordered) != 13 {
		t.Fatalf("expected 13 cards, got %d", len(ordered))
	}
	seen := engine.EmptyCards
	for _, c := range ordered {
		if seen.Has(c) {
			t.Fatalf("card %v appeared twice in the lead order", c)
		}
		seen = seen.Add(c)
	}
	if !seen.Equal(hands.Hand(engine.North)) {
		t.Errorf("lead order does not cover exactly North's hand")
	}
}

func TestOrderLeadsTopBeforeBottomWithinASuit(t *testing.T) {
	hands, _ := mustParse(t, "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72")
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	ordered := OrderLeads(s)
	posOf := func(c engine.Card) int {
		for i, oc := range ordered {
			if oc == c {
				return i
			}
		}
		return -1
	}
	spadeTop := engine.NewCard(engine.Spades, 0)  // ace
	spadeBot := engine.NewCard(engine.Spades, 11) // three
	if posOf(spadeTop) >= posOf(spadeBot) {
		t.Errorf("top of suit should be ordered before bottom: top at %d, bottom at %d", posOf(spadeTop), posOf(spadeBot))
	}
}

func TestOrderFollowsReturnsEveryLegalCard(t *testing.T) {
	hands, _ := mustParse(t, "W:A.2.. K.9.. Q.8.. J.7..")
	s := engine.NewState(hands, engine.NoTrump, engine.West)
	s.PlayCard(engine.NewCard(engine.Spades, 0)) // West leads ace of spades
	ordered := OrderFollows(s)
	if len(ordered) != 1 || ordered[0] != engine.NewCard(engine.Spades, 1) {
		t.Errorf("North must follow with the king of spades, got %v", ordered)
	}
}

func TestOrderFollowsLowToHighWhenCannotBeat(t *testing.T) {
	hands, _ := mustParse(t, "N:AK... 43... 75... 98...")
	s := engine.NewState(hands, engine.NoTrump, engine.North)
	s.PlayCard(engine.NewCard(engine.Spades, 0)) // North leads the ace, unbeatable
	ordered := OrderFollows(s)
	if len(ordered) != 2 {
		t.Fatalf("expected 2 legal follows, got %d", len(ordered))
	}
	if engine.HigherRank(ordered[0], ordered[1]) {
		t.Errorf("expected low-to-high order when no card can beat the winner, got %v", ordered)
	}
}
