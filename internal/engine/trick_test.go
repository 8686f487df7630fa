package engine

import "testing"

func fourCardState() *State {
	// a four-card sanity deal: each seat holds a singleton of every suit.
	hands, _, err := ParsePBN("N:A.A.A.A K.K.K.K 2.2.2.2 3.3.3.3")
	if err != nil {
		panic(err)
	}
	return NewState(hands, NoTrump, West)
}

func TestStatePlayUnplayReversible(t *testing.T) {
	s := fourCardState()
	before := s.Hands
	beforeDepth := s.Depth
	beforeNS := s.NSTricksWon
	beforeLeader := s.leader

	card, _ := s.LegalPlays().Top()
	s.PlayCard(card)
	s.UnplayCard()

	if s.Hands != before {
		t.Errorf("hands not restored: got %v want %v", s.Hands, before)
	}
	if s.Depth != beforeDepth {
		t.Errorf("depth not restored: got %d want %d", s.Depth, beforeDepth)
	}
	if s.NSTricksWon != beforeNS {
		t.Errorf("NS tricks not restored: got %d want %d", s.NSTricksWon, beforeNS)
	}
	if s.leader != beforeLeader {
		t.Errorf("leader not restored: got %v want %v", s.leader, beforeLeader)
	}
}

func TestStateSingleTrickNSWinsAllFour(t *testing.T) {
	s := fourCardState()
	// West leads 3, North plays A (wins), East plays K, South plays 2.
	for !s.IsTerminal() {
		active := s.ActiveSeat()
		card, _ := s.Hands.Hand(active).Top()
		s.PlayCard(card)
	}
	if s.NSTricksWon != 4 {
		t.Errorf("NSTricksWon = %d, want 4 (North holds all the aces)", s.NSTricksWon)
	}
}

func TestStateMustFollowSuit(t *testing.T) {
	hands, _, err := ParsePBN("W:A.2.. K.9.. Q.8.. J.7..")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	s := NewState(hands, NoTrump, West)
	s.PlayCard(NewCard(Spades, 0)) // West leads the ace of spades
	legal := s.LegalPlays()
	if legal.Size() != 1 || !legal.Has(NewCard(Spades, 1)) {
		t.Errorf("North should be forced to follow with the king of spades, got %v", legal)
	}
}

func TestStateTrickIndexAndCardInTrick(t *testing.T) {
	s := fourCardState()
	if s.TrickIndex() != 0 || s.CardInTrick() != 0 {
		t.Fatalf("expected trick 0, card 0 at start")
	}
	card, _ := s.LegalPlays().Top()
	s.PlayCard(card)
	if s.TrickIndex() != 0 || s.CardInTrick() != 1 {
		t.Errorf("expected trick 0, card 1 after one play, got trick %d card %d", s.TrickIndex(), s.CardInTrick())
	}
}
