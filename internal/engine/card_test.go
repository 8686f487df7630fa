package engine

import "testing"

func TestCardSuitAndRankIndex(t *testing.T) {
	tests := []struct {
		card Card
		suit Suit
		rank int
	}{
		{NewCard(Spades, 0), Spades, 0},
		{NewCard(Spades, 12), Spades, 12},
		{NewCard(Hearts, 4), Hearts, 4},
		{NewCard(Diamonds, 11), Diamonds, 11},
		{NewCard(Clubs, 3), Clubs, 3},
	}
	for _, tt := range tests {
		if got := tt.card.Suit(); got != tt.suit {
			t.Errorf("%s.Suit() = %v, want %v", tt.card, got, tt.suit)
		}
		if got := tt.card.RankIndex(); got != tt.rank {
			t.Errorf("%s.RankIndex() = %d, want %d", tt.card, got, tt.rank)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Spades, 0), "AS"},
		{NewCard(Hearts, 4), "TH"},
		{NewCard(Diamonds, 12), "2D"},
		{NewCard(Clubs, 3), "JC"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestHigherRank(t *testing.T) {
	ace := NewCard(Spades, 0)
	king := NewCard(Spades, 1)
	two := NewCard(Spades, 12)
	if !HigherRank(ace, king) {
		t.Error("ace should outrank king")
	}
	if HigherRank(king, ace) {
		t.Error("king should not outrank ace")
	}
	if !HigherRank(king, two) {
		t.Error("king should outrank two")
	}
}

func TestWinsOverSameSuit(t *testing.T) {
	ace := NewCard(Spades, 0)
	king := NewCard(Spades, 1)
	if !WinsOver(king, ace, NoTrump, Spades) {
		t.Error("ace should beat king led")
	}
	if WinsOver(ace, king, NoTrump, Spades) {
		t.Error("king should not beat ace led")
	}
}

func TestWinsOverTrump(t *testing.T) {
	spadeAce := NewCard(Spades, 0)
	heartTwo := NewCard(Hearts, 12)
	if !WinsOver(spadeAce, heartTwo, DenomHearts, Spades) {
		t.Error("a low trump should beat a high off-suit card")
	}
	if WinsOver(heartTwo, spadeAce, DenomHearts, Hearts) {
		t.Error("an off-suit ace should not beat a trump")
	}
}

func TestWinsOverNeitherSuitNorTrump(t *testing.T) {
	spadeAce := NewCard(Spades, 0)
	clubTwo := NewCard(Clubs, 12)
	if WinsOver(spadeAce, clubTwo, DenomHearts, Spades) {
		t.Error("an off-suit, non-trump discard must never win a trick")
	}
}

func TestDenominationString(t *testing.T) {
	tests := []struct {
		d    Denomination
		want string
	}{
		{DenomSpades, "S"},
		{DenomHearts, "H"},
		{DenomDiamonds, "D"},
		{DenomClubs, "C"},
		{NoTrump, "NT"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%d.String() = %s, want %s", tt.d, got, tt.want)
		}
	}
}
