package engine

import (
	"fmt"
	"strings"
)

// Hands holds the four seats' card sets for a deal. The zero value is
// four empty hands.
type Hands [4]Cards

// Hand returns the cards held by seat s.
func (h Hands) Hand(s Seat) Cards {
	return h[s]
}

// SetHand replaces seat s's cards.
func (h *Hands) SetHand(s Seat, cards Cards) {
	h[s] = cards
}

// AllCards returns the union of all four hands.
func (h Hands) AllCards() Cards {
	return h[West] | h[North] | h[East] | h[South]
}

// NumTricks returns the number of tricks remaining to be played, i.e.
// any one hand's size (all four hands are equal in size by
// invariant).
func (h Hands) NumTricks() int {
	return h[North].Size()
}

// HCP returns the high-card-point count (A=4 K=3 Q=2 J=1) of a card set.
func HCP(cards Cards) int {
	total := 0
	for _, s := range suitOrder {
		suit := cards.Suit(s)
		if suit.Has(NewCard(s, 0)) {
			total += 4
		}
		if suit.Has(NewCard(s, 1)) {
			total += 3
		}
		if suit.Has(NewCard(s, 2)) {
			total += 2
		}
		if suit.Has(NewCard(s, 3)) {
			total += 1
		}
	}
	return total
}

// Shape returns the number of cards held in each suit, in PBN order
// (Spades, Hearts, Diamonds, Clubs).
func Shape(cards Cards) [4]int {
	var shape [4]int
	for i, s := range suitOrder {
		shape[i] = cards.Suit(s).Size()
	}
	return shape
}

// ParsePBN parses a deal string of the form
// "N:AKQ.J.T98.AK32 ... " (first-seat letter, colon, four
// dot-separated hands in Spades.Hearts.Diamonds.Clubs order,
// remaining seats clockwise). Also accepts the equivalent
// whitespace-delimited form used for test scaffolding, where the
// leading "<seat>:" is the only separator needed between the seat tag
// and the first hand.
//
// Returns MalformedInput if the string can't be parsed, hand sizes
// differ, a card is repeated, or the total exceeds 52 cards.
func ParsePBN(deal string) (Hands, Seat, error) {
	deal = strings.TrimSpace(deal)
	if len(deal) < 2 || deal[1] != ':' {
		return Hands{}, 0, MalformedInput{Message: fmt.Sprintf("deal string missing leading seat tag: %q", deal)}
	}
	first, ok := SeatFromRune(rune(deal[0]))
	if !ok {
		return Hands{}, 0, MalformedInput{Message: fmt.Sprintf("unknown seat symbol %q", deal[0:1])}
	}
	rest := strings.Fields(deal[2:])
	if len(rest) != 4 {
		return Hands{}, 0, MalformedInput{Message: fmt.Sprintf("expected 4 hands, got %d", len(rest))}
	}

	var hands Hands
	seat := first
	seen := EmptyCards
	sizes := make([]int, 4)
	for i, token := range rest {
		cards, err := parseHandToken(token)
		if err != nil {
			return Hands{}, 0, err
		}
		if cards.Intersect(seen) != EmptyCards {
			return Hands{}, 0, MalformedInput{Message: "duplicate card across hands"}
		}
		seen = seen.Union(cards)
		hands[seat] = cards
		sizes[i] = cards.Size()
		seat = NextSeat(seat)
	}
	for i := 1; i < 4; i++ {
		if sizes[i] != sizes[0] {
			return Hands{}, 0, MalformedInput{Message: "hands have unequal sizes"}
		}
	}
	if seen.Size() > 52 {
		return Hands{}, 0, MalformedInput{Message: "deal sums to more than 52 cards"}
	}
	return hands, first, nil
}

// parseHandToken parses one hand's "spades.hearts.diamonds.clubs"
// token. An empty suit (adjacent dots, or a trailing/leading empty
// field) means void in that suit.
func parseHandToken(token string) (Cards, error) {
	suits := strings.Split(token, ".")
	if len(suits) != 4 {
		return EmptyCards, MalformedInput{Message: fmt.Sprintf("hand %q must have 4 dot-separated suits", token)}
	}
	var cards Cards
	for i, suitToken := range suits {
		suit := suitOrder[i]
		for _, r := range suitToken {
			idx := RankFromByte(byte(r))
			if idx < 0 {
				return EmptyCards, MalformedInput{Message: fmt.Sprintf("invalid rank %q in hand %q", string(r), token)}
			}
			card := NewCard(suit, idx)
			if cards.Has(card) {
				return EmptyCards, MalformedInput{Message: fmt.Sprintf("duplicate card %s in hand %q", card, token)}
			}
			cards = cards.Add(card)
		}
	}
	return cards, nil
}

// FormatPBN renders hands back to PBN form, with first listing the
// lead seat for the deal tag's conventional first-seat slot.
func FormatPBN(h Hands, first Seat) string {
	var b strings.Builder
	b.WriteString(first.String())
	b.WriteByte(':')
	seat := first
	for i := 0; i < 4; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(h[seat].String())
		seat = NextSeat(seat)
	}
	return b.String()
}
