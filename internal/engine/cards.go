package engine

import "math/bits"

// Cards is a 52-bit set of Card values. Bit i (0..51) tracks Card(i);
// bits 52..63 are always zero. Low bit index means high rank within a
// suit, so "top" of a Cards set is its lowest set bit, grounded on
// melvinzhang-squava's raw-uint64 Bitboard pattern (math/bits
// popcount/trailing-zeros, no third-party bitset dependency — see
// DESIGN.md).
type Cards uint64

// fullMask covers bits 0..51.
const fullMask Cards = (1 << 52) - 1

// EmptyCards is the empty set.
const EmptyCards Cards = 0

// NewCards builds a set from a list of cards.
func NewCards(cards ...Card) Cards {
	var c Cards
	for _, card := range cards {
		c = c.Add(card)
	}
	return c
}

// Add returns the set with card inserted.
func (c Cards) Add(card Card) Cards {
	return (c | (1 << uint(card))) & fullMask
}

// Remove returns the set with card removed.
func (c Cards) Remove(card Card) Cards {
	return c &^ (1 << uint(card))
}

// Has reports whether card is a member.
func (c Cards) Has(card Card) bool {
	return c&(1<<uint(card)) != 0
}

// Union returns c | other.
func (c Cards) Union(other Cards) Cards {
	return c | other
}

// Intersect returns c & other.
func (c Cards) Intersect(other Cards) Cards {
	return c & other
}

// Diff returns cards in c but not in other.
func (c Cards) Diff(other Cards) Cards {
	return c &^ other
}

// Size returns the popcount of the set.
func (c Cards) Size() int {
	return bits.OnesCount64(uint64(c))
}

// IsEmpty reports whether the set has no members.
func (c Cards) IsEmpty() bool {
	return c == 0
}

// Equal reports whether two sets contain the same cards.
func (c Cards) Equal(other Cards) bool {
	return c == other
}

// suitMask is the full 13-bit mask for a given suit's block.
func suitMask(s Suit) Cards {
	return (Cards(0x1FFF)) << uint(int(s)*13)
}

// Suit returns the subset of c belonging to suit s.
func (c Cards) Suit(s Suit) Cards {
	return c & suitMask(s)
}

// Slice returns the subset of c whose Card values fall in the
// half-open range [lo, hi).
func (c Cards) Slice(lo, hi Card) Cards {
	if hi <= lo {
		return EmptyCards
	}
	var mask Cards
	if hi >= 52 {
		mask = fullMask &^ ((Cards(1) << uint(lo)) - 1)
	} else {
		mask = ((Cards(1) << uint(hi)) - 1) &^ ((Cards(1) << uint(lo)) - 1)
	}
	return c & mask
}

// Top returns the highest-ranked card in c (the lowest set bit index)
// and true, or (NoCard, false) if c is empty.
func (c Cards) Top() (Card, bool) {
	if c == 0 {
		return NoCard, false
	}
	return Card(bits.TrailingZeros64(uint64(c))), true
}

// Bottom returns the lowest-ranked card in c (the highest set bit
// index) and true, or (NoCard, false) if c is empty.
func (c Cards) Bottom() (Card, bool) {
	if c == 0 {
		return NoCard, false
	}
	return Card(63 - bits.LeadingZeros64(uint64(c))), true
}

// Cards returns the members of c in descending-rank order (lowest
// Card index first), the iteration order move ordering expects.
func (c Cards) Cards() []Card {
	out := make([]Card, 0, c.Size())
	for rem := c; rem != 0; {
		card, _ := rem.Top()
		out = append(out, card)
		rem = rem.Remove(card)
	}
	return out
}

// SuitsPresent returns the suits for which c holds at least one card,
// in PBN order (Spades, Hearts, Diamonds, Clubs).
func (c Cards) SuitsPresent() []Suit {
	var out []Suit
	for _, s := range suitOrder {
		if !c.Suit(s).IsEmpty() {
			out = append(out, s)
		}
	}
	return out
}

// String renders the set suit-by-suit, PBN style, e.g. "AKQ.J.T98.".
func (c Cards) String() string {
	out := make([]byte, 0, 20)
	for i, s := range suitOrder {
		if i > 0 {
			out = append(out, '.')
		}
		for _, card := range c.Suit(s).Cards() {
			out = append(out, card.RankByte())
		}
	}
	return string(out)
}
