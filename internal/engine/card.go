package engine

import "fmt"

// Suit is one of the four card suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String satisfies the fmt.Stringer interface.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Symbol returns the Unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Denomination is a Suit, or NoTrump for a no-trump contract.
type Denomination int

const (
	DenomSpades Denomination = iota
	DenomHearts
	DenomDiamonds
	DenomClubs
	NoTrump
)

// IsTrump reports whether the denomination names an actual trump suit.
func (d Denomination) IsTrump() bool {
	return d != NoTrump
}

// Suit converts a trump Denomination to the corresponding Suit.
// Must not be called on NoTrump.
func (d Denomination) Suit() Suit {
	return Suit(d)
}

// DenominationOf lifts a Suit to the Denomination that trumps it.
func DenominationOf(s Suit) Denomination {
	return Denomination(s)
}

// String satisfies the fmt.Stringer interface.
func (d Denomination) String() string {
	if d == NoTrump {
		return "NT"
	}
	return Suit(d).String()
}

// suitOrder fixes PBN suit order: Spades, Hearts, Diamonds, Clubs.
var suitOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Card is an integer 0..52 partitioned into four contiguous 13-card
// blocks by suit, in PBN suit order. Within a suit, index 0 is the
// Ace and 12 is the Two — lower index means higher rank.
type Card int

// NoCard is an out-of-range sentinel, never a member of any Cards set.
const NoCard Card = 52

// NewCard builds a Card from a suit and an in-suit rank index (0=Ace .. 12=Two).
func NewCard(suit Suit, rankIdx int) Card {
	return Card(int(suit)*13 + rankIdx)
}

// Suit returns the suit of a card.
func (c Card) Suit() Suit {
	return suitOrder[int(c)/13]
}

// RankIndex returns the in-suit rank index (0=Ace .. 12=Two) of a card.
func (c Card) RankIndex() int {
	return int(c) % 13
}

var rankBytes = [13]byte{'A', 'K', 'Q', 'J', 'T', '9', '8', '7', '6', '5', '4', '3', '2'}

// RankByte returns the rank character for the card ('A'..'2').
func (c Card) RankByte() byte {
	return rankBytes[c.RankIndex()]
}

// String renders the card as e.g. "AS", "TH", "2C".
func (c Card) String() string {
	return fmt.Sprintf("%c%s", c.RankByte(), c.Suit())
}

// RankFromByte maps a PBN rank character to its in-suit index, or -1
// if the byte is not a valid rank.
func RankFromByte(b byte) int {
	switch b {
	case 'A', 'a':
		return 0
	case 'K', 'k':
		return 1
	case 'Q', 'q':
		return 2
	case 'J', 'j':
		return 3
	case 'T', 't':
		return 4
	case '9':
		return 5
	case '8':
		return 6
	case '7':
		return 7
	case '6':
		return 8
	case '5':
		return 9
	case '4':
		return 10
	case '3':
		return 11
	case '2':
		return 12
	}
	return -1
}

// HigherRank reports whether a outranks b. Both cards must be in the
// same suit — the caller is responsible for that invariant.
func HigherRank(a, b Card) bool {
	return a < b
}

// WinsOver reports whether c2, played after c1 in the same trick under
// the given trump denomination and lead suit, beats c1.
//
// Same suit: higher rank wins. Otherwise: if trump is in play and
// exactly one of the two cards is trump, that one wins. Otherwise c1
// (already on lead, or already winning) stands — c2 neither follows
// suit nor trumps, so it cannot win.
func WinsOver(c1, c2 Card, trump Denomination, leadSuit Suit) bool {
	s1, s2 := c1.Suit(), c2.Suit()
	if s1 == s2 {
		return HigherRank(c2, c1)
	}
	if trump.IsTrump() {
		t := trump.Suit()
		c1Trump, c2Trump := s1 == t, s2 == t
		if c1Trump != c2Trump {
			return c2Trump
		}
	}
	return false
}
