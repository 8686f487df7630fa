// Package deal generates random legal deals for the solver to chew on.
// This sits outside the solver core's own concerns: the shuffle itself
// is uninteresting, only the Hands it produces matter.
//
// Shaped after the Deck type in internal/engine/deck.go: build a flat
// slice of every card, Fisher-Yates shuffle it with math/rand, then
// DrawN off the top per seat — adapted from a 24-card deck to bridge's
// full 52-card, 13-a-side deal.
package deal

import (
	"math/rand"

	"github.com/bran/bridgesolve/internal/engine"
)

// Deck holds the 52 cards awaiting distribution.
type Deck struct {
	cards []engine.Card
}

// NewDeck builds a full 52-card deck in suit/rank order.
func NewDeck() *Deck {
	cards := make([]engine.Card, 0, 52)
	for s := engine.Spades; s <= engine.Clubs; s++ {
		for rank := 0; rank < 13; rank++ {
			cards = append(cards, engine.NewCard(s, rank))
		}
	}
	return &Deck{cards: cards}
}

// Shuffle randomizes the deck's order in place using rnd, or the
// package-level math/rand source if rnd is nil.
func (d *Deck) Shuffle(rnd *rand.Rand) {
	shuffle := rand.Shuffle
	if rnd != nil {
		shuffle = rnd.Shuffle
	}
	shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DrawN removes and returns the top n cards of the deck.
func (d *Deck) DrawN(n int) []engine.Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := d.cards[:n]
	d.cards = d.cards[n:]
	return out
}

// Random deals a full 52-card, 13-a-side deal: West first, clockwise,
// matching the deal-string seat order ParsePBN expects.
func Random(rnd *rand.Rand) engine.Hands {
	d := NewDeck()
	d.Shuffle(rnd)

	var hands engine.Hands
	seat := engine.West
	for i := 0; i < 4; i++ {
		hands.SetHand(seat, engine.NewCards(d.DrawN(13)...))
		seat = engine.NextSeat(seat)
	}
	return hands
}

// RandomWithSize deals a deal of handSize cards per seat (for solves
// smaller than a full 52-card deal, e.g. benchmarking endgame sizes).
func RandomWithSize(rnd *rand.Rand, handSize int) engine.Hands {
	d := NewDeck()
	d.Shuffle(rnd)

	var hands engine.Hands
	seat := engine.West
	for i := 0; i < 4; i++ {
		hands.SetHand(seat, engine.NewCards(d.DrawN(handSize)...))
		seat = engine.NextSeat(seat)
	}
	return hands
}
