// Package order supplies move-ordering heuristics for the alpha-beta
// search: which legal card to try first so that cutoffs happen early.
// None of it affects correctness — a search that ignores this package
// entirely still returns the right answer, just slower — so every
// function here is free to use cheap, approximate signals.
//
// Shaped after internal/ai/rule_based/play.go (selectLead/selectFollow),
// generalized from "pick one card" to "rank every legal card".
package order

import "github.com/bran/bridgesolve/internal/engine"

// OrderLeads returns the active seat's legal cards (s.LegalPlays(),
// which is the whole hand when leading) ordered into six priority
// classes: ruff-seeking, good, high, normal, bad, and trump leads,
// each internally ordered top-before-bottom. Cards that don't fall
// into any class are appended last, highest card first.
func OrderLeads(s *engine.State) []engine.Card {
	active := s.ActiveSeat()
	hand := s.Hands.Hand(active)
	partner := engine.Partner(active)
	lho := engine.LeftHandOpp(active)
	rho := engine.RightHandOpp(active)
	trump := s.Trump

	suits := hand.SuitsPresent()
	assigned := engine.EmptyCards
	var classes [6][]engine.Card

	for _, suit := range suits {
		if suit == trump.Suit() && trump.IsTrump() {
			continue // trump is its own class, handled separately below
		}
		ours := hand.Suit(suit)
		pdSuit := s.Hands.Hand(partner).Suit(suit)
		lhoSuit := s.Hands.Hand(lho).Suit(suit)
		rhoSuit := s.Hands.Hand(rho).Suit(suit)

		if trump.IsTrump() && ruffable(s, suit, lho, rho) {
			continue // opponent is void and can overruff: skip this suit entirely
		}

		class := -1
		switch {
		case trump.IsTrump() && pdSuit.IsEmpty() && hasTrumpControl(s, active, partner):
			class = 0 // ruff-seeking
		case looksLikeGoodLead(ours, lhoSuit, rhoSuit):
			class = 1
		case looksLikeHighLead(ours, lhoSuit, rhoSuit):
			class = 2
		case trump.IsTrump() && looksLikeBadLead(ours, rhoSuit):
			class = 4
		default:
			class = 3 // normal
		}
		top, hasTop := ours.Top()
		bottom, hasBottom := ours.Bottom()
		if class == 0 {
			// Ruff-seeking: lead the lowest non-ace card of the suit.
			lowestNonAce, ok := lowestNonAceOf(ours)
			if ok {
				classes[0] = append(classes[0], lowestNonAce)
				assigned = assigned.Add(lowestNonAce)
			}
			continue
		}
		if hasTop {
			classes[class] = append(classes[class], top)
			assigned = assigned.Add(top)
		}
		if hasBottom && bottom != top {
			classes[class] = append(classes[class], bottom)
			assigned = assigned.Add(bottom)
		}
	}

	if trump.IsTrump() {
		trumpsInHand := hand.Suit(trump.Suit())
		if top, ok := trumpsInHand.Top(); ok {
			classes[5] = append(classes[5], top)
			assigned = assigned.Add(top)
		}
		if bottom, ok := trumpsInHand.Bottom(); ok && !assigned.Has(bottom) {
			classes[5] = append(classes[5], bottom)
			assigned = assigned.Add(bottom)
		}
	}

	out := make([]engine.Card, 0, hand.Size())
	for _, class := range classes {
		out = append(out, class...)
	}
	for _, c := range hand.Cards() {
		if !assigned.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// ruffable reports whether leading suit would let an opponent ruff:
// either opponent void in suit while holding at least one trump.
func ruffable(s *engine.State, suit engine.Suit, lho, rho engine.Seat) bool {
	trump := s.Trump.Suit()
	for _, opp := range [2]engine.Seat{lho, rho} {
		oppHand := s.Hands.Hand(opp)
		if oppHand.Suit(suit).IsEmpty() && !oppHand.Suit(trump).IsEmpty() {
			return true
		}
	}
	return false
}

// hasTrumpControl reports that partner holds at least one trump and
// our trump count is at least partner's (so partner ruffs while we
// still hold the balance of power in trumps).
func hasTrumpControl(s *engine.State, us, partner engine.Seat) bool {
	trump := s.Trump.Suit()
	pdTrumps := s.Hands.Hand(partner).Suit(trump).Size()
	ourTrumps := s.Hands.Hand(us).Suit(trump).Size()
	return pdTrumps > 0 && ourTrumps >= pdTrumps
}

// looksLikeGoodLead approximates "finesse position": we hold the ace
// of the suit plus its king or queen, and at least one opponent still
// holds cards in it.
func looksLikeGoodLead(ours, lhoSuit, rhoSuit engine.Cards) bool {
	if ours.Size() < 2 {
		return false
	}
	top, _ := ours.Top()
	second, _ := ours.Remove(top).Top()
	return top.RankIndex() == 0 && second.RankIndex() <= 2 && (lhoSuit.Size() > 0 || rhoSuit.Size() > 0)
}

// looksLikeHighLead approximates "both opponents have length and we
// hold at least two of A/K/Q".
func looksLikeHighLead(ours, lhoSuit, rhoSuit engine.Cards) bool {
	honors := 0
	for _, c := range ours.Cards() {
		if c.RankIndex() <= 2 {
			honors++
		}
	}
	return honors >= 2 && lhoSuit.Size() >= 3 && rhoSuit.Size() >= 3
}

// looksLikeBadLead approximates "our ace leading into RHO's king"
// or the reverse, without Q support.
func looksLikeBadLead(ours, rhoSuit engine.Cards) bool {
	top, ok := ours.Top()
	if !ok {
		return false
	}
	if top.RankIndex() != 0 && top.RankIndex() != 1 {
		return false
	}
	other := top.RankIndex() ^ 1 // Ace(0) <-> King(1)
	hasQ := false
	for _, c := range ours.Cards() {
		if c.RankIndex() == 2 {
			hasQ = true
		}
	}
	if hasQ {
		return false
	}
	for _, c := range rhoSuit.Cards() {
		if c.RankIndex() == other {
			return true
		}
	}
	return false
}

// lowestNonAceOf returns the lowest-ranked card in cards that is not
// an ace, for ruff-seeking leads.
func lowestNonAceOf(cards engine.Cards) (engine.Card, bool) {
	for _, c := range reverseCards(cards) {
		if c.RankIndex() != 0 {
			return c, true
		}
	}
	return engine.NoCard, false
}

// reverseCards returns cards.Cards() reversed (lowest rank first).
func reverseCards(cards engine.Cards) []engine.Card {
	in := cards.Cards()
	out := make([]engine.Card, len(in))
	for i, c := range in {
		out[len(in)-1-i] = c
	}
	return out
}
