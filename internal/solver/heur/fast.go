// Package heur implements the fast-trick and slow-trick bounds used to
// prune the alpha-beta search at trick boundaries. Neither bound is
// ever treated as exact — both only tighten or widen the search
// window.
//
// Shaped after internal/ai/rule_based/bidding.go (the winner-counting
// shape of BiddingEvaluator) and internal/ai/strategy.go (analyzeHand's
// honor-pattern detection), generalized from a single bidding score
// into a per-suit trick count.
package heur

import "github.com/bran/bridgesolve/internal/engine"

// FastTricks estimates the number of tricks the side to play can cash
// immediately, without ever losing the lead, bounded by the tricks
// still remaining.
//
// Counted from both hands' perspective: myTricks assumes the active
// seat cashes first, pdTricks assumes partner does. If partner has an
// entry to overtake the active seat's cards (pdEntry), partner could
// instead take the lead and run their own suits, so the guaranteed
// total is whichever line cashes more.
func FastTricks(s *engine.State) int {
	active := s.ActiveSeat()
	partner := engine.Partner(active)
	suits := [4]engine.Suit{engine.Spades, engine.Hearts, engine.Diamonds, engine.Clubs}

	var myTricks, pdTricks int
	var myEntry, pdEntry bool
	for _, suit := range suits {
		if s.Trump.IsTrump() && suit == s.Trump.Suit() {
			continue // trump-suit tricks are not counted by this bound
		}
		mySuit := s.Hands.Hand(active).Suit(suit)
		pdSuit := s.Hands.Hand(partner).Suit(suit)
		if mySuit.IsEmpty() && pdSuit.IsEmpty() {
			continue
		}
		allSuit := s.Hands.AllCards().Suit(suit)
		myWinners, pdWinners := topRunOwners(allSuit, mySuit, pdSuit)

		var suitMyEntry, suitPdEntry bool
		my := suitFastTricks(mySuit, myWinners, pdSuit, pdWinners, &suitMyEntry)
		pd := suitFastTricks(pdSuit, pdWinners, mySuit, myWinners, &suitPdEntry)
		for _, opp := range [2]engine.Seat{engine.LeftHandOpp(active), engine.RightHandOpp(active)} {
			// An opponent still holding a trump ruffs once out of the suit.
			if oppHand := s.Hands.Hand(opp); s.Trump.IsTrump() && !oppHand.Suit(s.Trump.Suit()).IsEmpty() {
				safe := oppHand.Suit(suit).Size()
				my, pd = min(my, safe), min(pd, safe)
				suitMyEntry, suitPdEntry = suitMyEntry && safe > 0, suitPdEntry && safe > 0
			}
		}
		myTricks, pdTricks = myTricks+my, pdTricks+pd
		myEntry, pdEntry = myEntry || suitMyEntry, pdEntry || suitPdEntry
	}

	total := myTricks
	if pdEntry && pdTricks > total {
		total = pdTricks
	}
	if total > s.TricksRemaining() {
		total = s.TricksRemaining()
	}
	return total
}

// suitFastTricks counts one suit's guaranteed winners for the hand
// holding mySuit, properly handling entries and blocking against the
// partnership's other hand (pdSuit). entry is set when mySuit's top
// winner can overtake pdSuit's bottom card — i.e. this hand has an
// entry to take the lead away from the other hand.
func suitFastTricks(mySuit engine.Cards, myWinners int, pdSuit engine.Cards, pdWinners int, entry *bool) int {
	if !pdSuit.IsEmpty() && myWinners > 0 {
		myTop, _ := mySuit.Top()
		pdBottom, _ := pdSuit.Bottom()
		if engine.HigherRank(myTop, pdBottom) {
			*entry = true
		}
	}

	switch {
	case pdWinners == 0:
		return myWinners
	case myWinners == 0:
		if mySuit.IsEmpty() {
			return 0
		}
		return pdWinners
	case blockedByPartner(mySuit, pdSuit):
		return pdWinners
	case blockedByUs(mySuit, pdSuit):
		return myWinners
	default:
		effective := pdWinners
		if !hasSmallCard(pdSuit, pdWinners) {
			effective--
		}
		total := myWinners + effective
		if total > mySuit.Size() {
			total = mySuit.Size()
		}
		if total < 0 {
			total = 0
		}
		return total
	}
}

// topRunOwners walks allSuit from the top, attributing consecutive top
// cards to whichever of my/partner's hand holds them, until a card
// held by neither (an opponent's) breaks the run.
func topRunOwners(allSuit, mySuit, pdSuit engine.Cards) (myWinners, pdWinners int) {
	for _, c := range allSuit.Cards() {
		switch {
		case mySuit.Has(c):
			myWinners++
		case pdSuit.Has(c):
			pdWinners++
		default:
			return
		}
	}
	return
}

// blockedByPartner: our highest card ranks below partner's lowest.
func blockedByPartner(mySuit, pdSuit engine.Cards) bool {
	if mySuit.IsEmpty() || pdSuit.IsEmpty() {
		return false
	}
	myTop, _ := mySuit.Top()
	pdBottom, _ := pdSuit.Bottom()
	return myTop > pdBottom
}

// blockedByUs: our lowest card ranks above partner's highest.
func blockedByUs(mySuit, pdSuit engine.Cards) bool {
	if mySuit.IsEmpty() || pdSuit.IsEmpty() {
		return false
	}
	myBottom, _ := mySuit.Bottom()
	pdTop, _ := pdSuit.Top()
	return myBottom < pdTop
}

// hasSmallCard reports whether pdSuit holds at least one card below
// its top n winners (a transport card to hand over the lead).
func hasSmallCard(pdSuit engine.Cards, winners int) bool {
	return pdSuit.Size() > winners
}
