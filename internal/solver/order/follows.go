package order

import "github.com/bran/bridgesolve/internal/engine"

// OrderFollows returns the active seat's legal cards, already
// restricted to the lead suit by s.LegalPlays() when the seat can
// follow, ordered by the follow-suit heuristics: ducking when we
// cannot or needn't beat the current winner, otherwise trying winners
// before losers. When the seat cannot follow suit, ruffing and
// discard ordering apply instead.
func OrderFollows(s *engine.State) []engine.Card {
	legal := s.LegalPlays()
	trick := s.CurrentTrick()
	leadSuit, hasLead := trick.LeadSuit()
	if !hasLead {
		return OrderLeads(s)
	}

	active := s.ActiveSeat()
	partner := engine.Partner(active)
	winningPlay, hasWinner := trick.WinningPlay()

	inSuit := legal.Suit(leadSuit)
	if !inSuit.IsEmpty() {
		return orderFollowSuit(s, inSuit, winningPlay, hasWinner, partner == winningPlay.Seat, leadSuit)
	}

	trumpSuit := s.Trump
	if trumpSuit.IsTrump() {
		trumps := legal.Suit(trumpSuit.Suit())
		if !trumps.IsEmpty() {
			return orderTrumpOrDiscard(s, trumps, legal.Diff(trumps), winningPlay, hasWinner, partner == winningPlay.Seat, leadSuit)
		}
	}
	return orderDiscard(s, legal)
}

// orderFollowSuit ranks a follow-suit decision: duck when partner
// already holds the trick safely or we can't beat the winner, else
// try winners high-to-low ahead of losers.
func orderFollowSuit(s *engine.State, options engine.Cards, winning engine.Play, hasWinner bool, partnerWinning bool, leadSuit engine.Suit) []engine.Card {
	lowToHigh := reverseCards(options)

	if !hasWinner {
		return lowToHigh
	}
	if partnerWinning && partnerHoldSurvives(s, winning, leadSuit) {
		return lowToHigh
	}

	var beaters, losers engine.Cards
	for _, c := range options.Cards() {
		if engine.WinsOver(winning.Card, c, s.Trump, leadSuit) {
			beaters = beaters.Add(c)
		} else {
			losers = losers.Add(c)
		}
	}
	if beaters.IsEmpty() {
		return lowToHigh
	}

	out := make([]engine.Card, 0, options.Size())
	if partnerWinning {
		// Partner is winning but might be overtaken later: duck first,
		// only overtake as a last resort, cheapest winner first.
		out = append(out, reverseCards(losers)...)
		out = append(out, reverseCards(beaters)...)
		return out
	}
	// Try winning cards high-to-low, then losing cards low-to-high.
	out = append(out, beaters.Cards()...)
	out = append(out, reverseCards(losers)...)
	return out
}

// partnerHoldSurvives is a conservative approximation of "partner's
// winning card will survive": true once every other seat has played,
// or when partner's card already outranks everything else outstanding
// in the suit.
func partnerHoldSurvives(s *engine.State, winning engine.Play, leadSuit engine.Suit) bool {
	trick := s.CurrentTrick()
	if trick.Size() == 3 {
		return true
	}
	outstanding := s.Hands.AllCards().Suit(leadSuit)
	top, ok := outstanding.Top()
	return !ok || top == winning.Card || engine.HigherRank(winning.Card, top)
}

// orderTrumpOrDiscard ranks the void-in-suit branch. When partner is
// winning, or no card is winning yet, trumps come first low-to-high.
// Otherwise the lowest trump that beats the winner comes first, then
// the other winning trumps low-to-high, then the non-winning trumps
// low-to-high, then the discards. Overruff risk from the seats still to
// play is not considered, and trumps are never tried high-to-low.
func orderTrumpOrDiscard(s *engine.State, trumps, rest engine.Cards, winning engine.Play, hasWinner, partnerWinning bool, leadSuit engine.Suit) []engine.Card {
	if partnerWinning {
		return append(reverseCards(trumps), reverseCards(rest)...)
	}
	if !hasWinner {
		return append(reverseCards(trumps), orderDiscard(s, rest)...)
	}

	var beaters engine.Cards
	for _, c := range trumps.Cards() {
		if engine.WinsOver(winning.Card, c, s.Trump, leadSuit) {
			beaters = beaters.Add(c)
		}
	}
	if !beaters.IsEmpty() {
		lowest, _ := beaters.Bottom()
		out := []engine.Card{lowest}
		for _, c := range reverseCards(beaters) {
			if c != lowest {
				out = append(out, c)
			}
		}
		out = append(out, reverseCards(trumps.Diff(beaters))...)
		return append(out, orderDiscard(s, rest)...)
	}
	return append(reverseCards(trumps), orderDiscard(s, rest)...)
}

// orderDiscard ranks a discard decision: the bottom card of each
// non-trump suit we still hold, suits ordered longest-first (stable),
// then every other card in descending order.
func orderDiscard(s *engine.State, options engine.Cards) []engine.Card {
	active := s.ActiveSeat()
	hand := s.Hands.Hand(active)

	type suitLen struct {
		suit engine.Suit
		n    int
	}
	var present []suitLen
	for _, suit := range hand.SuitsPresent() {
		if s.Trump.IsTrump() && suit == s.Trump.Suit() {
			continue
		}
		present = append(present, suitLen{suit, hand.Suit(suit).Size()})
	}
	// stable longest-first
	for i := 1; i < len(present); i++ {
		for j := i; j > 0 && present[j].n > present[j-1].n; j-- {
			present[j], present[j-1] = present[j-1], present[j]
		}
	}

	var chosen engine.Cards
	out := make([]engine.Card, 0, options.Size())
	for _, sl := range present {
		suitCards := options.Suit(sl.suit)
		if bottom, ok := suitCards.Bottom(); ok {
			out = append(out, bottom)
			chosen = chosen.Add(bottom)
		}
	}
	for _, c := range options.Cards() {
		if !chosen.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
