package heur

import "github.com/bran/bridgesolve/internal/engine"

// SlowTricks estimates a lower bound on the tricks the defense (the
// side *not* to play) is guaranteed to win eventually. It is
// deliberately sound but incomplete: every pattern it recognizes is a
// real guaranteed trick, but not every guaranteed trick is recognized.
// The alpha-beta search, never this estimate, is the final authority
// on the exact result.
func SlowTricks(s *engine.State) int {
	if !s.Trump.IsTrump() {
		return slowTricksNoTrump(s)
	}
	return slowTricksTrump(s)
}

// slowTricksNoTrump applies the no-trump rule: a suit where the
// defense holds the top card of all_suit contributes at least one
// trick; if the defense's top cards are concentrated in one hand, all
// of them count, otherwise only one is guaranteed. If the side to play
// holds the top card of any suit, no slow trick is counted at all.
func slowTricksNoTrump(s *engine.State) int {
	active := s.ActiveSeat()
	defenders := [2]engine.Seat{engine.LeftHandOpp(active), engine.RightHandOpp(active)}
	suits := [4]engine.Suit{engine.Spades, engine.Hearts, engine.Diamonds, engine.Clubs}

	concentratedIn := map[engine.Seat]int{}
	scattered := 0
	for _, suit := range suits {
		allSuit := s.Hands.AllCards().Suit(suit)
		top, ok := allSuit.Top()
		if !ok {
			continue
		}
		if s.Hands.Hand(active).Has(top) || s.Hands.Hand(engine.Partner(active)).Has(top) {
			return 0 // the side to play controls this suit's top card
		}
		owner := defenders[0]
		if !s.Hands.Hand(owner).Has(top) {
			owner = defenders[1]
		}
		concentratedIn[owner]++
		scattered++
	}
	if scattered == 0 {
		return 0
	}
	for _, n := range concentratedIn {
		if n == scattered {
			return n // every top card sits in the one hand: all of them cash
		}
	}
	return 1
}

// slowTricksTrump recognizes four protected-honor patterns for trump
// contracts, returning the count of patterns recognized.
func slowTricksTrump(s *engine.State) int {
	active := s.ActiveSeat()
	partner := engine.Partner(active)
	lho := engine.LeftHandOpp(active)
	rho := engine.RightHandOpp(active)
	trump := s.Trump.Suit()

	count := 0
	pdTrump := s.Hands.Hand(partner).Suit(trump)
	lhoTrump := s.Hands.Hand(lho).Suit(trump)
	myTrump := s.Hands.Hand(active).Suit(trump)
	rhoTrump := s.Hands.Hand(rho).Suit(trump)

	// Partner has K-with-companion in trumps, LHO holds the bare ace behind.
	if hasKingWithCompanion(pdTrump) && isBareAce(lhoTrump) {
		count++
	}
	// We hold K-with-companion behind RHO's ace, and we're not on lead
	// (or enough tricks remain to surrender tempo).
	if hasKingWithCompanion(myTrump) && isBareAce(rhoTrump) && (s.ActiveSeat() != s.Leader() || s.TricksRemaining() > 2) {
		count++
	}
	// KQ against a bare ace, with at least one of K/Q in our partnership;
	// counted only when neither pattern above already counted that ace.
	if count == 0 && (kqAgainstBareAce(myTrump, pdTrump, lhoTrump) || kqAgainstBareAce(myTrump, pdTrump, rhoTrump)) {
		count++
	}
	// Qxx (3+) behind AK, trump count large enough to force the queen home.
	if queenThirdBehindAK(myTrump, pdTrump, lhoTrump, rhoTrump) {
		count++
	}
	return count
}

func hasKingWithCompanion(cards engine.Cards) bool {
	return cards.Size() >= 2 && cards.Has(engine.NewCard(cards.SuitsPresent()[0], 1))
}

func isBareAce(cards engine.Cards) bool {
	if cards.Size() != 1 {
		return false
	}
	top, _ := cards.Top()
	return top.RankIndex() == 0
}

func kqAgainstBareAce(mine, partners, opp engine.Cards) bool {
	combined := mine.Union(partners)
	hasK := false
	hasQ := false
	for _, c := range combined.Cards() {
		if c.RankIndex() == 1 {
			hasK = true
		}
		if c.RankIndex() == 2 {
			hasQ = true
		}
	}
	return hasK && hasQ && isBareAce(opp)
}

func queenThirdBehindAK(mine, partners, lho, rho engine.Cards) bool {
	combined := mine.Union(partners)
	hasA, hasK, hasQ := false, false, false
	for _, c := range combined.Cards() {
		switch c.RankIndex() {
		case 0:
			hasA = true
		case 1:
			hasK = true
		case 2:
			hasQ = true
		}
	}
	if !hasA || !hasK || hasQ {
		return false
	}
	// The defense's queen is a guaranteed trick only if it has two
	// companions to ride with it (Qxx or longer) and we have enough
	// trump length in hand to eventually force it out.
	defenderQ := lho.Size() >= 3 && lho.Has(queenOf(lho)) || rho.Size() >= 3 && rho.Has(queenOf(rho))
	return defenderQ && mine.Size()+partners.Size() >= 5
}

func queenOf(cards engine.Cards) engine.Card {
	for _, c := range cards.Cards() {
		if c.RankIndex() == 2 {
			return c
		}
	}
	return engine.NoCard
}
