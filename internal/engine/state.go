package engine

// State is the play state threaded through the search: the current
// Hands (mutated by PlayCard/UnplayCard), the current depth, NS tricks
// won so far, and the per-trick scratch history the search needs to
// unwind a line of play. A solve owns exactly one State; it is never
// shared across solves.
type State struct {
	Hands Hands
	Trump Denomination

	// Depth is 0..4*TotalTricks. TrickIndex = Depth/4, CardInTrick =
	// Depth%4.
	Depth int

	// NSTricksWon is the number of completed tricks won by N or S.
	NSTricksWon int

	// TotalTricks is the number of tricks in the whole deal, fixed at
	// construction — equal to each hand's card count.
	TotalTricks int

	leader Seat // seat currently on lead (for the trick in progress, or the next one)

	played      [52]Card
	playedSeats [52]Seat
	trickLeader [13]Seat // leader[i] = who led trick i
}

// NewState builds the play state for a solve: the starting hands,
// trump denomination, and the seat on lead for the first trick.
func NewState(hands Hands, trump Denomination, leader Seat) *State {
	return &State{
		Hands:       hands,
		Trump:       trump,
		leader:      leader,
		TotalTricks: hands.NumTricks(),
	}
}

// TrickIndex returns the index (0-based) of the trick currently in
// progress (or about to start).
func (s *State) TrickIndex() int {
	return s.Depth / 4
}

// CardInTrick returns how many cards have been played in the current
// trick (0..3).
func (s *State) CardInTrick() int {
	return s.Depth % 4
}

// TricksRemaining returns the number of tricks, including the one in
// progress, that have not yet been completed.
func (s *State) TricksRemaining() int {
	return s.TotalTricks - s.TrickIndex()
}

// IsTerminal reports whether every trick has been played.
func (s *State) IsTerminal() bool {
	return s.Depth >= 4*s.TotalTricks
}

// ActiveSeat returns the seat to play next.
func (s *State) ActiveSeat() Seat {
	return Seat((int(s.leader) + s.CardInTrick()) % 4)
}

// Leader returns the seat that led (or will lead) the current trick.
func (s *State) Leader() Seat {
	return s.leader
}

// CurrentTrick returns a read-only view of the cards played so far in
// the trick in progress.
func (s *State) CurrentTrick() Trick {
	start := s.TrickIndex() * 4
	n := s.CardInTrick()
	plays := make([]Play, n)
	for i := 0; i < n; i++ {
		plays[i] = Play{Seat: s.playedSeats[start+i], Card: s.played[start+i]}
	}
	return Trick{plays: plays, trump: s.Trump}
}

// LegalPlays returns the cards the active seat may play: any card
// when leading, otherwise the lead suit if held, else any card.
func (s *State) LegalPlays() Cards {
	hand := s.Hands.Hand(s.ActiveSeat())
	if s.CardInTrick() == 0 {
		return hand
	}
	leadSuit := s.played[s.TrickIndex()*4].Suit()
	inSuit := hand.Suit(leadSuit)
	if !inSuit.IsEmpty() {
		return inSuit
	}
	return hand
}

// PlayCard plays card c for the active seat: removes it from that
// seat's hand, records it in the trick history, and — if it completes
// a trick — rolls the leader forward and credits NSTricksWon.
func (s *State) PlayCard(c Card) {
	seat := s.ActiveSeat()
	idx := s.Depth
	s.played[idx] = c
	s.playedSeats[idx] = seat
	s.Hands[seat] = s.Hands[seat].Remove(c)

	if s.CardInTrick() == 0 {
		s.trickLeader[s.TrickIndex()] = s.leader
	}
	s.Depth++
	if s.CardInTrick() == 0 {
		completed := s.TrickIndex() - 1
		winner := s.trickWinnerAt(completed)
		s.leader = winner
		if IsNS(winner) {
			s.NSTricksWon++
		}
	}
}

// UnplayCard reverses the most recent PlayCard: restores the card to
// its seat's hand and, if it had completed a trick, restores the
// pre-trick leader and NS trick count.
func (s *State) UnplayCard() {
	s.Depth--
	idx := s.Depth
	c := s.played[idx]
	seat := s.playedSeats[idx]
	s.Hands[seat] = s.Hands[seat].Add(c)

	if idx%4 == 3 {
		completed := idx / 4
		if IsNS(s.leader) {
			s.NSTricksWon--
		}
		s.leader = s.trickLeader[completed]
	}
}

// trickWinnerAt folds the four plays of a completed trick into the
// winning seat.
func (s *State) trickWinnerAt(trickIdx int) Seat {
	start := trickIdx * 4
	var plays [4]Play
	for i := 0; i < 4; i++ {
		plays[i] = Play{Seat: s.playedSeats[start+i], Card: s.played[start+i]}
	}
	return trickWinner(plays, s.Trump)
}
