package matchmaker

import "github.com/saiputravu/figgie/internal/figgie"

// pickCommonSuit chooses a fresh common suit uniformly at random and
// derives the goal suit as its same-color partner.
func (m *Matchmaker) pickCommonSuit() {
	m.commonSuit = figgie.Suits[m.rng.Intn(len(figgie.Suits))]
	m.goalSuit = m.commonSuit.PartnerSuit()
}

// buildDeck assembles the 40-card deck for the current common suit: 12 of
// the common suit, and of the three remaining suits, exactly one dealt 8
// and the other two dealt 10 each. The 8-count suit is drawn uniformly at
// random from the two remaining suits that are not the goal suit, so the
// goal suit is always dealt 10 (see SPEC_FULL.md §12, open question 1).
func (m *Matchmaker) buildDeck() []figgie.Card {
	deck := make([]figgie.Card, 0, 40)
	for i := 0; i < 12; i++ {
		deck = append(deck, m.commonSuit)
	}

	others := m.commonSuit.OtherSuits()
	candidates := make([]figgie.Card, 0, len(others))
	for _, suit := range others {
		if suit != m.goalSuit {
			candidates = append(candidates, suit)
		}
	}
	eightSuit := candidates[m.rng.Intn(len(candidates))]
	for _, suit := range others {
		count := 10
		if suit == eightSuit {
			count = 8
		}
		for i := 0; i < count; i++ {
			deck = append(deck, suit)
		}
	}

	m.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// dealInventories builds a fresh deck and deals it out in equal
// contiguous chunks to every player in roster order. Callers must have
// already validated that len(roster) divides 40.
func (m *Matchmaker) dealInventories() {
	deck := m.buildDeck()
	chunkSize := len(deck) / len(m.roster)

	for i, player := range m.roster {
		chunk := deck[i*chunkSize : (i+1)*chunkSize]
		inv := figgie.NewInventory()
		inv.Count(chunk)
		m.inventories[player] = inv
	}

	for _, c := range figgie.Suits {
		m.books[c] = figgie.NewBook()
	}
}
