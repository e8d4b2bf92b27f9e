package matchmaker

import "github.com/saiputravu/figgie/internal/figgie"

// SettlementResult records one round's payout, mostly for logging and for
// tests to assert against without reaching into Matchmaker internals.
type SettlementResult struct {
	GoalSuit     figgie.Card
	GoalCards    map[figgie.PlayerID]int
	StipendPaid  map[figgie.PlayerID]int
	PotWinners   []figgie.PlayerID
	PotSplit     int
	PotRemainder int
}

// settle pays each player 10 points per held goal-suit card from the pot,
// then splits whatever remains evenly among the player(s) holding the
// strictly greatest count of the goal suit. Any indivisible remainder is
// forfeit.
func (m *Matchmaker) settle() SettlementResult {
	result := SettlementResult{
		GoalSuit:    m.goalSuit,
		GoalCards:   make(map[figgie.PlayerID]int, len(m.roster)),
		StipendPaid: make(map[figgie.PlayerID]int, len(m.roster)),
	}

	best := -1
	remaining := m.pot
	for _, player := range m.roster {
		goalCards := m.inventories[player].Get(m.goalSuit)
		result.GoalCards[player] = goalCards

		stipend := goalCards * 10
		m.points[player] += stipend
		remaining -= stipend
		result.StipendPaid[player] = stipend

		if goalCards > best {
			best = goalCards
			result.PotWinners = result.PotWinners[:0]
			result.PotWinners = append(result.PotWinners, player)
		} else if goalCards == best {
			result.PotWinners = append(result.PotWinners, player)
		}
	}

	split := 0
	if len(result.PotWinners) > 0 {
		split = remaining / len(result.PotWinners)
	}
	result.PotSplit = split
	result.PotRemainder = remaining - split*len(result.PotWinners)

	for _, winner := range result.PotWinners {
		m.points[winner] += split
	}

	m.log.Info().
		Str("goal_suit", m.goalSuit.String()).
		Int("pot", m.pot).
		Int("split", split).
		Int("winners", len(result.PotWinners)).
		Int("forfeit_remainder", result.PotRemainder).
		Msg("round settled")

	m.pot = 0
	return result
}

// Points returns a snapshot of every player's current points. Intended for
// tests and the trace sink, not for control flow.
func (m *Matchmaker) Points() map[figgie.PlayerID]int {
	out := make(map[figgie.PlayerID]int, len(m.points))
	for p, n := range m.points {
		out[p] = n
	}
	return out
}

// Inventories returns a snapshot of every player's current inventory.
func (m *Matchmaker) Inventories() map[figgie.PlayerID]figgie.Inventory {
	return m.snapshotInventories()
}

// Books returns a snapshot of all four books.
func (m *Matchmaker) Books() figgie.Books {
	return figgie.CloneBooks(m.books)
}

// Round returns the current round index.
func (m *Matchmaker) Round() uint32 { return m.round }

// CommonSuitValue and GoalSuitValue expose the round's secret suits, mostly for the
// trace sink; players never get direct access to the Matchmaker.
func (m *Matchmaker) CommonSuitValue() figgie.Card { return m.commonSuit }
func (m *Matchmaker) GoalSuitValue() figgie.Card   { return m.goalSuit }
