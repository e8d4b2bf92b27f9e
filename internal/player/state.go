package player

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/saiputravu/figgie/internal/figgie"
)

// RoundBudget is the wall-clock duration strategies assume a round lasts
// when ramping time-sensitive behavior (Seller's descending target price,
// Spread's late-round buy refusal, TiltInventory's final dump). It is a
// strategy-side pacing constant, independent of the Matchmaker's actual
// trading window — see SPEC_FULL.md §12 for why the two are allowed to
// diverge.
const RoundBudget = 240 * time.Second

// mirror is the player-private copy of game state, kept current by the
// listener goroutine and read by whichever goroutine invokes the
// strategy. All fields are guarded by mu except trading, which strategies
// and the listener both need to read/write without contending on mu.
type mirror struct {
	mu         sync.Mutex
	round      uint32
	inventory  figgie.Inventory
	books      figgie.Books
	lastTrade  *figgie.Trade
	roundStart time.Time

	trading atomic.Bool
}

func newMirror() *mirror {
	return &mirror{
		inventory: figgie.NewInventory(),
		books:     make(figgie.Books, len(figgie.Suits)),
	}
}

func (m *mirror) applyDealCards(self figgie.PlayerID, ev figgie.DealCardsEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inv, ok := ev.Inventories[self]; ok {
		m.inventory = inv.Clone()
	}
	m.round = ev.Round
	m.roundStart = time.Now()
	m.trading.Store(true)
}

// applyUpdate mirrors the books and, if this player was on one side of the
// trade, applies the matching ±1 inventory delta. The delta must always
// agree with the Matchmaker's own bookkeeping; a mismatch here would mean
// the two have diverged, which Change reports as an error rather than
// silently going negative.
func (m *mirror) applyUpdate(self figgie.PlayerID, ev figgie.UpdateEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books = ev.Books
	if ev.Trade == nil {
		return nil
	}
	m.lastTrade = ev.Trade
	switch self {
	case ev.Trade.Buyer:
		return m.inventory.Change(ev.Trade.Card, 1)
	case ev.Trade.Seller:
		return m.inventory.Change(ev.Trade.Card, -1)
	}
	return nil
}

func (m *mirror) applyEndRound() {
	m.trading.Store(false)
}

func (m *mirror) snapshot(self figgie.PlayerID) View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return View{
		Self:        self,
		Round:       m.round,
		Inventory:   m.inventory.Clone(),
		Books:       figgie.CloneBooks(m.books),
		LastTrade:   m.lastTrade,
		Trading:     m.trading.Load(),
		SecondsLeft: secondsLeft(m.roundStart, RoundBudget),
	}
}
