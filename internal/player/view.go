// Package player implements the two Player runtime shapes: a polling loop
// that mirrors events into shared state and wakes at a randomized cadence,
// and a reactive loop that invokes its strategy inline on every Update event.
// Both share the same state-mirroring and order-emission contract; only
// the scheduling differs.
package player

import (
	"time"

	"github.com/saiputravu/figgie/internal/figgie"
)

// View is the read-only snapshot a Strategy is handed. It is always a
// defensive copy: mutating it has no effect on the player's own state.
type View struct {
	Self       figgie.PlayerID
	Round      uint32
	Inventory  figgie.Inventory
	Books      figgie.Books
	LastTrade  *figgie.Trade
	Trading    bool
	SecondsLeft float64
}

// Emit is how a Strategy hands an order back to the runtime. The runtime
// enforces the "no orders while trading == false" contract; strategies
// need not check it themselves.
type Emit func(figgie.Order)

func secondsLeft(roundStart time.Time, budget time.Duration) float64 {
	if roundStart.IsZero() {
		return budget.Seconds()
	}
	left := budget - time.Since(roundStart)
	if left < 0 {
		return 0
	}
	return left.Seconds()
}
