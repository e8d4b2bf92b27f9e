// Package strategy collects the reference Player behaviors used to drive
// the simulator end to end: a mix of polling strategies (Noisy, Seller,
// Spread, TiltInventory, Hoarder, PrayingMantis) and one reactive strategy
// (PickOff). None of them is "correct" — they are behavioral fixtures
// that reproduce specific, observable trading patterns.
package strategy

import (
	"math/rand"
	"time"

	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// ownedBySelf reports whether q is resting and owned by self — strategies
// use this to avoid crossing their own resting quote.
func ownedBySelf(q figgie.Quote, self figgie.PlayerID) bool {
	return !q.Empty() && *q.Owner == self
}

func bookFor(books figgie.Books, card figgie.Card) figgie.Book {
	return books[card]
}

// newRand seeds an independent generator per strategy instance so that
// several players running the same strategy don't share a draw sequence.
func newRand(salt string) *rand.Rand {
	seed := time.Now().UnixNano()
	for _, r := range salt {
		seed = seed*31 + int64(r)
	}
	return rand.New(rand.NewSource(seed))
}

var _ player.PollingStrategy = (*Noisy)(nil)
var _ player.PollingStrategy = (*Seller)(nil)
var _ player.PollingStrategy = (*Spread)(nil)
var _ player.PollingStrategy = (*TiltInventory)(nil)
var _ player.PollingStrategy = (*Hoarder)(nil)
var _ player.PollingStrategy = (*PrayingMantis)(nil)
var _ player.ReactiveStrategy = (*PickOff)(nil)
