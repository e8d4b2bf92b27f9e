package strategy

import (
	"math/rand"

	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// Noisy picks a uniformly random card and side on every tick and fires a
// uniform-price order, constrained only by simple inventory bounds.
// Grounded on GenericPlayer::noisy_trader.
type Noisy struct {
	rng *rand.Rand
}

func NewNoisy() *Noisy { return &Noisy{rng: newRand("noisy")} }

func (s *Noisy) Name() string { return "Noisy" }

func (s *Noisy) Tick(view player.View, emit player.Emit) {
	card := figgie.Suits[s.rng.Intn(len(figgie.Suits))]
	held := view.Inventory.Get(card)
	price := 1 + s.rng.Intn(14) // uniform in [1, 15)

	if s.rng.Intn(2) == 0 {
		if held < 4 {
			emit(figgie.NewOrder(view.Self, card, figgie.Buy, price))
		}
		return
	}
	if held > 0 {
		emit(figgie.NewOrder(view.Self, card, figgie.Sell, price))
	}
}
