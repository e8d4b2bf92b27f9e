package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// Seller, for every suit it still holds, sells into the resting bid once
// that bid reaches a market price and posts a limit sell, ratcheting both
// prices down as the round's time budget runs out. It does not undercut
// the resting ask. Grounded on GenericPlayer::sell_inventory.
type Seller struct{}

func NewSeller() *Seller { return &Seller{} }

func (s *Seller) Name() string { return "Seller" }

func (s *Seller) Tick(view player.View, emit player.Emit) {
	for _, card := range figgie.Suits {
		held := view.Inventory.Get(card)
		if held <= 0 {
			continue
		}
		book := bookFor(view.Books, card)

		market, limit := 3, 4
		switch {
		case view.SecondsLeft >= 180:
			market, limit = 6, 8
		case view.SecondsLeft > 120:
			market, limit = 5, 6
		case view.SecondsLeft > 60:
			market, limit = 4, 6
		}

		if !book.Bid.Empty() && book.Bid.Price >= market && !ownedBySelf(book.Bid, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Bid.Price))
		}
		emit(figgie.NewOrder(view.Self, card, figgie.Sell, limit))
	}
}
