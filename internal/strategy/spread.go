package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// Spread bids on every card and offers every card it holds, skewing the width by
// whether its own inventory of that card sits above or below its own
// average holding, and refrains from buying in the final 20 seconds.
// Grounded on GenericPlayer::provide_spread.
type Spread struct{}

func NewSpread() *Spread { return &Spread{} }

func (s *Spread) Name() string { return "Spread" }

func (s *Spread) Tick(view player.View, emit player.Emit) {
	avg := view.Inventory.Total() / len(figgie.Suits)

	for _, card := range figgie.Suits {
		held := view.Inventory.Get(card)
		book := bookFor(view.Books, card)
		aboveAvg := held > avg

		if held > 0 {
			if book.LastTradePrice != nil {
				if aboveAvg {
					emit(figgie.NewOrder(view.Self, card, figgie.Sell, *book.LastTradePrice+1))
				} else {
					emit(figgie.NewOrder(view.Self, card, figgie.Sell, *book.LastTradePrice+2))
				}
			} else if book.Ask.Price > 7 {
				if aboveAvg {
					emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Ask.Price-2))
				} else {
					emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Ask.Price-1))
				}
			}
		}

		if view.SecondsLeft <= 20 {
			continue // flow turns toxic near the end; refrain from buying
		}
		if book.LastTradePrice != nil {
			last := *book.LastTradePrice
			if last > 2 {
				if aboveAvg {
					emit(figgie.NewOrder(view.Self, card, figgie.Buy, last-2))
				} else {
					emit(figgie.NewOrder(view.Self, card, figgie.Buy, last-1))
				}
			} else {
				emit(figgie.NewOrder(view.Self, card, figgie.Buy, 1))
			}
		} else if book.Bid.Price < 7 {
			if aboveAvg {
				emit(figgie.NewOrder(view.Self, card, figgie.Buy, book.Bid.Price+1))
			} else {
				emit(figgie.NewOrder(view.Self, card, figgie.Buy, book.Bid.Price+2))
			}
		}
	}
}
