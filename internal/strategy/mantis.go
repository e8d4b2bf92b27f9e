package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// PrayingMantis waits. It sells off expensive-looking inventory early
// (while the ask is still rich), then in the round's final 60 seconds
// snipes the single suit with the highest LastTradePrice across all four
// books, on the assumption the market has by then revealed the goal
// suit. Grounded on GenericPlayer::praying_mantis_sell/_snipe.
type PrayingMantis struct{}

func NewPrayingMantis() *PrayingMantis { return &PrayingMantis{} }

func (s *PrayingMantis) Name() string { return "PrayingMantis" }

func (s *PrayingMantis) Tick(view player.View, emit player.Emit) {
	if view.SecondsLeft >= 60 {
		for _, card := range figgie.Suits {
			held := view.Inventory.Get(card)
			if held <= 0 {
				continue
			}
			book := bookFor(view.Books, card)
			if !book.Ask.Empty() && book.Ask.Price >= 7 && !ownedBySelf(book.Ask, view.Self) {
				emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Ask.Price-1))
			}
		}
		return
	}

	richest := figgie.Suits[0]
	best := -1
	for _, card := range figgie.Suits {
		book := bookFor(view.Books, card)
		if book.LastTradePrice == nil {
			continue
		}
		if *book.LastTradePrice > best {
			best = *book.LastTradePrice
			richest = card
		}
	}
	if best < 0 {
		return
	}
	book := bookFor(view.Books, richest)
	if !book.Ask.Empty() && book.Ask.Price <= 9 && !ownedBySelf(book.Ask, view.Self) {
		emit(figgie.NewOrder(view.Self, richest, figgie.Buy, book.Ask.Price))
	}
}
