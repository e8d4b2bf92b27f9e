package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// Hoarder tries to amass 6+ of every suit, on the theory that holding 6 of
// each guarantees a non-losing split regardless of which one turns out to
// be the goal suit. The aggressive-buy threshold tightens as the clock
// runs down: 7 -> 6 -> 4. Grounded on GenericPlayer::hoard.
type Hoarder struct{}

func NewHoarder() *Hoarder { return &Hoarder{} }

func (s *Hoarder) Name() string { return "Hoarder" }

func (s *Hoarder) Tick(view player.View, emit player.Emit) {
	for _, card := range figgie.Suits {
		held := view.Inventory.Get(card)
		if held >= 6 {
			continue
		}
		book := bookFor(view.Books, card)

		ceiling := 4
		switch {
		case view.SecondsLeft >= 120:
			ceiling = 7
		case view.SecondsLeft > 60:
			ceiling = 6
		}

		if !book.Ask.Empty() && book.Ask.Price <= ceiling && !ownedBySelf(book.Ask, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Buy, book.Ask.Price))
		} else if book.Bid.Price < ceiling && !ownedBySelf(book.Bid, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Buy, book.Bid.Price+1))
		}
	}
}
