package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// PickOff is the reactive reference strategy: it reacts inline to every
// Update, aggressing a resting ask when it is "cheap" by a threshold that
// ramps down as the round's time budget runs out, and, on any suit it
// holds, undercuts a resting ask priced above 5 by one. Grounded on
// EventDrivenPlayer::pick_off.
type PickOff struct{}

func NewPickOff() *PickOff { return &PickOff{} }

func (s *PickOff) Name() string { return "PickOff" }

func maxPickOffPrice(secondsLeft float64) int {
	switch {
	case secondsLeft < 20:
		return 0
	case secondsLeft < 40:
		return 1
	case secondsLeft < 60:
		return 2
	case secondsLeft < 120:
		return 3
	default:
		return 4
	}
}

func (s *PickOff) React(view player.View, emit player.Emit) {
	if !view.Trading {
		return
	}
	threshold := maxPickOffPrice(view.SecondsLeft)

	for _, card := range figgie.Suits {
		held := view.Inventory.Get(card)
		book := bookFor(view.Books, card)

		if held <= 2 && !book.Ask.Empty() && book.Ask.Price < threshold && !ownedBySelf(book.Ask, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Buy, book.Ask.Price))
		}
		if held > 0 && !book.Ask.Empty() && book.Ask.Price > 5 && !ownedBySelf(book.Ask, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Ask.Price-1))
		}
	}
}
