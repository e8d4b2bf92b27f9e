package strategy

import (
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/player"
)

// TiltInventory infers a believed goal suit from the deal itself: the suit
// it was dealt the least of is assumed to be the common suit, so its
// same-color partner is the believed goal suit. It aggressively sells
// every other suit (undercutting the ask, or dumping at 1 in the final
// 30s) and posts a rising bid on the believed goal suit.
//
// Grounded on TiltInventory::start in tilt.rs. The original computes
// card.get_goal_suit() and then discards it, storing the least-held
// card itself as "highest_card" and trading that suit directly — a bug
// carried from an earlier revision. This implementation stores the
// derived partner suit instead, matching the documented intent.
type TiltInventory struct {
	believedGoal *figgie.Card
	round        uint32
}

func NewTiltInventory() *TiltInventory { return &TiltInventory{} }

func (s *TiltInventory) Name() string { return "TiltInventory" }

func (s *TiltInventory) Tick(view player.View, emit player.Emit) {
	if s.believedGoal == nil || view.Round != s.round {
		s.round = view.Round
		least := figgie.Suits[0]
		for _, c := range figgie.Suits[1:] {
			if view.Inventory.Get(c) < view.Inventory.Get(least) {
				least = c
			}
		}
		partner := least.PartnerSuit()
		s.believedGoal = &partner
	}
	goal := *s.believedGoal

	for _, card := range figgie.Suits {
		if card == goal {
			continue
		}
		held := view.Inventory.Get(card)
		if held <= 0 {
			continue
		}
		book := bookFor(view.Books, card)
		if view.SecondsLeft > 30 {
			if !book.Ask.Empty() && book.Ask.Price > 4 && !ownedBySelf(book.Ask, view.Self) {
				emit(figgie.NewOrder(view.Self, card, figgie.Sell, book.Ask.Price-1))
			}
		} else if !book.Ask.Empty() && !ownedBySelf(book.Ask, view.Self) {
			emit(figgie.NewOrder(view.Self, card, figgie.Sell, 1))
		}
	}

	book := bookFor(view.Books, goal)
	if book.Bid.Price < 8 && !ownedBySelf(book.Bid, view.Self) {
		emit(figgie.NewOrder(view.Self, goal, figgie.Buy, book.Bid.Price+1))
	}
}
