package figgie

import "fmt"

// Inventory is a player's per-suit card count. The zero value is an empty
// inventory and is always safe to use.
type Inventory map[Card]int

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return make(Inventory, len(Suits))
}

// Count tallies a dealt hand of cards into the inventory.
func (inv Inventory) Count(cards []Card) {
	for _, c := range cards {
		inv[c]++
	}
}

// Get returns the held count of card, defaulting to zero.
func (inv Inventory) Get(card Card) int {
	return inv[card]
}

// Change applies a signed delta to a card's count. It refuses to drive the
// count negative: the two "change" shapes that existed in earlier
// revisions of this simulator (a bool add/remove form, and an unchecked
// signed-delta form) collapse into this single checked form.
func (inv Inventory) Change(card Card, delta int) error {
	next := inv[card] + delta
	if next < 0 {
		return fmt.Errorf("figgie: inventory of %s would go negative (%d%+d)", card, inv[card], delta)
	}
	inv[card] = next
	return nil
}

// Clone returns an independent copy, safe to hand to a consumer that will
// mutate its own view of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for c, n := range inv {
		out[c] = n
	}
	return out
}

// Total sums the held count across all suits.
func (inv Inventory) Total() int {
	total := 0
	for _, c := range Suits {
		total += inv[c]
	}
	return total
}
