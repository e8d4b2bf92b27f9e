package figgie

import "github.com/google/uuid"

// Order is a single order submitted by a player against one card's book.
// Orders with Price == 0 are meaningless ("no free lunches") and are
// dropped by the matchmaker before any book logic runs.
type Order struct {
	UUID      string
	Player    PlayerID
	Card      Card
	Direction Direction
	Price     int
}

// NewOrder stamps a fresh UUID onto an order. Players never need to set
// UUID themselves — it exists purely for trace correlation, not for
// matching semantics.
func NewOrder(player PlayerID, card Card, dir Direction, price int) Order {
	return Order{
		UUID:      uuid.NewString(),
		Player:    player,
		Card:      card,
		Direction: dir,
		Price:     price,
	}
}
