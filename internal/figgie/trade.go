package figgie

import (
	"time"

	"github.com/google/uuid"
)

// Trade is produced atomically by the matchmaker whenever an incoming
// order crosses the resting quote on the opposite side.
type Trade struct {
	UUID      string
	Card      Card
	Price     int
	Buyer     PlayerID
	Seller    PlayerID
	Timestamp time.Time
}

// NewTrade stamps a fresh UUID and timestamp onto a trade.
func NewTrade(card Card, price int, buyer, seller PlayerID) Trade {
	return Trade{
		UUID:      uuid.NewString(),
		Card:      card,
		Price:     price,
		Buyer:     buyer,
		Seller:    seller,
		Timestamp: time.Now(),
	}
}
