package matchmaker

import "github.com/saiputravu/figgie/internal/figgie"

// handleOrder applies the Figgie matching rule to a single incoming order:
// cross-test against the resting quote on the opposite side, execute at
// the resting price on a cross, otherwise improve the order's own side if
// it strictly beats the current quote. Ties never replace a resting quote.
func (m *Matchmaker) handleOrder(order figgie.Order) {
	if order.Price == 0 {
		m.log.Debug().Str("player", string(order.Player)).Msg("dropping zero-price order")
		return
	}

	book := m.books[order.Card]

	if order.Direction == figgie.Sell {
		if m.inventories[order.Player].Get(order.Card) < 1 {
			m.log.Info().Str("player", string(order.Player)).Str("card", order.Card.String()).
				Msg("rejecting sell order: insufficient inventory")
			return
		}
	}

	trade, rejected := m.cross(order, book)
	if rejected {
		return
	}

	if trade == nil {
		m.improve(order, &book)
		m.books[order.Card] = book
		m.broadcastUpdate(nil)
		return
	}

	m.applyTrade(*trade, order.Card)
	m.resetAllBooks()
	drained := m.orders.Drain()
	m.log.Info().
		Str("card", trade.Card.String()).
		Int("price", trade.Price).
		Str("buyer", string(trade.Buyer)).
		Str("seller", string(trade.Seller)).
		Int("drained_orders", drained).
		Msg("trade executed")
	m.broadcastUpdate(trade)
}

// cross checks whether order crosses the resting quote on the opposite
// side and, if so, builds the resulting Trade after verifying the buyer
// can actually afford the execution price. rejected is true when the
// cross would have gone through but the buyer's points would go negative;
// the order is dropped silently in that case, exactly like a sell without
// inventory.
func (m *Matchmaker) cross(order figgie.Order, book figgie.Book) (trade *figgie.Trade, rejected bool) {
	switch order.Direction {
	case figgie.Buy:
		if book.Ask.Empty() || order.Price < book.Ask.Price {
			return nil, false
		}
		price := book.Ask.Price
		seller := *book.Ask.Owner
		if m.points[order.Player] < price {
			m.log.Info().Str("player", string(order.Player)).Int("price", price).
				Msg("rejecting buy order: insufficient points to cover the cross")
			return nil, true
		}
		t := figgie.NewTrade(order.Card, price, order.Player, seller)
		return &t, false

	case figgie.Sell:
		if book.Bid.Empty() || order.Price > book.Bid.Price {
			return nil, false
		}
		price := book.Bid.Price
		buyer := *book.Bid.Owner
		if m.points[buyer] < price {
			m.log.Info().Str("player", string(buyer)).Int("price", price).
				Msg("rejecting sell order: resting buyer can no longer cover the cross")
			return nil, true
		}
		t := figgie.NewTrade(order.Card, price, buyer, order.Player)
		return &t, false
	}
	return nil, false
}

// improve replaces the resting quote on order's side iff order strictly
// beats it. Ties never replace — there is at most one resting order per
// side per book.
func (m *Matchmaker) improve(order figgie.Order, book *figgie.Book) {
	switch order.Direction {
	case figgie.Buy:
		if order.Price > book.Bid.Price {
			player := order.Player
			book.Bid = figgie.Quote{Price: order.Price, Owner: &player}
		}
	case figgie.Sell:
		if order.Price < book.Ask.Price {
			player := order.Player
			book.Ask = figgie.Quote{Price: order.Price, Owner: &player}
		}
	}
}

// applyTrade moves one unit of card and trade.Price points between buyer
// and seller. Both ledgers are authoritative state owned exclusively by
// the matchmaker.
func (m *Matchmaker) applyTrade(trade figgie.Trade, card figgie.Card) {
	buyerInv := m.inventories[trade.Buyer]
	sellerInv := m.inventories[trade.Seller]
	_ = buyerInv.Change(card, 1)
	_ = sellerInv.Change(card, -1)

	m.points[trade.Buyer] -= trade.Price
	m.points[trade.Seller] += trade.Price

	book := m.books[card]
	book.RecordTrade(trade.Price)
	m.books[card] = book
}

// resetAllBooks restores every book's bid/ask to the empty sentinel. Last
// trade prices are untouched except on the traded card, which
// applyTrade already stamped.
func (m *Matchmaker) resetAllBooks() {
	for _, c := range figgie.Suits {
		book := m.books[c]
		book.ResetQuotes()
		m.books[c] = book
	}
}

func (m *Matchmaker) broadcastUpdate(trade *figgie.Trade) {
	m.events.Broadcast(figgie.UpdateEvent{
		Books: figgie.CloneBooks(m.books),
		Trade: trade,
	})
}
