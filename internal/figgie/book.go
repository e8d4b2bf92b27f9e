package figgie

// Quote is a single resting order on one side of a Book. A nil Owner means
// the slot is empty (the "None" sentinel of the original design, modeled
// here as an optional value rather than as a variant of PlayerID).
type Quote struct {
	Price int
	Owner *PlayerID
}

// Empty reports whether the quote has no resting order.
func (q Quote) Empty() bool {
	return q.Owner == nil
}

func ownedBy(p PlayerID) *PlayerID {
	return &p
}

// emptyBid and emptyAsk are the sentinel values a Book resets to: any
// legal strictly-positive price improves one side.
func emptyBid() Quote  { return Quote{Price: 0} }
func emptyAsk() Quote  { return Quote{Price: 99} }

// Book is the single-level order book for one card: at most one resting
// bid and one resting ask, plus the last price that traded on it.
type Book struct {
	Bid            Quote
	Ask            Quote
	LastTradePrice *int
}

// NewBook returns a book at rest: empty bid/ask sentinels, no trade history.
func NewBook() Book {
	return Book{Bid: emptyBid(), Ask: emptyAsk()}
}

// ResetQuotes restores both sides to the empty sentinel. LastTradePrice is
// left untouched — a reset clears resting interest, not trade history.
func (b *Book) ResetQuotes() {
	b.Bid = emptyBid()
	b.Ask = emptyAsk()
}

// RecordTrade stamps the book's last trade price.
func (b *Book) RecordTrade(price int) {
	p := price
	b.LastTradePrice = &p
}

// Clone returns an independent copy of the book, safe for a consumer to
// read without racing the matchmaker's next mutation.
func (b Book) Clone() Book {
	out := b
	if b.Bid.Owner != nil {
		out.Bid.Owner = ownedBy(*b.Bid.Owner)
	}
	if b.Ask.Owner != nil {
		out.Ask.Owner = ownedBy(*b.Ask.Owner)
	}
	if b.LastTradePrice != nil {
		p := *b.LastTradePrice
		out.LastTradePrice = &p
	}
	return out
}

// Books is a snapshot of all four per-card books, as carried on an Update
// event.
type Books map[Card]Book

// CloneBooks deep-copies a Books snapshot.
func CloneBooks(books Books) Books {
	out := make(Books, len(books))
	for c, b := range books {
		out[c] = b.Clone()
	}
	return out
}
