// Package bus implements the two message-passing primitives that connect
// the matchmaker to its players: an unbounded multi-producer
// single-consumer order queue, and a bounded single-producer
// multi-consumer broadcast of events.
package bus

import (
	"context"
	"sync"

	"github.com/saiputravu/figgie/internal/figgie"
)

// OrderBus is the MPSC channel players submit orders on. Any number of
// players may call Send; only the matchmaker calls Recv.
// It never blocks a sending player — Figgie strategies must be free to
// fire an order from inside an event callback without risking a
// deadlock against the matchmaker's own processing loop.
type OrderBus struct {
	mu     sync.Mutex
	queue  []figgie.Order
	notify chan struct{}
}

// NewOrderBus returns a ready-to-use order bus.
func NewOrderBus() *OrderBus {
	return &OrderBus{notify: make(chan struct{}, 1)}
}

// Send enqueues an order. It never blocks: the queue grows as needed,
// matching the "unbounded" MPSC guarantee in the bus design.
func (b *OrderBus) Send(order figgie.Order) {
	b.mu.Lock()
	b.queue = append(b.queue, order)
	b.mu.Unlock()

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Recv blocks until an order is available or ctx is done. Orders from a
// single producer are returned in FIFO order; interleaving across
// producers is arbitrary, matching the bus design's ordering guarantee.
func (b *OrderBus) Recv(ctx context.Context) (figgie.Order, bool) {
	for {
		if order, ok := b.pop(); ok {
			return order, true
		}
		select {
		case <-b.notify:
		case <-ctx.Done():
			return figgie.Order{}, false
		}
	}
}

func (b *OrderBus) pop() (figgie.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return figgie.Order{}, false
	}
	order := b.queue[0]
	b.queue = b.queue[1:]
	return order, true
}

// Drain discards every order currently queued, without processing them.
// The matchmaker calls this right after a trade resets all four books, so
// that stale orders issued against pre-trade quotes cannot execute
// against the just-reset book. It returns the number of orders dropped.
func (b *OrderBus) Drain() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(b.queue)
	b.queue = nil
	return n
}

// Len reports how many orders are currently queued. Intended for tests
// and diagnostics, not for control flow.
func (b *OrderBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}
