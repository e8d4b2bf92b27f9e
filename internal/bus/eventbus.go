package bus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/saiputravu/figgie/internal/figgie"
)

// DefaultRingSize is the per-subscriber buffer depth for the event
// broadcast: the "bounded ring" the bus design calls for.
const DefaultRingSize = 100

// ErrLagged is returned by Subscription.Recv when the subscriber could not
// keep up and one or more broadcasts were dropped for it. The subscriber
// is not torn down — it simply skips ahead to the next event it manages
// to receive.
var ErrLagged = errors.New("bus: subscriber lagged and skipped ahead")

// EventBus is the single-producer, multi-consumer broadcast of Events from
// the matchmaker to every player. Each subscriber owns an independent,
// bounded channel; a slow subscriber never blocks the matchmaker's
// broadcast — the event is dropped for it and it is signalled a lag instead.
type EventBus struct {
	mu        sync.Mutex
	ringSize  int
	listeners map[*Subscription]struct{}
}

// NewEventBus returns a broadcaster with the given per-subscriber ring
// size. A size of zero falls back to DefaultRingSize.
func NewEventBus(ringSize int) *EventBus {
	if ringSize <= 0 {
		ringSize = DefaultRingSize
	}
	return &EventBus{
		ringSize:  ringSize,
		listeners: make(map[*Subscription]struct{}),
	}
}

// Subscription is one player's read-only cursor onto the broadcast.
type Subscription struct {
	ch      chan figgie.Event
	dropped atomic.Uint64
	bus     *EventBus
}

// Subscribe registers a new listener. The caller must eventually call
// Unsubscribe to stop receiving broadcasts and release the slot.
func (b *EventBus) Subscribe() *Subscription {
	sub := &Subscription{ch: make(chan figgie.Event, b.ringSize), bus: b}
	b.mu.Lock()
	b.listeners[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes a listener from the broadcast.
func (b *EventBus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	delete(b.listeners, sub)
	b.mu.Unlock()
}

// Broadcast fans event out to every current subscriber. It never blocks:
// a subscriber whose ring is full has the event dropped for it and its
// lag counter incremented instead.
func (b *EventBus) Broadcast(event figgie.Event) {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.listeners))
	for sub := range b.listeners {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			sub.dropped.Add(1)
		}
	}
}

// Recv blocks until the next event is available, ctx is done, or the
// subscriber notices it lagged (in which case it returns ErrLagged without
// consuming an event — call Recv again to continue from the next one that
// arrives).
func (s *Subscription) Recv(ctx context.Context) (figgie.Event, error) {
	if n := s.dropped.Swap(0); n > 0 {
		return nil, ErrLagged
	}
	select {
	case event := <-s.ch:
		return event, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
