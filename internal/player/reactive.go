package player

import (
	"context"

	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/figgie"
)

// ReactivePlayer runs a single goroutine that consumes the event stream
// and invokes its strategy synchronously, inline, on every Update. There
// is no ticker and no second goroutine: the mirror is only ever touched
// from this one goroutine, so it needs no locking from this side (the
// listener helper still takes the lock internally, since mirror is shared
// code with PollingPlayer).
type ReactivePlayer struct {
	self     figgie.PlayerID
	strategy ReactiveStrategy
	eventBus *bus.EventBus
	events   *bus.Subscription
	orders   *bus.OrderBus
	log      zerolog.Logger
	state    *mirror
}

// NewReactivePlayer wires a strategy to the bus under the reactive
// runtime shape.
func NewReactivePlayer(self figgie.PlayerID, strategy ReactiveStrategy, events *bus.EventBus, orders *bus.OrderBus, log zerolog.Logger) *ReactivePlayer {
	return &ReactivePlayer{
		self:     self,
		strategy: strategy,
		eventBus: events,
		events:   events.Subscribe(),
		orders:   orders,
		log:      log.With().Str("player", string(self)).Str("strategy", strategy.Name()).Logger(),
		state:    newMirror(),
	}
}

// Run supervises the listener goroutine with a tomb, exactly like
// PollingPlayer, so a panicking strategy is caught and logged rather than
// taking down the rest of the simulation.
func (p *ReactivePlayer) Run(ctx context.Context) error {
	emit := emitGuarded(p.self, p.state, p.orders, p.log)

	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return runListener(ctx, p.self, p.events, p.state, p.log, func(ev figgie.UpdateEvent) {
			view := p.state.snapshot(p.self)
			p.strategy.React(view, emit)
		})
	})
	<-t.Dying()
	p.eventBus.Unsubscribe(p.events)
	return t.Wait()
}
