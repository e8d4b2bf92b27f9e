package player

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/figgie"
)

// PollingStrategy is invoked at a randomized cadence with a snapshot of
// shared state. It must not block: Tick runs on the player's only ticking
// goroutine, and a slow strategy delays every future tick.
type PollingStrategy interface {
	Name() string
	Tick(view View, emit Emit)
}

// ReactiveStrategy is invoked synchronously, inline, on every Update
// event. It must not fan out an unbounded number of orders per call — the
// contract exists specifically to prevent feedback amplification against
// the matchmaker's own reset-and-drain behavior.
type ReactiveStrategy interface {
	Name() string
	React(view View, emit Emit)
}

// consumeEvent applies one Event to m. onUpdate, when non-nil, is called after a
// successful Update application — the reactive player uses this to run
// its strategy inline; the polling player passes nil, since its strategy
// runs off the ticker instead.
func consumeEvent(self figgie.PlayerID, m *mirror, log zerolog.Logger, event figgie.Event, onUpdate func(figgie.UpdateEvent)) {
	switch ev := event.(type) {
	case figgie.DealCardsEvent:
		m.applyDealCards(self, ev)
		log.Debug().Uint32("round", ev.Round).Msg("deal received")
	case figgie.UpdateEvent:
		if err := m.applyUpdate(self, ev); err != nil {
			log.Error().Err(err).Msg("local inventory diverged from matchmaker's trade delta")
		}
		if onUpdate != nil {
			onUpdate(ev)
		}
	case figgie.EndRoundEvent:
		m.applyEndRound()
		log.Debug().Uint32("round", ev.Round).Msg("round ended")
	}
}

// runListener drains sub until ctx is cancelled, applying every event to
// m. A lagged subscriber is logged and simply continues from the next
// event it manages to receive — see bus.ErrLagged.
func runListener(ctx context.Context, self figgie.PlayerID, sub *bus.Subscription, m *mirror, log zerolog.Logger, onUpdate func(figgie.UpdateEvent)) error {
	for {
		event, err := sub.Recv(ctx)
		if err != nil {
			if errors.Is(err, bus.ErrLagged) {
				log.Warn().Msg("event broadcast lagged; skipping ahead")
				continue
			}
			return nil
		}
		consumeEvent(self, m, log, event, onUpdate)
	}
}

// emitGuarded enforces the "no orders while trading == false" contract
// before handing order to orders. Violating it is a programming error per
// the error taxonomy: the matchmaker would otherwise process the order
// against a book that has already been reset for the next round.
func emitGuarded(self figgie.PlayerID, m *mirror, orders *bus.OrderBus, log zerolog.Logger) Emit {
	return func(order figgie.Order) {
		if !m.trading.Load() {
			log.Error().Str("player", string(self)).Msg("strategy attempted to emit an order while not trading")
			return
		}
		orders.Send(order)
	}
}
