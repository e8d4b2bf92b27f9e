package player

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/figgie"
)

// idleTick is the cadence a polling player wakes at between rounds, while
// trading == false. It has nothing to do with the strategy's own cadence.
const idleTick = time.Second

// PollingConfig bounds the randomized cadence a polling player wakes at
// while trading == true: a duration drawn uniformly from
// [LowerFreq, HigherFreq).
type PollingConfig struct {
	LowerFreq  time.Duration
	HigherFreq time.Duration
}

// DefaultPollingConfig mirrors the design's stated bounds for a
// reasonably active polling strategy.
func DefaultPollingConfig() PollingConfig {
	return PollingConfig{LowerFreq: 300 * time.Millisecond, HigherFreq: 1200 * time.Millisecond}
}

// PollingPlayer mirrors events into shared mutable state on one goroutine
// and invokes its strategy from a second goroutine that wakes at a
// randomized cadence. The two goroutines only ever touch mirror, which
// serializes them.
type PollingPlayer struct {
	self      figgie.PlayerID
	cfg       PollingConfig
	strategy  PollingStrategy
	eventBus  *bus.EventBus
	events    *bus.Subscription
	orders    *bus.OrderBus
	log       zerolog.Logger
	rng       *rand.Rand
	state     *mirror
}

// NewPollingPlayer wires a strategy to the bus under the polling runtime
// shape.
func NewPollingPlayer(self figgie.PlayerID, cfg PollingConfig, strategy PollingStrategy, events *bus.EventBus, orders *bus.OrderBus, log zerolog.Logger) *PollingPlayer {
	return &PollingPlayer{
		self:     self,
		cfg:      cfg,
		strategy: strategy,
		eventBus: events,
		events:   events.Subscribe(),
		orders:   orders,
		log:      log.With().Str("player", string(self)).Str("strategy", strategy.Name()).Logger(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(len(self)))),
		state:    newMirror(),
	}
}

// Run supervises the listener and ticker goroutines with a tomb: a panic
// or error in either is caught, logged, and brings down only this
// player, never the rest of the simulation.
func (p *PollingPlayer) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return runListener(ctx, p.self, p.events, p.state, p.log, nil)
	})
	t.Go(func() error {
		return p.tickerLoop(ctx)
	})
	<-t.Dying()
	p.eventBus.Unsubscribe(p.events)
	return t.Wait()
}

func (p *PollingPlayer) tickerLoop(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Inf, 1)
	emit := emitGuarded(p.self, p.state, p.orders, p.log)
	for {
		if !p.state.trading.Load() {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(idleTick):
			}
			continue
		}

		interval := randomInterval(p.rng, p.cfg.LowerFreq, p.cfg.HigherFreq)
		limiter.SetLimit(rate.Every(interval))
		if err := limiter.WaitN(ctx, 1); err != nil {
			return nil
		}

		view := p.state.snapshot(p.self)
		p.strategy.Tick(view, emit)
	}
}

func randomInterval(rng *rand.Rand, lower, higher time.Duration) time.Duration {
	if higher <= lower {
		return lower
	}
	return lower + time.Duration(rng.Int63n(int64(higher-lower)))
}
