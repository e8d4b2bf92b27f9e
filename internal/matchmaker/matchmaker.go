// Package matchmaker implements the authoritative Figgie round state
// machine: ante, deal, trading, settlement. It is the sole owner of all
// mutable game state (points, inventories, books); players only ever see
// it through the event broadcast and the order bus.
package matchmaker

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/figgie"
)

// rosterSizes lists the player counts that divide the 40-card deck evenly.
var rosterSizes = map[int]bool{2: true, 4: true, 5: true, 8: true, 10: true}

// Config collects every compiled-in constant the round state machine
// depends on. Defaults mirror the design's stated defaults; cmd/figgie
// overrides them via flags per internal/config.
type Config struct {
	StartingBalance  int
	AntePool         int // total ante collected per round, split evenly (design default 200)
	RoundDuration    time.Duration
	DealDelay        time.Duration // pause before broadcasting DealCards
	ArmDelay         time.Duration // pause between DealCards and the first Update
	CooldownDuration time.Duration
}

// DefaultConfig returns the design's stated defaults.
func DefaultConfig() Config {
	return Config{
		StartingBalance:  500,
		AntePool:         200,
		RoundDuration:    30 * time.Second,
		DealDelay:        5 * time.Second,
		ArmDelay:         2 * time.Second,
		CooldownDuration: 30 * time.Second,
	}
}

// Matchmaker owns the round state machine. It must run on a single
// goroutine — nothing about it is safe for concurrent use.
type Matchmaker struct {
	cfg    Config
	roster []figgie.PlayerID

	round       uint32
	points      map[figgie.PlayerID]int
	inventories map[figgie.PlayerID]figgie.Inventory
	books       figgie.Books
	commonSuit  figgie.Card
	goalSuit    figgie.Card
	pot         int

	orders *bus.OrderBus
	events *bus.EventBus
	rng    *rand.Rand
	log    zerolog.Logger

	// sleep is overridden in tests to avoid real wall-clock waits.
	sleep func(context.Context, time.Duration)

	// OnSettlement, if set, is invoked with each round's payout summary
	// right after settle() runs. The presentation sink uses this to
	// render the round's outcome; nothing in the matchmaker's own state
	// machine depends on it being set.
	OnSettlement func(SettlementResult)
}

// New validates the roster size against the 40-card deal invariant and
// returns a Matchmaker ready to Run.
func New(cfg Config, roster []figgie.PlayerID, orders *bus.OrderBus, events *bus.EventBus, log zerolog.Logger) (*Matchmaker, error) {
	if !rosterSizes[len(roster)] {
		return nil, fmt.Errorf("matchmaker: roster of %d players does not divide the 40-card deck evenly", len(roster))
	}

	points := make(map[figgie.PlayerID]int, len(roster))
	inventories := make(map[figgie.PlayerID]figgie.Inventory, len(roster))
	for _, p := range roster {
		points[p] = cfg.StartingBalance
		inventories[p] = figgie.NewInventory()
	}

	books := make(figgie.Books, len(figgie.Suits))
	for _, c := range figgie.Suits {
		books[c] = figgie.NewBook()
	}

	return &Matchmaker{
		cfg:         cfg,
		roster:      append([]figgie.PlayerID(nil), roster...),
		points:      points,
		inventories: inventories,
		books:       books,
		commonSuit:  figgie.Spade,
		orders:      orders,
		events:      events,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         log,
		sleep:       sleepCtx,
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Run drives the round state machine until ctx is cancelled. Each loop
// iteration is one full round: ante, setup, deal, arm, trading,
// settlement, cooldown.
func (m *Matchmaker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.runRound(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.sleep(ctx, m.cfg.CooldownDuration)
		m.round++
	}
}

func (m *Matchmaker) runRound(ctx context.Context) {
	ante, collected := m.collectAnte()
	m.pot = collected

	m.pickCommonSuit()
	m.dealInventories()

	m.log.Info().
		Uint32("round", m.round).
		Int("players", len(m.roster)).
		Int("ante", ante).
		Int("pot", m.pot).
		Str("common_suit", m.commonSuit.String()).
		Str("goal_suit", m.goalSuit.String()).
		Msg("round starting")

	m.sleep(ctx, m.cfg.DealDelay)
	m.events.Broadcast(figgie.DealCardsEvent{Round: m.round, Inventories: m.snapshotInventories()})

	m.sleep(ctx, m.cfg.ArmDelay)
	m.events.Broadcast(figgie.UpdateEvent{Books: figgie.CloneBooks(m.books)})

	m.runTrading(ctx)

	m.events.Broadcast(figgie.EndRoundEvent{Round: m.round})
	result := m.settle()
	if m.OnSettlement != nil {
		m.OnSettlement(result)
	}
}

// runTrading consumes orders from the bus until the round window elapses.
func (m *Matchmaker) runTrading(ctx context.Context) {
	deadline := time.Now().Add(m.cfg.RoundDuration)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}

		tradingCtx, cancel := context.WithTimeout(ctx, remaining)
		order, ok := m.orders.Recv(tradingCtx)
		cancel()
		if !ok {
			if ctx.Err() != nil {
				return
			}
			continue // timed out waiting for the next order; re-check the deadline
		}

		m.handleOrder(order)
	}
}

func (m *Matchmaker) snapshotInventories() map[figgie.PlayerID]figgie.Inventory {
	out := make(map[figgie.PlayerID]figgie.Inventory, len(m.inventories))
	for p, inv := range m.inventories {
		out[p] = inv.Clone()
	}
	return out
}

// collectAnte deducts the per-player ante from every player's points. A
// player short on points still antes whatever they have (possibly
// nothing) and plays the round — see SPEC_FULL.md §12, open question 3.
func (m *Matchmaker) collectAnte() (ante, pot int) {
	ante = m.cfg.AntePool / len(m.roster)
	for _, p := range m.roster {
		if m.points[p] < ante {
			m.log.Warn().Str("player", string(p)).Int("points", m.points[p]).Int("ante", ante).
				Msg("player cannot afford the full ante; anteing available points")
			pot += m.points[p]
			m.points[p] = 0
			continue
		}
		m.points[p] -= ante
		pot += ante
	}
	return ante, pot
}
