// Command figgie runs the Figgie simulator end to end: one Matchmaker
// goroutine arbitrating trades for a hardcoded roster of Player
// goroutines, each wired to one of the reference strategies. It takes no
// required arguments; every knob has a flag default and the simulation
// loops forever until SIGINT/SIGTERM. Grounded on the teacher's
// cmd/main.go wiring of a context, a signal handler, and a supervising
// goroutine tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/figgie/internal/bus"
	"github.com/saiputravu/figgie/internal/config"
	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/matchmaker"
	"github.com/saiputravu/figgie/internal/player"
	"github.com/saiputravu/figgie/internal/strategy"
	"github.com/saiputravu/figgie/internal/trace"
)

// playerRunner is the shape both PollingPlayer and ReactivePlayer share;
// main only needs to start and supervise them, not distinguish the two.
type playerRunner interface {
	Run(ctx context.Context) error
}

// roster wires up the ten-player reference fixture: a deliberate mix of
// polling and reactive strategies exercising every behavioral corner
// named in SPEC_FULL.md §10.
func roster(cfg config.Config, events *bus.EventBus, orders *bus.OrderBus, log zerolog.Logger) (ids []figgie.PlayerID, runners []playerRunner) {
	type seat struct {
		id       figgie.PlayerID
		polling  player.PollingStrategy
		reactive player.ReactiveStrategy
	}

	seats := []seat{
		{id: "Noisy-1", polling: strategy.NewNoisy()},
		{id: "Noisy-2", polling: strategy.NewNoisy()},
		{id: "Seller-1", polling: strategy.NewSeller()},
		{id: "Seller-2", polling: strategy.NewSeller()},
		{id: "Spread-1", polling: strategy.NewSpread()},
		{id: "Spread-2", polling: strategy.NewSpread()},
		{id: "TiltInventory", polling: strategy.NewTiltInventory()},
		{id: "Hoarder", polling: strategy.NewHoarder()},
		{id: "PrayingMantis", polling: strategy.NewPrayingMantis()},
		{id: "PickOff", reactive: strategy.NewPickOff()},
	}

	for _, st := range seats {
		ids = append(ids, st.id)
		switch {
		case st.reactive != nil:
			runners = append(runners, player.NewReactivePlayer(st.id, st.reactive, events, orders, log))
		default:
			runners = append(runners, player.NewPollingPlayer(st.id, cfg.Polling, st.polling, events, orders, log))
		}
	}
	return ids, runners
}

func main() {
	fs := flag.NewFlagSet("figgie", flag.ExitOnError)
	cfg := config.ParseFlags(fs)
	_ = fs.Parse(os.Args[1:])

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}).
		With().Timestamp().Logger()

	sink, err := trace.New(!cfg.NoColor, cfg.LogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open trace sink")
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events := bus.NewEventBus(cfg.EventRingSize)
	orders := bus.NewOrderBus()

	ids, runners := roster(*cfg, events, orders, log)

	mm, err := matchmaker.New(cfg.Matchmaker, ids, orders, events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start matchmaker")
	}
	mm.OnSettlement = sink.Settlement

	t, ctx := tomb.WithContext(ctx)

	traceSub := events.Subscribe()
	t.Go(func() error {
		defer events.Unsubscribe(traceSub)
		for {
			ev, err := traceSub.Recv(ctx)
			if err != nil {
				return nil
			}
			sink.Event(ev)
		}
	})

	t.Go(func() error { return mm.Run(ctx) })
	for _, r := range runners {
		r := r
		t.Go(func() error { return r.Run(ctx) })
	}

	<-t.Dying()
	if err := t.Wait(); err != nil && ctx.Err() == nil {
		fmt.Fprintln(os.Stderr, "figgie: fatal:", err)
		os.Exit(1)
	}
}
