// Package trace implements the simulator's external presentation layer:
// an ANSI-colored human trace on stdout, and an optional append-only
// JSON-lines file sink — one serialized Event per line. Both are
// out-of-core per the design (purely presentational / a trivial file
// sink) but are still built as concrete external collaborators, grounded
// on the original source's CL color enum and FileHandler, and wired
// through zerolog rather than hand-rolled os.OpenFile/Write calls.
package trace

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/saiputravu/figgie/internal/figgie"
	"github.com/saiputravu/figgie/internal/matchmaker"
)

// Sink renders the event stream for a human watching the terminal and,
// optionally, mirrors every event as a JSON-lines record to a file.
type Sink struct {
	color bool
	file  *zerolog.Logger
}

// New opens the optional file sink (append-only, created if absent) and
// returns a Sink ready to receive events. logPath == "" disables the file
// sink entirely.
func New(color bool, logPath string) (*Sink, error) {
	s := &Sink{color: color}
	if logPath == "" {
		return s, nil
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("trace: opening log sink: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	s.file = &logger
	return s, nil
}

// Event renders ev to stdout and, if configured, appends it to the file
// sink as one JSON line.
func (s *Sink) Event(ev figgie.Event) {
	fmt.Println(s.render(ev))
	if s.file == nil {
		return
	}
	s.writeJSON(ev)
}

func (s *Sink) render(ev figgie.Event) string {
	switch e := ev.(type) {
	case figgie.DealCardsEvent:
		return paint(s.color, colorDullGreen, fmt.Sprintf("[round %d] cards dealt to %d players", e.Round, len(e.Inventories)))
	case figgie.UpdateEvent:
		if e.Trade == nil {
			return paint(s.color, colorDull, "[update] books changed, no trade")
		}
		return paint(s.color, colorGreen, fmt.Sprintf("[trade] %s @ %d: %s bought from %s",
			e.Trade.Card, e.Trade.Price, e.Trade.Buyer, e.Trade.Seller))
	case figgie.EndRoundEvent:
		return paint(s.color, colorOrange, fmt.Sprintf("[round %d] trading closed", e.Round))
	default:
		return paint(s.color, colorRed, "[unknown event]")
	}
}

func (s *Sink) writeJSON(ev figgie.Event) {
	entry := s.file.Log().Str("kind", ev.Kind().String())
	switch e := ev.(type) {
	case figgie.DealCardsEvent:
		entry = entry.Uint32("round", e.Round).Int("players", len(e.Inventories))
	case figgie.UpdateEvent:
		entry = entry.Interface("books", e.Books)
		if e.Trade != nil {
			entry = entry.Str("trade_card", e.Trade.Card.String()).
				Int("trade_price", e.Trade.Price).
				Str("buyer", string(e.Trade.Buyer)).
				Str("seller", string(e.Trade.Seller))
		}
	case figgie.EndRoundEvent:
		entry = entry.Uint32("round", e.Round)
	}
	entry.Msg("")
}

// Settlement renders a round's payout summary. Unlike Event, which tracks
// the bus's own message shapes, settlement detail lives on the
// Matchmaker and is rendered directly from a SettlementResult snapshot.
func (s *Sink) Settlement(result matchmaker.SettlementResult) {
	fmt.Println(paint(s.color, colorTeal, fmt.Sprintf("[settlement] goal suit %s, pot split %d among %d winner(s)",
		result.GoalSuit, result.PotSplit, len(result.PotWinners))))
	if s.file == nil {
		return
	}
	s.file.Log().
		Str("kind", "Settlement").
		Str("goal_suit", result.GoalSuit.String()).
		Int("pot_split", result.PotSplit).
		Int("pot_remainder", result.PotRemainder).
		Interface("winners", result.PotWinners).
		Msg("")
}

// Close always returns nil. It does not close the file sink: the log
// file handle stays open until the process exits.
func (s *Sink) Close() error {
	return nil
}
