// Package config resolves the simulator's compiled-in constants, with
// flag overrides for the handful of values worth tuning from the command
// line: round timing, starting balance, and the trace sink path. Mirrors
// the teacher's cmd/client/client.go use of the standard flag package —
// no config file or env-var library is pulled in for a half-dozen knobs
// the teacher itself only ever exposed through flags.
package config

import (
	"flag"

	"github.com/saiputravu/figgie/internal/matchmaker"
	"github.com/saiputravu/figgie/internal/player"
)

// Config collects every flag-overridable knob for a simulator run.
type Config struct {
	Matchmaker matchmaker.Config
	Polling    player.PollingConfig

	EventRingSize int
	NoColor       bool
	LogPath       string
}

// Default returns the compiled-in defaults before any flags are parsed.
func Default() Config {
	return Config{
		Matchmaker:    matchmaker.DefaultConfig(),
		Polling:       player.DefaultPollingConfig(),
		EventRingSize: 100,
		NoColor:       false,
		LogPath:       "",
	}
}

// ParseFlags registers every overridable knob on fs and returns the
// resolved Config once fs.Parse has been called by the caller. Splitting
// registration from parsing lets tests call this against a scratch
// FlagSet instead of flag.CommandLine.
func ParseFlags(fs *flag.FlagSet) *Config {
	cfg := Default()

	fs.IntVar(&cfg.Matchmaker.StartingBalance, "starting-balance", cfg.Matchmaker.StartingBalance, "points each player starts with")
	fs.IntVar(&cfg.Matchmaker.AntePool, "ante-pool", cfg.Matchmaker.AntePool, "total ante collected per round, split evenly among players")
	fs.DurationVar(&cfg.Matchmaker.RoundDuration, "round-duration", cfg.Matchmaker.RoundDuration, "wall-clock length of the trading window")
	fs.DurationVar(&cfg.Matchmaker.DealDelay, "deal-delay", cfg.Matchmaker.DealDelay, "pause before broadcasting DealCards")
	fs.DurationVar(&cfg.Matchmaker.ArmDelay, "arm-delay", cfg.Matchmaker.ArmDelay, "pause between DealCards and the first Update")
	fs.DurationVar(&cfg.Matchmaker.CooldownDuration, "cooldown", cfg.Matchmaker.CooldownDuration, "pause between settlement and the next round's ante")

	fs.DurationVar(&cfg.Polling.LowerFreq, "poll-lower-freq", cfg.Polling.LowerFreq, "lower bound of a polling player's randomized tick cadence")
	fs.DurationVar(&cfg.Polling.HigherFreq, "poll-higher-freq", cfg.Polling.HigherFreq, "upper bound of a polling player's randomized tick cadence")

	fs.IntVar(&cfg.EventRingSize, "event-ring-size", cfg.EventRingSize, "per-subscriber buffer depth on the broadcast event bus")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI color in the stdout trace")
	fs.StringVar(&cfg.LogPath, "log-path", cfg.LogPath, "optional append-only JSON-lines file to mirror every event to")

	return &cfg
}
