// Command boardroom runs an autoplayed corporate-survival session: a seeded
// quarterly simulation with decisions made by a small steward policy,
// reported through slog and recorded to SQLite for later inspection.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"

	"github.com/talgya/boardroom/internal/card"
	"github.com/talgya/boardroom/internal/engine"
	"github.com/talgya/boardroom/internal/persistence"
	"github.com/talgya/boardroom/internal/rng"
	"github.com/talgya/boardroom/internal/state"
)

type config struct {
	Seed     int64  `env:"BOARDROOM_SEED" envDefault:"0"` // 0 = fresh crypto seed
	Quarters int    `env:"BOARDROOM_QUARTERS" envDefault:"20"`
	DBPath   string `env:"BOARDROOM_DB" envDefault:"data/boardroom.db"`
	Debug    bool   `env:"BOARDROOM_DEBUG" envDefault:"false"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("boardroom failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = rng.NewSeed(); err != nil {
			return err
		}
	}
	slog.Info("boardroom session", "seed", seed, "quarters", cfg.Quarters)

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sessionID, err := store.NewSession(seed)
	if err != nil {
		return err
	}
	slog.Info("database opened", "path", cfg.DBPath, "session", sessionID)

	r := rng.New(seed)
	ecfg := engine.DefaultConfig()
	ecfg.MarketSeed = seed + 1
	g := engine.NewGame(ecfg, card.Projects(), card.Events(), r)

	for g.Quarter.Number <= cfg.Quarters && !g.CEO.Terminal() {
		quarter := g.Quarter.Number

		var quarterLog state.Log
		for g.Quarter.Number == quarter && !g.CEO.Terminal() {
			in := decide(g)
			next, log, err := engine.Advance(g, in, r)
			if err != nil {
				return fmt.Errorf("advance quarter %d: %w", quarter, err)
			}
			g = next
			quarterLog = append(quarterLog, log...)
			for _, e := range log {
				slog.Debug("event", "kind", e.Kind.String(), "message", e.Message)
			}
		}

		report(g, quarter)
		if err := saveQuarter(store, sessionID, quarter, g, quarterLog); err != nil {
			return err
		}
	}

	verdict := "term limit reached"
	switch {
	case g.CEO.IsOusted:
		verdict = "ousted by the board"
	case g.CEO.HasRetired:
		verdict = "retired"
	}
	slog.Info("session over",
		"verdict", verdict,
		"quarters_survived", g.CEO.QuartersSurvived,
		"total_profit", humanize.Comma(int64(g.CEO.TotalProfit)),
		"favorability", g.CEO.Favorability,
		"evil_score", g.CEO.EvilScore,
	)
	return nil
}

// report logs the quarterly summary, mirroring what a narrative layer would
// consume from the structured log.
func report(g engine.Game, quarter int) {
	slog.Info("quarterly report",
		"quarter", quarter,
		"profit_total", humanize.Comma(int64(g.CEO.TotalProfit)),
		"favorability", g.CEO.Favorability,
		"capital", g.Capital.Value,
		"evil_score", g.CEO.EvilScore,
		"pressure", g.CEO.PressureLevel,
		"weak_streak", g.WeakStreak,
		"open_crises", len(g.Crises),
		"delivery", g.Org.Meter(state.Delivery),
		"morale", g.Org.Meter(state.Morale),
		"governance", g.Org.Meter(state.Governance),
		"alignment", g.Org.Meter(state.Alignment),
		"runway", g.Org.Meter(state.Runway),
	)
}

// snapshot is the caller-side state blob stored per quarter.
type snapshot struct {
	Quarter      int            `json:"quarter"`
	Meters       map[string]int `json:"meters"`
	Favorability int            `json:"favorability"`
	EvilScore    int            `json:"evil_score"`
	Pressure     int            `json:"pressure"`
	Capital      int            `json:"capital"`
	TotalProfit  int            `json:"total_profit"`
	Bonus        int            `json:"retirement_bonus"`
}

// logLine is the caller-side rendering of one log entry.
type logLine struct {
	Kind    string `json:"kind"`
	Meter   string `json:"meter,omitempty"`
	Delta   int    `json:"delta,omitempty"`
	Message string `json:"message"`
}

func saveQuarter(store *persistence.Store, sessionID string, quarter int, g engine.Game, log state.Log) error {
	meters := make(map[string]int, 5)
	for _, m := range state.Meters() {
		meters[m.String()] = g.Org.Meter(m)
	}
	stateJSON, err := persistence.MarshalJSON(snapshot{
		Quarter:      quarter,
		Meters:       meters,
		Favorability: g.CEO.Favorability,
		EvilScore:    g.CEO.EvilScore,
		Pressure:     g.CEO.PressureLevel,
		Capital:      g.Capital.Value,
		TotalProfit:  g.CEO.TotalProfit,
		Bonus:        g.CEO.RetirementBonus,
	})
	if err != nil {
		return err
	}

	lines := make([]logLine, 0, len(log))
	for _, e := range log {
		line := logLine{Kind: e.Kind.String(), Delta: e.Delta, Message: e.Message}
		if e.HasMeter {
			line.Meter = e.Meter.String()
		}
		lines = append(lines, line)
	}
	logJSON, err := persistence.MarshalJSON(lines)
	if err != nil {
		return err
	}

	return store.SaveQuarter(persistence.QuarterRecord{
		SessionID:    sessionID,
		Quarter:      quarter,
		Profit:       g.LastProfit,
		Favorability: g.CEO.Favorability,
		Capital:      g.Capital.Value,
		EvilScore:    g.CEO.EvilScore,
		Ousted:       g.CEO.IsOusted,
		Retired:      g.CEO.HasRetired,
		StateJSON:    stateJSON,
		LogJSON:      logJSON,
	})
}
