package main

import (
	"fmt"

	"github.com/lox/chipdrill/internal/config"
	"github.com/lox/chipdrill/internal/tui"
)

// PlayCmd runs the interactive TUI trainer.
type PlayCmd struct {
	Config string `short:"c" default:"chipdrill.hcl" help:"Path to HCL config file"`
	Seed   *int64 `help:"Deterministic RNG seed (optional)"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg, c.Debug)
	tr := buildTrainer(cfg, c.Seed, logger)

	stats, err := tui.Run(tr, logger)
	if err != nil {
		return err
	}

	if stats.Score.Total == 0 {
		return nil // nothing to persist
	}

	st := openStore(cfg, logger)
	f, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load session history: %w", err)
	}
	st.RecordSession(f, stats)
	if err := st.Save(f); err != nil {
		return fmt.Errorf("failed to save session history: %w", err)
	}

	fmt.Printf("session over: %d/%d (%d%%), best streak %d, %s\n",
		stats.Score.Correct, stats.Score.Total, stats.Score.Accuracy(),
		stats.Score.BestStreak, stats.Score.Rating())
	return nil
}
