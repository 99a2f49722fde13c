package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/blackjack"
	"github.com/lox/chipdrill/internal/config"
	"github.com/lox/chipdrill/internal/randutil"
	"github.com/lox/chipdrill/internal/store"
	"github.com/lox/chipdrill/internal/trainer"
)

// setupLogger configures a console logger. The config file's log
// level applies unless --debug forces debug output.
func setupLogger(cfg *config.Config, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch {
	case debug:
		logger.SetLevel(log.DebugLevel)
	case cfg.Trainer.LogLevel != "":
		if lvl, err := log.ParseLevel(cfg.Trainer.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}
	}

	return logger
}

// buildTrainer wires a trainer from configuration and an optional
// deterministic seed.
func buildTrainer(cfg *config.Config, seed *int64, logger *log.Logger) *trainer.Trainer {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
		logger.Info("using deterministic seed", "seed", s)
	}

	genCfg := cfg.GeneratorConfig()
	genCfg.Logger = logger

	return trainer.New(trainer.Options{
		Generator:     blackjack.NewGenerator(genCfg, randutil.New(s)),
		Denominations: cfg.DenominationSet(),
		Logger:        logger,
	})
}

// openStore opens the session store at the configured path.
func openStore(cfg *config.Config, logger *log.Logger) *store.Store {
	st := store.New(cfg.Trainer.SessionFile, logger)
	st.HistoryLimit = cfg.Trainer.HistoryLimit
	return st
}
