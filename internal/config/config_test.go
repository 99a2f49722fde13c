package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/chipdrill/internal/money"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chipdrill.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Trainer.DealerStands != 17 {
		t.Errorf("dealer_stands = %d, want 17", cfg.Trainer.DealerStands)
	}
	if cfg.Trainer.ForceNatural == nil || !*cfg.Trainer.ForceNatural {
		t.Error("force_natural should default to true")
	}
	if cfg.Trainer.HistoryLimit != 30 {
		t.Errorf("history_limit = %d, want 30", cfg.Trainer.HistoryLimit)
	}

	denoms := cfg.DenominationSet()
	if len(denoms) != 7 {
		t.Errorf("expected 7 default denominations, got %d", len(denoms))
	}
	if len(cfg.BetAmounts()) == 0 {
		t.Error("expected a default bet pool")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
trainer {
  dealer_stands = 16
  force_natural = false
  log_level     = "debug"
}

denomination "$1" {
  value = 1.00
}

denomination "$2.50" {
  value = 2.50
  count = 20
}

bets {
  amounts = [5, 7.5, 100]
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Trainer.DealerStands != 16 {
		t.Errorf("dealer_stands = %d, want 16", cfg.Trainer.DealerStands)
	}
	if *cfg.Trainer.ForceNatural {
		t.Error("force_natural should be false")
	}
	if cfg.Trainer.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.Trainer.LogLevel)
	}
	if cfg.Trainer.HistoryLimit != 30 {
		t.Errorf("unset history_limit should default to 30, got %d", cfg.Trainer.HistoryLimit)
	}

	denoms := cfg.DenominationSet()
	if len(denoms) != 2 {
		t.Fatalf("expected 2 denominations, got %d", len(denoms))
	}
	if denoms[1].Value != 250 {
		t.Errorf("second denomination = %d cents, want 250", denoms[1].Value)
	}
	if denoms[1].Available != 20 {
		t.Errorf("second denomination supply = %d, want 20", denoms[1].Available)
	}
	if denoms[0].Available != 50 {
		t.Errorf("unset supply should default to 50, got %d", denoms[0].Available)
	}

	bets := cfg.BetAmounts()
	want := []money.Cents{500, 750, 10000}
	if len(bets) != len(want) {
		t.Fatalf("expected %d bets, got %d", len(want), len(bets))
	}
	for i := range want {
		if bets[i] != want[i] {
			t.Errorf("bet %d = %d, want %d", i, bets[i], want[i])
		}
	}

	gen := cfg.GeneratorConfig()
	if gen.ForceNatural {
		t.Error("generator config should carry force_natural=false")
	}
	if gen.DealerStands != 16 {
		t.Errorf("generator dealer_stands = %d, want 16", gen.DealerStands)
	}
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeConfig(t, `trainer { dealer_stands = `)

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
