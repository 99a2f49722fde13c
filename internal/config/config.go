// Package config loads the trainer's HCL configuration file. A
// missing file yields the built-in defaults; a present file only
// overrides what it sets.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/chipdrill/internal/blackjack"
	"github.com/lox/chipdrill/internal/chips"
	"github.com/lox/chipdrill/internal/money"
	"github.com/lox/chipdrill/internal/store"
)

// Config is the complete trainer configuration.
type Config struct {
	Trainer       *TrainerSettings     `hcl:"trainer,block"`
	Denominations []DenominationConfig `hcl:"denomination,block"`
	Bets          *BetSettings         `hcl:"bets,block"`
}

// TrainerSettings contains trainer-level configuration.
type TrainerSettings struct {
	DealerStands int    `hcl:"dealer_stands,optional"`
	ForceNatural *bool  `hcl:"force_natural,optional"`
	HistoryLimit int    `hcl:"history_limit,optional"`
	SessionFile  string `hcl:"session_file,optional"`
	LogLevel     string `hcl:"log_level,optional"`
}

// DenominationConfig defines one chip denomination.
type DenominationConfig struct {
	Label string  `hcl:"label,label"`
	Value float64 `hcl:"value"`
	Count int     `hcl:"count,optional"`
}

// BetSettings overrides the bet amount pool, in dollars.
type BetSettings struct {
	Amounts []float64 `hcl:"amounts"`
}

// Default returns the built-in configuration: standard house rules,
// the canonical chip tray and the curated bet list.
func Default() *Config {
	forceNatural := true
	return &Config{
		Trainer: &TrainerSettings{
			DealerStands: 17,
			ForceNatural: &forceNatural,
			HistoryLimit: store.DefaultHistoryLimit,
			SessionFile:  store.DefaultPath(),
			LogLevel:     "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file returns
// the defaults, matching first-run behaviour.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(c *Config) {
	def := Default()
	if c.Trainer == nil {
		c.Trainer = def.Trainer
		return
	}
	if c.Trainer.DealerStands == 0 {
		c.Trainer.DealerStands = def.Trainer.DealerStands
	}
	if c.Trainer.ForceNatural == nil {
		c.Trainer.ForceNatural = def.Trainer.ForceNatural
	}
	if c.Trainer.HistoryLimit == 0 {
		c.Trainer.HistoryLimit = def.Trainer.HistoryLimit
	}
	if c.Trainer.SessionFile == "" {
		c.Trainer.SessionFile = def.Trainer.SessionFile
	}
	if c.Trainer.LogLevel == "" {
		c.Trainer.LogLevel = def.Trainer.LogLevel
	}
}

// DenominationSet converts the configured denominations to the chip
// tray, falling back to the canonical set when none are configured.
func (c *Config) DenominationSet() []chips.Denomination {
	if len(c.Denominations) == 0 {
		return chips.DefaultDenominations()
	}

	out := make([]chips.Denomination, len(c.Denominations))
	for i, d := range c.Denominations {
		count := d.Count
		if count == 0 {
			count = chips.DefaultSupply
		}
		label := d.Label
		if label == "" {
			label = money.FromDollars(d.Value).String()
		}
		out[i] = chips.Denomination{
			Value:     money.FromDollars(d.Value),
			Label:     label,
			Available: count,
		}
	}
	return out
}

// BetAmounts converts the configured bet pool to cents, falling back
// to the curated default list.
func (c *Config) BetAmounts() []money.Cents {
	if c.Bets == nil || len(c.Bets.Amounts) == 0 {
		return blackjack.DefaultBetAmounts
	}

	out := make([]money.Cents, len(c.Bets.Amounts))
	for i, d := range c.Bets.Amounts {
		out[i] = money.FromDollars(d)
	}
	return out
}

// GeneratorConfig builds the scenario generator settings from the
// configuration.
func (c *Config) GeneratorConfig() blackjack.GeneratorConfig {
	return blackjack.GeneratorConfig{
		ForceNatural: c.Trainer.ForceNatural == nil || *c.Trainer.ForceNatural,
		DealerStands: c.Trainer.DealerStands,
		BetAmounts:   c.BetAmounts(),
	}
}
