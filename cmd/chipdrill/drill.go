package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chipdrill/internal/blackjack"
	"github.com/lox/chipdrill/internal/chips"
	"github.com/lox/chipdrill/internal/config"
	"github.com/lox/chipdrill/internal/money"
	"github.com/lox/chipdrill/internal/randutil"
)

// DrillCmd practices without the TUI. In line mode it prints each
// scenario and reads an answer from stdin, which makes it scriptable.
// With --check it instead generates a batch of scenarios and verifies
// payout and chip arithmetic against each other.
type DrillCmd struct {
	Config  string `short:"c" default:"chipdrill.hcl" help:"Path to HCL config file"`
	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
	Debug   bool   `help:"Enable debug logging"`
	Hands   int    `default:"10" help:"Number of hands to drill"`
	Check   bool   `help:"Self-check mode: verify payout and chip math over the batch"`
	Workers int    `default:"4" help:"Concurrent workers in self-check mode"`
}

func (c *DrillCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg, c.Debug)

	if c.Check {
		return c.runCheck(cfg)
	}
	return c.runInteractive(cfg, logger)
}

func (c *DrillCmd) runInteractive(cfg *config.Config, logger *log.Logger) error {
	tr := buildTrainer(cfg, c.Seed, logger)
	scanner := bufio.NewScanner(os.Stdin)

	for i := 0; i < c.Hands; i++ {
		s, err := tr.Deal()
		if err != nil {
			return err
		}

		fmt.Printf("\nhand %d/%d\n", i+1, c.Hands)
		fmt.Printf("  dealer: %s (%d)\n", s.Dealer, s.Dealer.Total())
		fmt.Printf("  player: %s (%d)\n", s.Player, s.Player.Total())
		fmt.Printf("  bet %s, payout? ", s.Bet)

		if !scanner.Scan() {
			break
		}

		dollars, err := parseAnswer(scanner.Text())
		if err != nil {
			fmt.Printf("  not an amount: %q\n", strings.TrimSpace(scanner.Text()))
			dollars = -1 // scored as incorrect
		}

		res, err := tr.Submit(money.FromDollars(dollars))
		if err != nil {
			return err
		}
		if res.IsCorrect {
			fmt.Println("  correct!")
		} else {
			fmt.Printf("  %s\n", res.Explanation)
			if combo, ok := tr.Suggest(res.Correct); ok {
				fmt.Printf("  stack it as: %s\n", combo)
			}
		}

		if err := tr.Advance(); err != nil {
			return err
		}
	}

	stats := tr.Session().Stats()
	fmt.Printf("\n%d/%d correct (%d%%), best streak %d, %s\n",
		stats.Score.Correct, stats.Score.Total, stats.Score.Accuracy(),
		stats.Score.BestStreak, stats.Score.Rating())

	if stats.Score.Total == 0 {
		return nil
	}

	st := openStore(cfg, logger)
	f, err := st.Load()
	if err != nil {
		return err
	}
	st.RecordSession(f, stats)
	return st.Save(f)
}

// parseAnswer extracts a dollar amount from a typed answer line,
// tolerating surrounding whitespace and a leading dollar sign.
func parseAnswer(line string) (float64, error) {
	return strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(line), "$"), 64)
}

// splitHands spreads total hands across workers, front-loading the
// remainder so the batch checks exactly the requested count.
func splitHands(total, workers int) []int {
	if total < 1 {
		return nil
	}
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	counts := make([]int, workers)
	for i := range counts {
		counts[i] = total / workers
		if i < total%workers {
			counts[i]++
		}
	}
	return counts
}

// runCheck deals batches of scenarios across workers and verifies the
// deterministic core against itself: stored payouts match the rule
// table, forced naturals really are naturals, and every feasible
// decomposition of a payout recombines exactly.
func (c *DrillCmd) runCheck(cfg *config.Config) error {
	denoms := cfg.DenominationSet()

	var checked, infeasible atomic.Int64
	var g errgroup.Group

	for w, hands := range splitHands(c.Hands, c.Workers) {
		seed := int64(w + 1)
		if c.Seed != nil {
			seed = *c.Seed + int64(w)
		}

		g.Go(func() error {
			gen := blackjack.NewGenerator(cfg.GeneratorConfig(), randutil.New(seed))
			for i := 0; i < hands; i++ {
				s := gen.Generate()

				if got := blackjack.PayoutFor(s.Bet, s.Result); got != s.CorrectPayout {
					return fmt.Errorf("payout mismatch for %s: stored %s, computed %s", s, s.CorrectPayout, got)
				}
				if s.Result == blackjack.OutcomeBlackjack && !s.Player.IsBlackjack() {
					return fmt.Errorf("blackjack result without a natural: %s", s)
				}

				combo, ok := chips.Decompose(s.CorrectPayout, denoms)
				if !ok {
					infeasible.Add(1)
				} else if combo.Sum() != s.CorrectPayout {
					return fmt.Errorf("decomposition of %s sums to %s", s.CorrectPayout, combo.Sum())
				}

				checked.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("checked %d scenarios: all consistent (%d payouts had no exact chip stack)\n",
		checked.Load(), infeasible.Load())
	return nil
}
