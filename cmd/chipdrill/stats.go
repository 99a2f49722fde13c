package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/chipdrill/internal/config"
	"github.com/lox/chipdrill/internal/session"
)

var (
	statsTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	statsDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// StatsCmd prints the stored rolling session history.
type StatsCmd struct {
	Config string `short:"c" default:"chipdrill.hcl" help:"Path to HCL config file"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *StatsCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg, c.Debug)

	st := openStore(cfg, logger)
	f, err := st.Load()
	if err != nil {
		return err
	}

	fmt.Println(statsTitleStyle.Render(" chipdrill history "))
	fmt.Println()

	if len(f.History) == 0 {
		fmt.Println(statsDimStyle.Render("no sessions recorded yet"))
		return nil
	}

	totalHands, totalCorrect, bestStreak := 0, 0, 0
	for _, day := range f.History {
		acc := 0
		if day.Hands > 0 {
			acc = int(math.Round(float64(day.Correct) / float64(day.Hands) * 100))
		}
		fmt.Printf("%s  %4d hands  %3d%%  best streak %d\n", day.Date, day.Hands, acc, day.BestStreak)

		totalHands += day.Hands
		totalCorrect += day.Correct
		if day.BestStreak > bestStreak {
			bestStreak = day.BestStreak
		}
	}

	overall := session.Score{Correct: totalCorrect, Total: totalHands, BestStreak: bestStreak}
	fmt.Println()
	fmt.Printf("last %d days: %d/%d (%d%%), best streak %d, %s\n",
		len(f.History), totalCorrect, totalHands, overall.Accuracy(), bestStreak, overall.Rating())
	return nil
}
