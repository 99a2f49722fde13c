package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" help:"Practice payouts interactively"`
	Drill   DrillCmd         `cmd:"" help:"Run line-mode or batch drills without the TUI"`
	Stats   StatsCmd         `cmd:"" help:"Show stored session history"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chipdrill"),
		kong.Description("Blackjack payout trainer for counting out chip stacks"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
