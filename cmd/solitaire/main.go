package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a game, printing every round (default)"`
	TUI     TUICmd           `cmd:"tui" help:"Watch a game in an interactive terminal view"`
	Stats   StatsCmd         `cmd:"" help:"Play many random games and summarise how long they take"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("solitaire"),
		kong.Description("Bulgarian Solitaire simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
