package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/bulgarian-solitaire/internal/config"
	"github.com/lox/bulgarian-solitaire/internal/randutil"
	"github.com/lox/bulgarian-solitaire/internal/tui"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

type TUICmd struct {
	User         bool           `short:"u" help:"Enter the initial configuration instead of drawing one at random"`
	Seed         *int64         `env:"SOLITAIRE_SEED" help:"Seed for the random configuration (0 for time based)"`
	Distribution string         `help:"How random configurations are drawn: sequential or uniform"`
	MaxRounds    *int           `help:"Stop after N rounds (0 for unlimited)"`
	Delay        *time.Duration `help:"Play automatically with this pause between rounds"`
	LogFile      string         `type:"path" help:"Write logs here instead of discarding them while the view is open"`
}

func (c *TUICmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.User {
		cfg.Game.Mode = config.ModeUser
	}
	if c.Delay != nil {
		cfg.Display.Delay = c.Delay.String()
	}
	if err := overrideGame(cfg, c.Seed, c.Distribution, c.MaxRounds); err != nil {
		return err
	}
	delay, err := cfg.DelayDuration()
	if err != nil {
		return err
	}

	// Log lines would corrupt the full-screen view.
	var logOut io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.SetOutput(logOut)

	opts := tui.Options{
		Delay:     delay,
		MaxRounds: cfg.Game.MaxRounds,
		Logger:    logger,
	}
	switch {
	case cfg.Game.Mode == config.ModeUser && len(cfg.Game.Piles) > 0:
		opts.Board = solitaire.NewBoard(cfg.Game.Piles)
	case cfg.Game.Mode == config.ModeRandom:
		dist, err := solitaire.ParseDistribution(cfg.Game.Distribution)
		if err != nil {
			return err
		}
		rng, seed := randutil.Resolve(cfg.Game.Seed)
		logger.Info("Drawing random configuration", "seed", seed, "distribution", dist)
		opts.Board = solitaire.NewRandomBoard(rng, dist)
	}

	program := tea.NewProgram(tui.New(opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal view: %w", err)
	}
	return nil
}
