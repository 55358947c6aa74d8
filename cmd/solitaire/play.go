package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/bulgarian-solitaire/cmd/solitaire/shared"
	"github.com/lox/bulgarian-solitaire/internal/config"
	"github.com/lox/bulgarian-solitaire/internal/input"
	"github.com/lox/bulgarian-solitaire/internal/randutil"
	"github.com/lox/bulgarian-solitaire/internal/simulator"
	"github.com/lox/bulgarian-solitaire/internal/transcript"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

type PlayCmd struct {
	User         bool           `short:"u" help:"Enter the initial configuration instead of drawing one at random"`
	SingleStep   bool           `short:"s" help:"Wait for return after every round"`
	Seed         *int64         `env:"SOLITAIRE_SEED" help:"Seed for the random configuration (0 for time based)"`
	Distribution string         `help:"How random configurations are drawn: sequential or uniform"`
	MaxRounds    *int           `help:"Stop after N rounds (0 for unlimited)"`
	Delay        *time.Duration `help:"Pause between rounds, e.g. 250ms"`
	Format       string         `help:"Output format: text, json or yaml"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if err := c.apply(cfg); err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return play(ctx, cfg, os.Stdin, os.Stdout, logger, quartz.NewReal())
}

// apply layers the command's flags over the loaded config.
func (c *PlayCmd) apply(cfg *config.Config) error {
	if c.User {
		cfg.Game.Mode = config.ModeUser
	}
	if c.SingleStep {
		cfg.Display.SingleStep = true
	}
	if c.Delay != nil {
		cfg.Display.Delay = c.Delay.String()
	}
	if c.Format != "" {
		cfg.Display.Format = c.Format
	}
	return overrideGame(cfg, c.Seed, c.Distribution, c.MaxRounds)
}

// play runs one game according to cfg, reading any typed input from stdin.
func play(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer, logger *log.Logger, clock quartz.Clock) error {
	format, err := transcript.ParseFormat(cfg.Display.Format)
	if err != nil {
		return err
	}
	delay, err := cfg.DelayDuration()
	if err != nil {
		return err
	}

	logger.Debug("Starting game", "source", describe(cfg), "format", format)
	prompter := input.NewPrompter(stdin, stdout)
	board, seed, err := newBoard(cfg, prompter, logger)
	if err != nil {
		return err
	}

	var (
		monitor  simulator.Monitor
		recorder *transcript.Recorder
	)
	if format == transcript.FormatText {
		monitor = simulator.NewTextMonitor(stdout)
	} else {
		recorder = transcript.NewRecorder(seed)
		monitor = recorder
	}

	stepper := newStepper(cfg, delay, prompter.Scanner(), stdout, clock)

	sim := simulator.New(simulator.Config{
		MaxRounds: cfg.Game.MaxRounds,
		Logger:    logger,
	})
	result, runErr := sim.Run(ctx, board, monitor, stepper)

	if recorder != nil {
		if err := transcript.Write(stdout, recorder.Transcript(), format); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("Game finished", "rounds", result.Rounds)
	return nil
}

// newBoard builds the starting board and returns the seed it was drawn from,
// or zero when the piles came from the player or the config file.
func newBoard(cfg *config.Config, prompter *input.Prompter, logger *log.Logger) (*solitaire.Board, int64, error) {
	if cfg.Game.Mode == config.ModeUser {
		if len(cfg.Game.Piles) > 0 {
			return solitaire.NewBoard(cfg.Game.Piles), 0, nil
		}
		piles, err := prompter.Prompt()
		if errors.Is(err, io.EOF) {
			return nil, 0, errors.New("no initial configuration entered")
		}
		if err != nil {
			return nil, 0, err
		}
		return solitaire.NewBoard(piles), 0, nil
	}

	dist, err := solitaire.ParseDistribution(cfg.Game.Distribution)
	if err != nil {
		return nil, 0, err
	}
	rng, seed := randutil.Resolve(cfg.Game.Seed)
	logger.Debug("Drawing random configuration", "seed", seed, "distribution", dist)
	return solitaire.NewRandomBoard(rng, dist), seed, nil
}

func newStepper(cfg *config.Config, delay time.Duration, in *bufio.Scanner, out io.Writer, clock quartz.Clock) simulator.Stepper {
	switch {
	case cfg.Display.SingleStep:
		return simulator.NewPromptStepper(in, out)
	case delay > 0:
		return simulator.NewDelayStepper(clock, delay)
	default:
		return simulator.NoPause{}
	}
}

// describe formats the configuration source for log lines.
func describe(cfg *config.Config) string {
	if cfg.Game.Mode == config.ModeUser {
		return "user"
	}
	return fmt.Sprintf("random/%s", cfg.Game.Distribution)
}
