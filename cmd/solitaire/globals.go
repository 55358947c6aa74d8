package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/bulgarian-solitaire/cmd/solitaire/shared"
	"github.com/lox/bulgarian-solitaire/internal/config"
	"github.com/lox/bulgarian-solitaire/internal/tui"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `default:"solitaire.hcl" type:"path" env:"SOLITAIRE_CONFIG" help:"HCL config file (ignored if missing)"`
	LogLevel string `env:"SOLITAIRE_LOG_LEVEL" help:"Log level (debug|info|warn|error), overrides the config file"`
	NoColor  bool   `help:"Disable coloured output"`
}

// load reads the config file and applies global flag overrides.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.NoColor {
		cfg.Display.NoColor = true
	}
	tui.SetColor(cfg.ColorEnabled())

	logger, err := shared.SetupLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded configuration", "file", g.Config, "mode", cfg.Game.Mode)
	return cfg, logger, nil
}

// overrideGame applies command-line game flags on top of the config file.
func overrideGame(cfg *config.Config, seed *int64, distribution string, maxRounds *int) error {
	if seed != nil {
		cfg.Game.Seed = *seed
	}
	if distribution != "" {
		cfg.Game.Distribution = distribution
	}
	if maxRounds != nil {
		cfg.Game.MaxRounds = *maxRounds
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
