// Package config loads solitaire settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bulgarian-solitaire/internal/transcript"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

const (
	ModeRandom = "random"
	ModeUser   = "user"
)

// Config represents the complete configuration.
type Config struct {
	Game    GameSettings
	Display DisplaySettings
	Log     LogSettings
}

// file mirrors Config with every block optional.
type file struct {
	Game    *GameSettings    `hcl:"game,block"`
	Display *DisplaySettings `hcl:"display,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// GameSettings controls how the starting configuration is chosen.
type GameSettings struct {
	Mode         string `hcl:"mode,optional"`
	Distribution string `hcl:"distribution,optional"`
	Seed         int64  `hcl:"seed,optional"`
	MaxRounds    int    `hcl:"max_rounds,optional"`
	Piles        []int  `hcl:"piles,optional"`
}

// DisplaySettings controls output and pacing.
type DisplaySettings struct {
	SingleStep bool   `hcl:"single_step,optional"`
	Delay      string `hcl:"delay,optional"`
	Format     string `hcl:"format,optional"`
	NoColor    bool   `hcl:"no_color,optional"`
}

type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Mode:         ModeRandom,
			Distribution: solitaire.Sequential.String(),
		},
		Display: DisplaySettings{
			Delay:  "0s",
			Format: string(transcript.FormatText),
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads configuration from filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var cfg Config
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.Log != nil {
		cfg.Log = *raw.Log
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game.Mode == "" {
		c.Game.Mode = def.Game.Mode
		if len(c.Game.Piles) > 0 {
			c.Game.Mode = ModeUser
		}
	}
	if c.Game.Distribution == "" {
		c.Game.Distribution = def.Game.Distribution
	}
	if c.Display.Delay == "" {
		c.Display.Delay = def.Display.Delay
	}
	if c.Display.Format == "" {
		c.Display.Format = def.Display.Format
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Game.Mode {
	case ModeRandom, ModeUser:
	default:
		return fmt.Errorf("invalid mode %q (want random or user)", c.Game.Mode)
	}
	if _, err := solitaire.ParseDistribution(c.Game.Distribution); err != nil {
		return err
	}
	if c.Game.MaxRounds < 0 {
		return fmt.Errorf("invalid max_rounds: %d", c.Game.MaxRounds)
	}
	if len(c.Game.Piles) > 0 {
		if err := solitaire.ValidatePiles(c.Game.Piles); err != nil {
			return fmt.Errorf("invalid piles: %w", err)
		}
	}
	if _, err := c.DelayDuration(); err != nil {
		return err
	}
	if _, err := transcript.ParseFormat(c.Display.Format); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// DelayDuration parses the display delay.
func (c *Config) DelayDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Display.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid delay %q: %w", c.Display.Delay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid delay %q: must not be negative", c.Display.Delay)
	}
	return d, nil
}

// ColorEnabled reports whether coloured output is wanted.
func (c *Config) ColorEnabled() bool {
	return !c.Display.NoColor
}
