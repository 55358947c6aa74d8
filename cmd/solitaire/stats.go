package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bulgarian-solitaire/cmd/solitaire/shared"
	"github.com/lox/bulgarian-solitaire/internal/randutil"
	"github.com/lox/bulgarian-solitaire/internal/simulator"
	"github.com/lox/bulgarian-solitaire/internal/statistics"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

type StatsCmd struct {
	Games        int    `default:"10000" help:"Number of random games to play"`
	Seed         *int64 `env:"SOLITAIRE_SEED" help:"Seed for the first game; game i uses seed+i (0 for time based)"`
	Distribution string `help:"How random configurations are drawn: sequential or uniform"`
	Histogram    bool   `help:"Print a histogram of round counts"`
}

func (c *StatsCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if err := overrideGame(cfg, c.Seed, c.Distribution, nil); err != nil {
		return err
	}
	dist, err := solitaire.ParseDistribution(cfg.Game.Distribution)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	_, seed := randutil.Resolve(cfg.Game.Seed)
	sim := simulator.New(simulator.Config{MaxRounds: cfg.Game.MaxRounds, Logger: logger})
	stats, err := sim.Survey(ctx, c.Games, seed, dist)
	if err != nil {
		return err
	}

	printStats(os.Stdout, stats, seed, dist, c.Histogram)
	return nil
}

func printStats(w io.Writer, stats *statistics.Statistics, seed int64, dist solitaire.Distribution, histogram bool) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d games, %d cards, %s starts (seed %d)",
		stats.Games, solitaire.CardTotal, dist, seed)))

	row := func(label, value string) {
		fmt.Fprintf(w, "  %-16s %s\n", label, valueStyle.Render(value))
	}
	row("Mean rounds", fmt.Sprintf("%.2f ± %.2f", stats.Mean(), 1.96*stats.StdError()))
	row("Std dev", fmt.Sprintf("%.2f", stats.StdDev()))
	row("Median", fmt.Sprintf("%.0f", stats.Median()))
	row("95th percentile", fmt.Sprintf("%.0f", stats.Percentile(0.95)))
	row("Min / Max", fmt.Sprintf("%d / %d", stats.Min, stats.Max))
	row("Already done", fmt.Sprintf("%d", stats.Instant))
	row("Longest start", fmt.Sprintf("%s (seed %d)", simulator.FormatPiles(stats.LongestInitial), stats.LongestSeed))

	if !histogram {
		return
	}

	h := stats.Histogram()
	rounds := make([]int, 0, len(h))
	peak := 0
	for r, n := range h {
		rounds = append(rounds, r)
		peak = max(peak, n)
	}
	sort.Ints(rounds)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Rounds to finish"))
	const width = 50
	for _, r := range rounds {
		n := h[r]
		bar := strings.Repeat("█", max(1, n*width/peak))
		fmt.Fprintf(w, "  %3d %s %d\n", r, barStyle.Render(bar), n)
	}
}
