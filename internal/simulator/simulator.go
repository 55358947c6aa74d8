// Package simulator drives a solitaire board to its final configuration,
// reporting every round to a Monitor.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/bulgarian-solitaire/solitaire"
)

// ErrRoundLimit is returned when a game is still running after MaxRounds.
var ErrRoundLimit = errors.New("round limit reached")

// Config holds configuration for running games
type Config struct {
	MaxRounds int // 0 for unlimited
	Logger    *log.Logger
}

// Result describes a finished game.
type Result struct {
	Rounds int
	Final  []int
}

// Simulator plays boards until they are done.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
	}
}

// Run plays board to completion. The monitor sees the starting configuration,
// every round and the completion; the stepper is consulted after each round
// that leaves the board unfinished.
func (s *Simulator) Run(ctx context.Context, board *solitaire.Board, monitor Monitor, stepper Stepper) (Result, error) {
	if monitor == nil {
		monitor = NullMonitor{}
	}
	if stepper == nil {
		stepper = NoPause{}
	}

	monitor.OnStart(board.Piles())
	s.logger.Debug("Game started", "piles", board.Len(), "config", board.String())

	rounds := 0
	for !board.IsDone() {
		if s.config.MaxRounds > 0 && rounds >= s.config.MaxRounds {
			s.logger.Warn("Round limit reached", "rounds", rounds, "config", board.String())
			return Result{Rounds: rounds, Final: board.Piles()}, fmt.Errorf("%w after %d rounds", ErrRoundLimit, rounds)
		}

		board.PlayRound()
		rounds++
		monitor.OnRound(rounds, board.Piles())
		s.logger.Debug("Round played", "round", rounds, "piles", board.Len())

		if board.IsDone() {
			break
		}
		if err := stepper.Wait(ctx); err != nil {
			return Result{Rounds: rounds, Final: board.Piles()}, fmt.Errorf("game interrupted: %w", err)
		}
	}

	monitor.OnComplete(rounds)
	s.logger.Debug("Game finished", "rounds", rounds)
	return Result{Rounds: rounds, Final: board.Piles()}, nil
}

// FormatPiles renders pile sizes separated by single spaces.
func FormatPiles(piles []int) string {
	parts := make([]string, len(piles))
	for i, p := range piles {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}
