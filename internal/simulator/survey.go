package simulator

import (
	"context"
	"fmt"

	"github.com/lox/bulgarian-solitaire/internal/randutil"
	"github.com/lox/bulgarian-solitaire/internal/statistics"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

// Survey plays the given number of random games one after another, counting
// the rounds each took. Game i draws its starting piles from seed+i so any game
// can be replayed on its own.
func (s *Simulator) Survey(ctx context.Context, games int, seed int64, dist solitaire.Distribution) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}

	for game := 0; game < games; game++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("survey interrupted after %d games: %w", game, err)
		}

		gameSeed := seed + int64(game)
		board := solitaire.NewRandomBoard(randutil.New(gameSeed), dist)
		initial := board.Piles()

		result, err := s.Run(ctx, board, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("game %d (seed %d): %w", game+1, gameSeed, err)
		}

		stats.Add(statistics.GameResult{
			Seed:    gameSeed,
			Initial: initial,
			Rounds:  result.Rounds,
		})
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.logger.Info("Survey complete", "games", stats.Games, "mean", stats.Mean(), "max", stats.Max)
	return stats, nil
}
