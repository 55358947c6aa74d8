package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one game played to its final configuration.
type GameResult struct {
	Seed    int64 // RNG seed the starting piles were drawn from (for replay)
	Initial []int // Starting configuration
	Rounds  int   // Rounds played until done
}

// Statistics summarises how many rounds games take to finish.
type Statistics struct {
	Games   int
	Sum     float64
	SumSq   float64   // Sum of squares for variance calculation
	Values  []float64 // All round counts for median/percentile calculation
	Min     int
	Max     int
	Instant int // Games that started in the final configuration

	// Longest game seen, for replay
	LongestSeed    int64
	LongestInitial []int
}

// Add incorporates a new game result.
func (s *Statistics) Add(result GameResult) {
	rounds := float64(result.Rounds)
	if s.Games == 0 || result.Rounds < s.Min {
		s.Min = result.Rounds
	}
	if s.Games == 0 || result.Rounds > s.Max {
		s.Max = result.Rounds
		s.LongestSeed = result.Seed
		s.LongestInitial = result.Initial
	}
	if result.Rounds == 0 {
		s.Instant++
	}

	s.Games++
	s.Sum += rounds
	s.SumSq += rounds * rounds
	s.Values = append(s.Values, rounds)
}

// Mean returns the average number of rounds per game.
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of the round counts.
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// Median returns the median round count.
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the round count at p (0.0 to 1.0), interpolating
// between neighbouring values.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Histogram returns how many games finished in each round count.
func (s *Statistics) Histogram() map[int]int {
	h := make(map[int]int, s.Max-s.Min+1)
	for _, v := range s.Values {
		h[int(v)]++
	}
	return h
}

// Validate checks that the accumulated data is internally consistent.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}
	if s.Min > s.Max {
		return fmt.Errorf("min rounds (%d) exceeds max rounds (%d)", s.Min, s.Max)
	}
	if s.Instant > s.Games {
		return fmt.Errorf("instant games (%d) exceeds total games (%d)", s.Instant, s.Games)
	}
	return nil
}
