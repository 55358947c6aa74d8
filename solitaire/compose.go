package solitaire

import (
	"fmt"
	rand "math/rand/v2"
	"strings"
)

// Distribution selects how a random starting configuration is drawn.
type Distribution int

const (
	// Sequential draws the first pile from [1, total] and each later pile
	// from [1, remaining]. Later piles are biased towards being small.
	Sequential Distribution = iota

	// Uniform picks every composition of the total with equal probability.
	Uniform
)

func (d Distribution) String() string {
	switch d {
	case Sequential:
		return "sequential"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// ParseDistribution converts a name as printed by String back to a
// Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "uniform":
		return Uniform, nil
	default:
		return 0, fmt.Errorf("unknown distribution %q (want sequential or uniform)", s)
	}
}

// NewRandomBoard creates a board with a random starting configuration drawn
// from dist.
func NewRandomBoard(rng *rand.Rand, dist Distribution) *Board {
	return newBoard(FinalPiles, Compose(rng, CardTotal, dist))
}

// Compose splits total into positive parts using dist.
func Compose(rng *rand.Rand, total int, dist Distribution) []int {
	if total <= 0 {
		return nil
	}
	if dist == Uniform {
		return composeUniform(rng, total)
	}
	return composeSequential(rng, total)
}

func composeSequential(rng *rand.Rand, total int) []int {
	var parts []int
	for sum := 0; sum < total; {
		part := 1 + rng.IntN(total-sum)
		parts = append(parts, part)
		sum += part
	}
	return parts
}

// composeUniform lays the cards out in a row and cuts each of the total-1
// gaps with probability 1/2. Every subset of gaps is one composition.
func composeUniform(rng *rand.Rand, total int) []int {
	var parts []int
	run := 1
	for gap := 1; gap < total; gap++ {
		if rng.IntN(2) == 0 {
			parts = append(parts, run)
			run = 0
		}
		run++
	}
	return append(parts, run)
}
