package solitaire

import (
	"errors"
	"fmt"
)

var (
	ErrNoPiles      = errors.New("no piles")
	ErrEmptyPile    = errors.New("each pile must have at least one card")
	ErrWrongTotal   = errors.New("wrong number of cards")
	ErrTooManyPiles = errors.New("too many piles")
)

// ValidatePiles reports whether piles can start a game: at least one pile,
// every pile positive and CardTotal cards altogether.
func ValidatePiles(piles []int) error {
	return validatePiles(CardTotal, piles)
}

func validatePiles(total int, piles []int) error {
	if len(piles) == 0 {
		return ErrNoPiles
	}
	if len(piles) > total {
		return fmt.Errorf("%w: %d piles for %d cards", ErrTooManyPiles, len(piles), total)
	}

	sum := 0
	for i, p := range piles {
		if p <= 0 {
			return fmt.Errorf("%w: pile %d has %d cards", ErrEmptyPile, i+1, p)
		}
		sum += p
	}
	if sum != total {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongTotal, sum, total)
	}
	return nil
}
