package solitaire

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// FinalPiles is the number of piles in a finished game. Change this
	// rather than CardTotal, which must stay triangular for the game to end.
	FinalPiles = 9

	// CardTotal is 1 + 2 + ... + FinalPiles.
	CardTotal = FinalPiles * (FinalPiles + 1) / 2
)

// Board is a Bulgarian Solitaire configuration. It is not safe for concurrent
// use.
type Board struct {
	piles      []int
	finalPiles int
	total      int
}

// NewBoard creates a board with the given piles in left-to-right order.
// The caller must have checked piles with ValidatePiles.
func NewBoard(piles []int) *Board {
	return newBoard(FinalPiles, piles)
}

func newBoard(finalPiles int, piles []int) *Board {
	total := triangular(finalPiles)
	b := &Board{
		piles:      make([]int, len(piles), max(total, len(piles))),
		finalPiles: finalPiles,
		total:      total,
	}
	copy(b.piles, piles)
	b.assertValid()
	return b
}

// PlayRound takes one card from every pile and puts the removed cards in a
// new pile at the end. Piles left empty are dropped; the others keep their
// relative order.
func (b *Board) PlayRound() {
	taken := len(b.piles)

	kept := b.piles[:0]
	for _, p := range b.piles {
		if p > 1 {
			kept = append(kept, p-1)
		}
	}
	b.piles = append(kept, taken)

	b.assertValid()
}

// IsDone reports whether the board is in its final configuration: exactly
// FinalPiles piles holding 1..FinalPiles cards, in any order.
func (b *Board) IsDone() bool {
	if len(b.piles) != b.finalPiles {
		return false
	}
	for want := 1; want <= b.finalPiles; want++ {
		if !slices.Contains(b.piles, want) {
			return false
		}
	}
	return true
}

// String returns the pile sizes separated by single spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for i, p := range b.piles {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

// Piles returns a copy of the current pile sizes.
func (b *Board) Piles() []int {
	return slices.Clone(b.piles)
}

// Len returns the current number of piles.
func (b *Board) Len() int {
	return len(b.piles)
}

// Total returns the number of cards in play.
func (b *Board) Total() int {
	return b.total
}

// FinalPiles returns the number of piles in the finished configuration.
func (b *Board) FinalPiles() int {
	return b.finalPiles
}

// Validate checks the board's representation invariants.
func (b *Board) Validate() error {
	return validatePiles(b.total, b.piles)
}

func (b *Board) assertValid() {
	if !debugChecks {
		return
	}
	if err := b.Validate(); err != nil {
		panic("solitaire: invalid board: " + err.Error())
	}
}

func triangular(n int) int {
	return n * (n + 1) / 2
}
