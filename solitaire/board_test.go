package solitaire

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bulgarian-solitaire/internal/randutil"
)

// roundCap is well above the known worst case of N*N - N rounds.
const roundCap = 1000

func playToEnd(t *testing.T, b *Board) int {
	t.Helper()
	rounds := 0
	for !b.IsDone() {
		require.Less(t, rounds, roundCap, "game did not terminate: %s", b)
		b.PlayRound()
		require.NoError(t, b.Validate())
		rounds++
	}
	return rounds
}

func TestConstants(t *testing.T) {
	assert.Equal(t, 9, FinalPiles)
	assert.Equal(t, 45, CardTotal)
}

func TestNewBoardPreservesOrder(t *testing.T) {
	piles := []int{10, 20, 15}
	b := NewBoard(piles)

	assert.Equal(t, []int{10, 20, 15}, b.Piles())
	assert.Equal(t, "10 20 15", b.String())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, CardTotal, b.Total())
	assert.Equal(t, FinalPiles, b.FinalPiles())

	piles[0] = 99
	assert.Equal(t, 10, b.Piles()[0], "board must not alias caller slice")
}

func TestPlayRoundSmallGame(t *testing.T) {
	b := newBoard(4, []int{10})
	require.Equal(t, 10, b.Total())

	want := []string{
		"9 1",
		"8 2",
		"7 1 2",
		"6 1 3",
		"5 2 3",
		"4 1 2 3",
	}

	assert.False(t, b.IsDone())
	for i, config := range want {
		b.PlayRound()
		assert.Equal(t, config, b.String(), "round %d", i+1)
		if i < len(want)-1 {
			assert.False(t, b.IsDone(), "round %d should not be terminal", i+1)
		}
	}
	assert.True(t, b.IsDone())
}

func TestPlayRoundNewPileSize(t *testing.T) {
	tests := []struct {
		name  string
		piles []int
		want  []int
	}{
		{
			name:  "single pile",
			piles: []int{45},
			want:  []int{44, 1},
		},
		{
			name:  "drops emptied piles and keeps order",
			piles: []int{1, 20, 1, 22, 1},
			want:  []int{19, 21, 5},
		},
		{
			name:  "all ones collapse into one pile",
			piles: slices.Repeat([]int{1}, 45),
			want:  []int{45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.piles)
			before := b.Len()

			b.PlayRound()

			got := b.Piles()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, before, got[len(got)-1])
			require.NoError(t, b.Validate())
		})
	}
}

func TestIsDone(t *testing.T) {
	tests := []struct {
		name  string
		piles []int
		want  bool
	}{
		{"sorted final", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, true},
		{"shuffled final", []int{9, 3, 1, 7, 5, 2, 8, 4, 6}, true},
		{"right count wrong sizes", []int{1, 2, 3, 4, 5, 6, 7, 7, 10}, false},
		{"too few piles", []int{45}, false},
		{"too many piles", []int{1, 1, 2, 3, 4, 5, 6, 7, 8, 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBoard(tt.piles).IsDone())
		})
	}
}

func TestAlreadyTerminal(t *testing.T) {
	b := newBoard(4, []int{1, 2, 3, 4})
	assert.True(t, b.IsDone())
	assert.Equal(t, 0, playToEnd(t, b))
	assert.Equal(t, "1 2 3 4", b.String())
}

func TestTerminalShape(t *testing.T) {
	rng := randutil.New(7)
	for i := 0; i < 200; i++ {
		b := NewRandomBoard(rng, Sequential)
		playToEnd(t, b)

		piles := b.Piles()
		slices.Sort(piles)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, piles)
	}
}

func TestDeterminism(t *testing.T) {
	start := []int{3, 17, 1, 1, 23}

	run := func() []string {
		b := NewBoard(start)
		configs := []string{b.String()}
		for !b.IsDone() {
			b.PlayRound()
			configs = append(configs, b.String())
		}
		return configs
	}

	first := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, run())
	}
}

func TestInvariantsHoldEveryRound(t *testing.T) {
	for _, dist := range []Distribution{Sequential, Uniform} {
		t.Run(dist.String(), func(t *testing.T) {
			rng := randutil.New(42)
			for game := 0; game < 100; game++ {
				b := NewRandomBoard(rng, dist)
				require.NoError(t, b.Validate())

				for rounds := 0; !b.IsDone(); rounds++ {
					require.Less(t, rounds, roundCap)
					b.PlayRound()

					sum := 0
					for _, p := range b.Piles() {
						require.Positive(t, p)
						sum += p
					}
					require.Equal(t, CardTotal, sum)
					require.LessOrEqual(t, b.Len(), CardTotal)
				}
			}
		})
	}
}

func TestTerminatesFromEveryCompositionOfTen(t *testing.T) {
	var compositions [][]int
	var walk func(prefix []int, remaining int)
	walk = func(prefix []int, remaining int) {
		if remaining == 0 {
			compositions = append(compositions, slices.Clone(prefix))
			return
		}
		for part := 1; part <= remaining; part++ {
			walk(append(prefix, part), remaining-part)
		}
	}
	walk(nil, 10)
	require.Len(t, compositions, 512)

	for _, c := range compositions {
		b := newBoard(4, c)
		rounds := playToEnd(t, b)
		assert.LessOrEqual(t, rounds, 4*4-4, "start %v", c)
	}
}
