package solitaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePiles(t *testing.T) {
	tests := []struct {
		name    string
		piles   []int
		wantErr error
	}{
		{name: "single pile", piles: []int{45}},
		{name: "final shape", piles: []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "empty", piles: nil, wantErr: ErrNoPiles},
		{name: "zero pile", piles: []int{0, 45}, wantErr: ErrEmptyPile},
		{name: "negative pile", piles: []int{46, -1}, wantErr: ErrEmptyPile},
		{name: "short", piles: []int{20, 20}, wantErr: ErrWrongTotal},
		{name: "over", piles: []int{20, 26}, wantErr: ErrWrongTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePiles(tt.piles)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTooManyPiles(t *testing.T) {
	piles := make([]int, CardTotal+1)
	for i := range piles {
		piles[i] = 1
	}
	assert.ErrorIs(t, ValidatePiles(piles), ErrTooManyPiles)
}
