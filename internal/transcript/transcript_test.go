package transcript

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bulgarian-solitaire/internal/simulator"
	"github.com/lox/bulgarian-solitaire/solitaire"
)

func recordGame(t *testing.T, piles []int) Transcript {
	t.Helper()
	rec := NewRecorder(7)
	_, err := simulator.New(simulator.Config{}).Run(context.Background(), solitaire.NewBoard(piles), rec, nil)
	require.NoError(t, err)
	return rec.Transcript()
}

func TestRecorder(t *testing.T) {
	tr := recordGame(t, []int{1, 2, 3, 4, 5, 6, 7, 17})

	assert.Equal(t, int64(7), tr.Seed)
	assert.Equal(t, 45, tr.Total)
	assert.Equal(t, 9, tr.FinalPiles)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 17}, tr.Initial)
	require.Len(t, tr.Rounds, 8)
	assert.Equal(t, Round{Number: 1, Piles: []int{1, 2, 3, 4, 5, 6, 16, 8}}, tr.Rounds[0])
	assert.True(t, tr.Done)
}

func TestWriteYAML(t *testing.T) {
	tr := recordGame(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 8})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr, FormatYAML))

	assert.Equal(t, `seed: 7
total: 45
final_piles: 9
initial: [1, 2, 3, 4, 5, 6, 7, 9, 8]
rounds: []
done: true
`, buf.String())
}

func TestWriteReadJSON(t *testing.T) {
	tr := recordGame(t, []int{45})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tr, FormatJSON))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"seed\": 7,"))

	back, err := Read(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, tr, back)
}

func TestWriteRejectsText(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Transcript{}, FormatText))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
