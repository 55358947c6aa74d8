package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bulgarian-solitaire/solitaire"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solitaire.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
game {
  distribution = "uniform"
  seed         = 42
  max_rounds   = 500
  piles        = [10, 20, 15]
}

display {
  single_step = true
  delay       = "250ms"
  format      = "yaml"
  no_color    = true
}

log {
  level = "debug"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeUser, cfg.Game.Mode, "piles imply user mode")
	assert.Equal(t, "uniform", cfg.Game.Distribution)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 500, cfg.Game.MaxRounds)
	assert.Equal(t, []int{10, 20, 15}, cfg.Game.Piles)
	assert.True(t, cfg.Display.SingleStep)
	assert.Equal(t, "yaml", cfg.Display.Format)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)

	d, err := cfg.DelayDuration()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  seed = 9
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeRandom, cfg.Game.Mode)
	assert.Equal(t, solitaire.Sequential.String(), cfg.Game.Distribution)
	assert.Equal(t, "text", cfg.Display.Format)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "syntax error",
			body: `game {`,
			want: "failed to parse",
		},
		{
			name: "unknown attribute",
			body: "game {\n  decks = 2\n}\n",
			want: "failed to decode",
		},
		{
			name: "bad piles",
			body: "game {\n  piles = [10, 10]\n}\n",
			want: "invalid piles",
		},
		{
			name: "bad mode",
			body: "game {\n  mode = \"network\"\n}\n",
			want: "invalid mode",
		},
		{
			name: "bad delay",
			body: "display {\n  delay = \"soon\"\n}\n",
			want: "invalid delay",
		},
		{
			name: "bad level",
			body: "log {\n  level = \"loud\"\n}\n",
			want: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
