package shared

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupLoggerTo(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "rounds", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "rounds=3")
}

func TestSetupLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := SetupLoggerTo(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}
