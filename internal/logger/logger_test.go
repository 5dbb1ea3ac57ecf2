package logger_test

import (
	"bytes"
	"testing"

	"codeberg.org/mutker/rootstatus/internal/errors"
	"codeberg.org/mutker/rootstatus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want logger.LogLevel
	}{
		{"debug", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warning", logger.WarnLevel},
		{"warn", logger.WarnLevel},
		{"error", logger.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevelInvalid(t *testing.T) {
	_, err := logger.ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
	assert.Contains(t, err.Error(), "loud")
}

func TestLoggerWritesComponentAndCode(t *testing.T) {
	logger.SetLogLevel(logger.DebugLevel)
	defer logger.SetLogLevel(logger.WarnLevel)

	var buf bytes.Buffer
	log := logger.New(&buf).With("sensors")

	log.Debug().Int("index", 2).Msg("device busy")
	log.ErrorWithCode(errors.New().New(errors.ErrMainLoop)).Msg("scan")

	out := buf.String()
	assert.Contains(t, out, "device busy")
	assert.Contains(t, out, "component=sensors")
	assert.Contains(t, out, "index=2")
	assert.Contains(t, out, "error_code=main_loop_failed")
}

func TestLoggerRespectsLevel(t *testing.T) {
	logger.SetLogLevel(logger.WarnLevel)

	var buf bytes.Buffer
	log := logger.New(&buf)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
