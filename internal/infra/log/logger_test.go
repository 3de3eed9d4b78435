package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"market/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.Env.Log.Level = "loud"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, config.Log{Level: "warn"}, "market")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept",
		slog.String("token", "eyJhbGciOi"),
		slog.String("Authorization", "Bearer abc"),
		slog.String("advertisement", "0b4e7c1e"),
	)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "market", line["service"])
	assert.Equal(t, redactedValue, line["token"])
	assert.Equal(t, redactedValue, line["Authorization"])
	assert.Equal(t, "0b4e7c1e", line["advertisement"])
}
