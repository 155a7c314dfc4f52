package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	err := NewUserError("transaction TXN-999 not found", ErrNotFound)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "transaction TXN-999 not found: not found", err.Error())
	assert.Equal(t, "transaction TXN-999 not found", UserMessage(err))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Equal(t, "plain", (&UserError{UserMessage: "plain"}).Error())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	SetupLogger(&buf, slog.LevelInfo, "json")

	LogDebug("hidden", nil)
	LogError(errors.New("disk full"), "export failed", Fields{"rows": 3})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "export failed", entry["msg"])
	assert.Equal(t, "disk full", entry["error"])
	assert.InDelta(t, 3, entry["rows"], 0)
}
