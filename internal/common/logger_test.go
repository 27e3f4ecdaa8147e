package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, "info", "json"))

	LogInfo("loaded ledger", Fields{"transactions": 3})
	LogError(errors.New("boom"), "failed to parse", Fields{"file": "a.ofx"})
	slog.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, `"msg":"loaded ledger"`)
	assert.Contains(t, out, `"transactions":3`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.NotContains(t, out, "hidden")

	assert.ErrorIs(t, SetupLogger(&buf, "info", "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	inner := errors.New("no such file")
	err := NewUserError("Could not open ledger", inner)

	assert.Equal(t, "Could not open ledger: no such file", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "Could not open ledger", UserMessage(err))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
