package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newWithCore(core).With(String("calculation", "spring"))

	l.Debug("evaluated", Float64("period", 3.14), Int("jobs", 2), Bool("strict", true), Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "evaluated", entries[0].Message)

	ctx := entries[0].ContextMap()
	require.Equal(t, "spring", ctx["calculation"])
	require.Equal(t, 3.14, ctx["period"])
	require.Equal(t, int64(2), ctx["jobs"])
	require.Equal(t, true, ctx["strict"])
	require.Equal(t, "boom", ctx["error"])
}

func TestNop(t *testing.T) {
	l := Nop()
	require.False(t, l.Enabled(LevelError))
	l.Info("dropped")
	l.Sync()
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)
	require.False(t, l.Enabled(LevelInfo))
	require.True(t, l.Enabled(LevelWarn))

	l.Info("dropped")
	l.Warn("kept", Any("inputs", map[string]float64{"k": 4}))
	l.Sync()
	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "WARN")
	require.Contains(t, buf.String(), "kept")
}
