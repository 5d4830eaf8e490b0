package logger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	attr := Scope("admin.dispatcher")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "admin.dispatcher", attr.Value.String())
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" error ", slog.LevelError},
		{"warn", slog.LevelWarn},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFromEnvDebugOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	l := NewFromEnv(io.Discard, true)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = NewFromEnv(io.Discard, false)
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestNewWritesText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Info("hello", Scope("test"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "scope=test")
}
