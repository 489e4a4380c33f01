package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLoggerWritesLevels(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := NewSlogLogger(slog.New(h))

	ctx := context.Background()
	log.Debug(ctx, "dbg", "k", "v")
	log.Info(ctx, "inf")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	out := buf.String()
	for _, want := range []string{"dbg", "inf", "wrn", "err", "k=v"} {
		require.Contains(t, out, want)
	}
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, nil)
	log := NewSlogLogger(slog.New(h)).With("component", "session")

	log.Info(context.Background(), "hello")
	require.True(t, strings.Contains(buf.String(), "component=session"))
}

func TestNewFallsBackToInfo(t *testing.T) {
	log := New("not-a-level")
	require.NotNil(t, log)
}
