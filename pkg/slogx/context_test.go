package slogx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mygbu/authcore/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestWithContextRoundTrip(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := slogx.WithContext(context.Background(), logger)

	require.Same(t, logger, slogx.FromContext(ctx))
}

func TestWithRequestIDAttachesAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := slogx.WithContext(context.Background(), logger)
	ctx = slogx.WithRequestID(ctx, "01JTESTREQID")

	slogx.FromContext(ctx).Info("ping")
	require.Contains(t, buf.String(), "req_id=01JTESTREQID")
}
