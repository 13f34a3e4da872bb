package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagesafe"
	"github.com/fwojciec/pagesafe/mock"
	pslog "github.com/fwojciec/pagesafe/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProber_Probe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Prober{
		ProbeFn: func(ctx context.Context, url string) (*pagesafe.ProbeResult, error) {
			return &pagesafe.ProbeResult{Accessible: true, StatusCode: 200}, nil
		},
	}

	prober := pslog.NewLoggingProber(inner, logger)
	result, err := prober.Probe(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.True(t, result.Accessible)
	output := buf.String()
	assert.Contains(t, output, "probe")
	assert.Contains(t, output, "status=200")
}
