package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	main "github.com/fwojciec/pagesafe/cmd/pagesafe"
	"github.com/stretchr/testify/require"
)

// pinger is a test double for the database health check.
type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}, stdout, stderr
}

func decodeJSON(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&got))
	return got
}
