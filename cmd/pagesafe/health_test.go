package main_test

import (
	"errors"
	"testing"
	"time"

	main "github.com/fwojciec/pagesafe/cmd/pagesafe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCmd_Run(t *testing.T) {
	t.Parallel()

	fixed := func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	t.Run("reports connected database", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.DB = pinger{}
		deps.Now = fixed

		cmd := &main.HealthCmd{JSON: true}
		require.NoError(t, cmd.Run(deps))

		assert.JSONEq(t, `{"status":"OK","database":"Connected","timestamp":"2026-03-01T12:00:00Z"}`, stdout.String())
	})

	t.Run("reports disconnected database", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.DB = pinger{err: errors.New("closed")}
		deps.Now = fixed

		cmd := &main.HealthCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "database: Disconnected")
	})

	t.Run("reports missing database as disconnected", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()

		cmd := &main.HealthCmd{JSON: true}
		require.Error(t, cmd.Run(deps))

		got := decodeJSON(t, stdout)
		assert.Equal(t, "Disconnected", got["database"])
	})
}
