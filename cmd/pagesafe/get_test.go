package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagesafe"
	main "github.com/fwojciec/pagesafe/cmd/pagesafe"
	"github.com/fwojciec/pagesafe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecordService(verified bool) *mock.RecordService {
	return &mock.RecordService{
		FindRecordByIDFn: func(_ context.Context, id string) (*pagesafe.Record, error) {
			if id != "rec-1" {
				return nil, pagesafe.Errorf(pagesafe.ENOTFOUND, "Item not found")
			}
			return &pagesafe.Record{
				ID:            "rec-1",
				URL:           "https://example.com",
				Title:         "Example",
				EncryptedText: "iv:ct",
				CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
		VerifyPassphraseFn: func(context.Context, string, string) (bool, error) {
			return verified, nil
		},
	}
}

func TestGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints encrypted text without key", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Records = testRecordService(true)

		cmd := &main.GetCmd{ID: "rec-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Title: Example")
		assert.Contains(t, stdout.String(), "iv:ct")
	})

	t.Run("decrypts with verified key", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Records = testRecordService(true)
		deps.Cipher = &mock.Cipher{
			DecryptFn: func(blob, passphrase string) (string, error) {
				return "plain text", nil
			},
		}

		cmd := &main.GetCmd{ID: "rec-1", Key: "longenough", JSON: true}
		require.NoError(t, cmd.Run(deps))

		got := decodeJSON(t, stdout)
		assert.Equal(t, "rec-1", got["id"])
		assert.Equal(t, "iv:ct", got["encryptedText"])
		assert.Equal(t, "plain text", got["decrypted"])
	})

	t.Run("rejects unverified key without decrypting", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Records = testRecordService(false)
		deps.Cipher = &mock.Cipher{
			DecryptFn: func(string, string) (string, error) {
				t.Fatal("decrypt should not be called")
				return "", nil
			},
		}

		cmd := &main.GetCmd{ID: "rec-1", Key: "wrong passphrase"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesafe.ECRYPTO, pagesafe.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Invalid key or corrupted data")
	})

	t.Run("reports missing record", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Records = testRecordService(true)

		cmd := &main.GetCmd{ID: "missing", JSON: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagesafe.ENOTFOUND, pagesafe.ErrorCode(err))
		got := decodeJSON(t, stdout)
		assert.Equal(t, false, got["success"])
		assert.Equal(t, "Item not found", got["error"])
	})
}
