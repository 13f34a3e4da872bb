package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagesafe"
	"github.com/fwojciec/pagesafe/mock"
	pslog "github.com/fwojciec/pagesafe/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCipher(t *testing.T) {
	t.Parallel()

	t.Run("encrypt logs size without secrets", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Cipher{
			EncryptFn: func(plaintext, passphrase string) (string, error) {
				return "aa:bb", nil
			},
		}

		cipher := pslog.NewLoggingCipher(inner, logger)
		blob, err := cipher.Encrypt("top secret text", "hunter2hunter2")

		require.NoError(t, err)
		assert.Equal(t, "aa:bb", blob)
		output := buf.String()
		assert.Contains(t, output, "encrypt")
		assert.Contains(t, output, "bytes=15")
		assert.NotContains(t, output, "top secret")
		assert.NotContains(t, output, "hunter2")
	})

	t.Run("decrypt logs error without secrets", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Cipher{
			DecryptFn: func(blob, passphrase string) (string, error) {
				return "", &pagesafe.CryptoError{Kind: pagesafe.CryptoWrongKeyOrCorrupt}
			},
		}

		cipher := pslog.NewLoggingCipher(inner, logger)
		_, err := cipher.Decrypt("aa:bb", "hunter2hunter2")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "decrypt")
		assert.Contains(t, output, "err=")
		assert.NotContains(t, output, "hunter2")
	})
}
