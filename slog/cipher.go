package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Ensure LoggingCipher implements pagesafe.Cipher.
var _ pagesafe.Cipher = (*LoggingCipher)(nil)

// LoggingCipher wraps a Cipher with logging. Passphrases and plaintext
// are never logged.
type LoggingCipher struct {
	next   pagesafe.Cipher
	logger *slog.Logger
}

// NewLoggingCipher creates a new LoggingCipher.
func NewLoggingCipher(next pagesafe.Cipher, logger *slog.Logger) *LoggingCipher {
	return &LoggingCipher{next: next, logger: logger}
}

// Encrypt delegates to the wrapped cipher and logs the operation.
func (c *LoggingCipher) Encrypt(plaintext, passphrase string) (blob string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("encrypt",
			"bytes", len(plaintext),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Encrypt(plaintext, passphrase)
}

// Decrypt delegates to the wrapped cipher and logs the operation.
func (c *LoggingCipher) Decrypt(blob, passphrase string) (plaintext string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("decrypt",
			"bytes", len(blob),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Decrypt(blob, passphrase)
}
