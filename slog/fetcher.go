// Package slog provides logging decorators for pagesafe services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Ensure LoggingFetcher implements pagesafe.Fetcher.
var _ pagesafe.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagesafe.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagesafe.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// AttemptLogger returns a callback for http.WithAttemptFunc that logs
// each identity profile attempt at debug level.
func AttemptLogger(logger *slog.Logger) func(attempt int, profile pagesafe.IdentityProfile, err error) {
	return func(attempt int, profile pagesafe.IdentityProfile, err error) {
		logger.Debug("fetch attempt",
			"attempt", attempt,
			"profile", profile.Name,
			"err", err,
		)
	}
}
