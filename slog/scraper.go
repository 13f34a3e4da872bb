package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Ensure LoggingScraper implements pagesafe.Scraper.
var _ pagesafe.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   pagesafe.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next pagesafe.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, rawURL string) (result *pagesafe.ScrapeResult, err error) {
	defer func(begin time.Time) {
		var words int
		if result != nil {
			words = result.WordCount
		}
		s.logger.Info("scrape",
			"url", rawURL,
			"words", words,
			"code", pagesafe.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, rawURL)
}

// StateLogger returns a callback for scrape.Scraper.OnState that logs
// pipeline transitions at debug level.
func StateLogger(logger *slog.Logger) func(url string, state pagesafe.ScrapeState) {
	return func(url string, state pagesafe.ScrapeState) {
		logger.Debug("scrape state", "url", url, "state", string(state))
	}
}
