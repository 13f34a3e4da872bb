package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Ensure LoggingExtractor implements pagesafe.Extractor.
var _ pagesafe.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagesafe.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesafe.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *pagesafe.ExtractResult, err error) {
	defer func(begin time.Time) {
		var words int
		var title string
		if result != nil {
			words = result.WordCount
			title = result.Title
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"title", title,
			"words", words,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
