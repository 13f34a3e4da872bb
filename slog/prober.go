package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Ensure LoggingProber implements pagesafe.Prober.
var _ pagesafe.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with logging.
type LoggingProber struct {
	next   pagesafe.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next pagesafe.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the operation.
func (p *LoggingProber) Probe(ctx context.Context, url string) (result *pagesafe.ProbeResult, err error) {
	defer func(begin time.Time) {
		var status int
		if result != nil {
			status = result.StatusCode
		}
		p.logger.Info("probe",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Probe(ctx, url)
}
