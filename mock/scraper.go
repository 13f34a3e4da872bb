package mock

import (
	"context"

	"github.com/fwojciec/pagesafe"
)

var _ pagesafe.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of pagesafe.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, rawURL string) (*pagesafe.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*pagesafe.ScrapeResult, error) {
	return s.ScrapeFn(ctx, rawURL)
}
