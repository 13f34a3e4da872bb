// Package scrape provides the fetch-extract-validate pipeline.
// It sequences a Fetcher and an Extractor and rejects pages that yield
// too little text.
package scrape

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/pagesafe"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds ScrapeAll when Concurrency is unset.
const DefaultConcurrency = 4

// Ensure Scraper implements pagesafe.Scraper at compile time.
var _ pagesafe.Scraper = (*Scraper)(nil)

// StateFunc observes pipeline state transitions for a URL.
type StateFunc func(url string, state pagesafe.ScrapeState)

// Scraper orchestrates fetching and extraction of a single page.
// It holds no per-request state and is safe for concurrent use when its
// Fetcher and Extractor are.
type Scraper struct {
	Fetcher     pagesafe.Fetcher
	Extractor   pagesafe.Extractor
	Concurrency int
	OnState     StateFunc
}

// Scrape validates rawURL, fetches it, extracts its text and checks that
// the composed text reaches pagesafe.MinContentLength characters.
// There are no retries beyond the Fetcher's own identity fallback.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*pagesafe.ScrapeResult, error) {
	s.transition(rawURL, pagesafe.StateIdle)

	if _, err := pagesafe.ParseURL(rawURL); err != nil {
		return nil, s.fail(rawURL, err)
	}

	s.transition(rawURL, pagesafe.StateFetching)
	html, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, s.fail(rawURL, err)
	}

	s.transition(rawURL, pagesafe.StateExtracting)
	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, s.fail(rawURL, err)
	}

	s.transition(rawURL, pagesafe.StateValidating)
	if utf8.RuneCountInString(extracted.Text) < pagesafe.MinContentLength {
		return nil, s.fail(rawURL, pagesafe.Errorf(pagesafe.EINSUFFICIENT,
			"Could not extract meaningful content from the website. The site might be using JavaScript rendering or blocking scraping."))
	}

	s.transition(rawURL, pagesafe.StateDone)
	return &pagesafe.ScrapeResult{
		URL:         rawURL,
		Text:        extracted.Text,
		Title:       extracted.Title,
		Description: extracted.Description,
		WordCount:   extracted.WordCount,
	}, nil
}

// Item is the outcome of one URL in a batch.
type Item struct {
	Position int
	URL      string
	Result   *pagesafe.ScrapeResult
	Err      error
}

// ProgressFunc is called as each batch item completes. Calls are serialized.
type ProgressFunc func(item Item, completed, total int)

// ScrapeAll scrapes urls independently with bounded concurrency.
// A failing URL does not affect the others; items are returned in input order.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) []Item {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	items := make([]Item, len(urls))
	var mu sync.Mutex
	completed := 0

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, url := range urls {
		g.Go(func() error {
			item := Item{Position: i, URL: url}
			if err := ctx.Err(); err != nil {
				item.Err = err
			} else {
				item.Result, item.Err = s.Scrape(ctx, url)
			}
			items[i] = item

			mu.Lock()
			defer mu.Unlock()
			completed++
			if progress != nil {
				progress(item, completed, len(urls))
			}
			return nil
		})
	}
	_ = g.Wait()

	return items
}

func (s *Scraper) fail(url string, err error) error {
	s.transition(url, pagesafe.StateFailed)
	return err
}

func (s *Scraper) transition(url string, state pagesafe.ScrapeState) {
	if s.OnState != nil {
		s.OnState(url, state)
	}
}
