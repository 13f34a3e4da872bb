package mock

import (
	"context"

	"github.com/fwojciec/pagesafe"
)

var (
	_ pagesafe.Fetcher = (*Fetcher)(nil)
	_ pagesafe.Prober  = (*Prober)(nil)
)

// Fetcher is a mock implementation of pagesafe.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// Prober is a mock implementation of pagesafe.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) (*pagesafe.ProbeResult, error)
}

func (p *Prober) Probe(ctx context.Context, url string) (*pagesafe.ProbeResult, error) {
	return p.ProbeFn(ctx, url)
}
