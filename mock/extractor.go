package mock

import "github.com/fwojciec/pagesafe"

var _ pagesafe.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesafe.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagesafe.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagesafe.ExtractResult, error) {
	return e.ExtractFn(html)
}
