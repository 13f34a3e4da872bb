// Package trafilatura provides a pagesafe.Extractor backed by go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagesafe"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagesafe.Extractor at compile time.
var _ pagesafe.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the composed main text.
func (e *Extractor) Extract(rawHTML string) (*pagesafe.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagesafe.Errorf(pagesafe.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return pagesafe.ComposeResult(
		strings.TrimSpace(result.Metadata.Title),
		strings.TrimSpace(result.Metadata.Description),
		pagesafe.NormalizeText(result.ContentText),
	), nil
}
