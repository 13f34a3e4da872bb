// Package readability provides a pagesafe.Extractor backed by go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagesafe"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagesafe.Extractor at compile time.
var _ pagesafe.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
// The description is the article excerpt, which go-readability takes from
// the page's meta description or, failing that, the first paragraph.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return pagesafe.ComposeResult(
		strings.TrimSpace(article.Title),
		strings.TrimSpace(article.Excerpt),
		pagesafe.NormalizeText(article.TextContent),
	), nil
}
