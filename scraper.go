package pagesafe

import (
	"context"
	"net/url"
)

// ScrapeResult is the outcome of a successful scrape.
type ScrapeResult struct {
	URL         string `json:"url"`
	Text        string `json:"text"`
	Title       string `json:"title"`
	Description string `json:"description"`
	WordCount   int    `json:"wordCount"`
}

// Scraper fetches a page and extracts its text.
type Scraper interface {
	// Scrape runs fetch, extraction and validation for a single URL.
	// Returns EINVALID for malformed URLs (before any network call),
	// a *FetchError when the page could not be retrieved, and
	// EINSUFFICIENT when the extracted text is shorter than MinContentLength.
	Scrape(ctx context.Context, rawURL string) (*ScrapeResult, error)
}

// ScrapeState is a step of the scrape pipeline.
type ScrapeState string

// ScrapeState constants, in pipeline order.
const (
	StateIdle       ScrapeState = "idle"
	StateFetching   ScrapeState = "fetching"
	StateExtracting ScrapeState = "extracting"
	StateValidating ScrapeState = "validating"
	StateDone       ScrapeState = "done"
	StateFailed     ScrapeState = "failed"
)

// ParseURL validates rawURL as an absolute http(s) URL.
func ParseURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, Errorf(EINVALID, "URL is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, Errorf(EINVALID, "Invalid URL format. Please include http:// or https://")
	}
	return u, nil
}

// Session carries one caller's scraped text between operations, such as
// scraping a page and then encrypting and saving it. A Session belongs to a
// single caller and is never shared between concurrent requests.
type Session struct {
	Result *ScrapeResult
}

// Text returns the most recently scraped text, or "" if nothing was scraped.
func (s *Session) Text() string {
	if s == nil || s.Result == nil {
		return ""
	}
	return s.Result.Text
}
