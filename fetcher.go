package pagesafe

import (
	"context"
	"fmt"
)

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues GET requests against the URL and returns the first
	// non-empty response body. The URL must already be validated as an
	// absolute http(s) URL.
	// Returns a *FetchError when the page could not be retrieved.
	// The context controls cancellation between attempts.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// IdentityProfile is a client presentation used for a single fetch attempt.
// Headers are sent verbatim; UserAgent overrides any User-Agent header.
type IdentityProfile struct {
	Name      string
	UserAgent string
	Headers   map[string]string
}

// BrowserHeaders returns the browser-like header set sent alongside a
// profile's user agent.
func BrowserHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Accept-Encoding":           "gzip, deflate, br",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Cache-Control":             "max-age=0",
	}
}

// DefaultProfiles returns the ordered identity profiles tried by fetchers
// when none are configured: desktop Chrome on Windows, macOS and Linux.
func DefaultProfiles() []IdentityProfile {
	return []IdentityProfile{
		{
			Name:      "chrome-windows",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Headers:   BrowserHeaders(),
		},
		{
			Name:      "chrome-macos",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Headers:   BrowserHeaders(),
		},
		{
			Name:      "chrome-linux",
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			Headers:   BrowserHeaders(),
		},
	}
}

// FetchErrorKind classifies why a page could not be retrieved.
type FetchErrorKind string

// FetchErrorKind constants.
const (
	FetchHostNotFound      FetchErrorKind = "host_not_found"
	FetchConnectionRefused FetchErrorKind = "connection_refused"
	FetchTimeout           FetchErrorKind = "timeout"
	FetchForbidden         FetchErrorKind = "forbidden"
	FetchPageNotFound      FetchErrorKind = "page_not_found"
	FetchRateLimited       FetchErrorKind = "rate_limited"
	FetchOther             FetchErrorKind = "other"
)

// FetchAttempt records the outcome of a single identity profile attempt.
// Err is nil for the successful attempt.
type FetchAttempt struct {
	Profile string
	Err     error
}

// FetchSuggestions are shown to users alongside any fetch failure.
var FetchSuggestions = []string{
	"Make sure the URL is correct and includes http:// or https://",
	"Some websites block automated scraping",
	"Try a different website (e.g., https://example.com)",
	"The website might require JavaScript rendering",
}

// FetchError is returned when every identity profile failed.
// Kind, StatusCode and Err describe the last attempt.
type FetchError struct {
	Kind       FetchErrorKind
	URL        string
	StatusCode int
	Err        error
	Attempts   []FetchAttempt
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing description of the failure.
func (e *FetchError) Message() string {
	switch e.Kind {
	case FetchHostNotFound:
		return "Website not found. Please check the URL."
	case FetchConnectionRefused:
		return "Connection refused. The website is not accessible."
	case FetchTimeout:
		return "Request timed out. The website is taking too long to respond."
	case FetchForbidden:
		return "Access forbidden. The website is blocking scraping requests."
	case FetchPageNotFound:
		return "Page not found (404). Please check the URL."
	case FetchRateLimited:
		return "Too many requests. The website is rate limiting."
	default:
		return "Failed to scrape website"
	}
}

// Details returns the underlying cause as text, or "" if there is none.
func (e *FetchError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// ProbeResult reports whether a URL answered a HEAD request successfully.
type ProbeResult struct {
	Accessible bool              `json:"accessible"`
	StatusCode int               `json:"status"`
	Headers    map[string]string `json:"headers"`
}

// Prober checks URL accessibility without downloading the body.
type Prober interface {
	// Probe issues a HEAD request. Non-2xx statuses are reported through
	// ProbeResult.Accessible; transport failures return a *FetchError.
	Probe(ctx context.Context, url string) (*ProbeResult, error)
}
