// Package http provides an HTTP-based implementation of pagesafe.Fetcher
// that retries a page across several client identity profiles.
package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/fwojciec/pagesafe"
)

// Fetch defaults.
const (
	DefaultFetchTimeout = 15 * time.Second
	DefaultMaxRedirects = 5
	DefaultMaxBodyBytes = 10 << 20
)

// Ensure Fetcher implements pagesafe.Fetcher at compile time.
var _ pagesafe.Fetcher = (*Fetcher)(nil)

// AttemptFunc observes each identity profile attempt.
// err is nil for the attempt that succeeded.
type AttemptFunc func(attempt int, profile pagesafe.IdentityProfile, err error)

// Fetcher retrieves HTML content by trying identity profiles in order until
// one returns a non-empty body. It does not execute JavaScript.
type Fetcher struct {
	client *http.Client

	profiles           []pagesafe.IdentityProfile
	timeout            time.Duration
	maxRedirects       int
	maxBodyBytes       int64
	insecureSkipVerify bool
	transport          http.RoundTripper
	onAttempt          AttemptFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each attempt.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxRedirects sets how many redirects a single attempt follows.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithMaxBodyBytes caps how much of a decoded response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithProfiles replaces the ordered identity profiles.
// Defaults to pagesafe.DefaultProfiles().
func WithProfiles(profiles []pagesafe.IdentityProfile) Option {
	return func(f *Fetcher) {
		f.profiles = profiles
	}
}

// WithInsecureSkipVerify controls TLS certificate verification.
// Verification is skipped by default so self-signed and misconfigured
// sites can still be scraped; pass false to enforce it.
// Ignored when WithTransport is used.
func WithInsecureSkipVerify(skip bool) Option {
	return func(f *Fetcher) {
		f.insecureSkipVerify = skip
	}
}

// WithTransport sets the round tripper used for requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithAttemptFunc registers a callback invoked after every attempt.
func WithAttemptFunc(fn AttemptFunc) Option {
	return func(f *Fetcher) {
		f.onAttempt = fn
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		profiles:           pagesafe.DefaultProfiles(),
		timeout:            DefaultFetchTimeout,
		maxRedirects:       DefaultMaxRedirects,
		maxBodyBytes:       DefaultMaxBodyBytes,
		insecureSkipVerify: true,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: f.insecureSkipVerify} //nolint:gosec // opt-out is explicit
		transport = t
	}

	f.client = &http.Client{
		Timeout:       f.timeout,
		Transport:     transport,
		CheckRedirect: checkRedirect(f.maxRedirects),
	}

	return f
}

// InsecureSkipVerify reports whether TLS certificate verification is disabled.
func (f *Fetcher) InsecureSkipVerify() bool {
	return f.insecureSkipVerify
}

// Fetch retrieves the HTML content from the given URL. Profiles are tried
// sequentially; the first non-empty 2xx body is returned and later profiles
// are skipped. When every profile fails the returned *pagesafe.FetchError
// describes the last failure and lists all attempts.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if len(f.profiles) == 0 {
		return "", pagesafe.Errorf(pagesafe.EINVALID, "no identity profiles configured")
	}

	var attempts []pagesafe.FetchAttempt
	var last *pagesafe.FetchError
	for i, profile := range f.profiles {
		if err := ctx.Err(); err != nil {
			last = &pagesafe.FetchError{Kind: classifyError(err), URL: url, Err: err}
			break
		}

		body, ferr := f.fetchOnce(ctx, url, profile)
		if ferr == nil {
			f.notify(i+1, profile, nil)
			return body, nil
		}

		attempts = append(attempts, pagesafe.FetchAttempt{Profile: profile.Name, Err: ferr.Err})
		f.notify(i+1, profile, ferr)
		last = ferr
	}

	last.Attempts = attempts
	return "", last
}

func (f *Fetcher) notify(attempt int, profile pagesafe.IdentityProfile, err error) {
	if f.onAttempt != nil {
		f.onAttempt(attempt, profile, err)
	}
}

// fetchOnce issues a single GET with the given profile.
func (f *Fetcher) fetchOnce(ctx context.Context, url string, profile pagesafe.IdentityProfile) (string, *pagesafe.FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &pagesafe.FetchError{Kind: pagesafe.FetchOther, URL: url, Err: err}
	}
	for k, v := range profile.Headers {
		req.Header.Set(k, v)
	}
	if profile.UserAgent != "" {
		req.Header.Set("User-Agent", profile.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &pagesafe.FetchError{Kind: classifyError(err), URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &pagesafe.FetchError{
			Kind:       kindForStatus(resp.StatusCode),
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d for %s", resp.StatusCode, url),
		}
	}

	body, err := readBody(resp, f.maxBodyBytes)
	if err != nil {
		return "", &pagesafe.FetchError{Kind: classifyError(err), URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	if body == "" {
		return "", &pagesafe.FetchError{
			Kind:       pagesafe.FetchOther,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New("empty response body"),
		}
	}

	return body, nil
}

// Close releases idle connections held by the client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// checkRedirect allows at most limit redirects per request.
func checkRedirect(limit int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) > limit {
			return fmt.Errorf("stopped after %d redirects", limit)
		}
		return nil
	}
}

// classifyError maps transport errors onto fetch error kinds.
func classifyError(err error) pagesafe.FetchErrorKind {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return pagesafe.FetchTimeout
		}
		return pagesafe.FetchHostNotFound
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return pagesafe.FetchConnectionRefused
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pagesafe.FetchTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return pagesafe.FetchTimeout
	}
	return pagesafe.FetchOther
}

// kindForStatus maps HTTP status codes onto fetch error kinds.
func kindForStatus(code int) pagesafe.FetchErrorKind {
	switch code {
	case http.StatusForbidden:
		return pagesafe.FetchForbidden
	case http.StatusNotFound:
		return pagesafe.FetchPageNotFound
	case http.StatusTooManyRequests:
		return pagesafe.FetchRateLimited
	default:
		return pagesafe.FetchOther
	}
}
