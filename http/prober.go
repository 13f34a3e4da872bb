package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagesafe"
)

// DefaultProbeTimeout bounds a single HEAD request.
const DefaultProbeTimeout = 5 * time.Second

// Ensure Prober implements pagesafe.Prober at compile time.
var _ pagesafe.Prober = (*Prober)(nil)

// Prober checks whether URLs respond to HEAD requests.
// Unlike Fetcher it verifies TLS certificates.
type Prober struct {
	client *http.Client
}

// NewProber creates a Prober. A zero timeout means DefaultProbeTimeout.
func NewProber(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		client: &http.Client{
			Timeout:       timeout,
			CheckRedirect: checkRedirect(DefaultMaxRedirects),
		},
	}
}

// Probe issues a HEAD request and reports the status and response headers.
func (p *Prober) Probe(ctx context.Context, url string) (*pagesafe.ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, pagesafe.Errorf(pagesafe.EINVALID, "invalid URL: %v", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &pagesafe.FetchError{Kind: classifyError(err), URL: url, Err: err}
	}
	defer resp.Body.Close()

	headers := make(map[string]string, len(resp.Header))
	for k, v := range resp.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ", ")
	}

	return &pagesafe.ProbeResult{
		Accessible: resp.StatusCode >= 200 && resp.StatusCode <= 299,
		StatusCode: resp.StatusCode,
		Headers:    headers,
	}, nil
}
