package pagesafe_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagesafe"
	"github.com/stretchr/testify/assert"
)

func TestDefaultProfiles(t *testing.T) {
	t.Parallel()

	profiles := pagesafe.DefaultProfiles()

	assert.GreaterOrEqual(t, len(profiles), 3)
	agents := make(map[string]bool)
	for _, p := range profiles {
		assert.NotEmpty(t, p.Name)
		agents[p.UserAgent] = true
		for _, h := range []string{"Accept", "Accept-Language", "Accept-Encoding", "Connection", "Upgrade-Insecure-Requests", "Cache-Control"} {
			assert.NotEmpty(t, p.Headers[h], "profile %s header %s", p.Name, h)
		}
	}
	assert.Len(t, agents, len(profiles), "user agents should be distinct")
}

func TestFetchError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind pagesafe.FetchErrorKind
		want string
	}{
		{pagesafe.FetchHostNotFound, "Website not found. Please check the URL."},
		{pagesafe.FetchConnectionRefused, "Connection refused. The website is not accessible."},
		{pagesafe.FetchTimeout, "Request timed out. The website is taking too long to respond."},
		{pagesafe.FetchForbidden, "Access forbidden. The website is blocking scraping requests."},
		{pagesafe.FetchPageNotFound, "Page not found (404). Please check the URL."},
		{pagesafe.FetchRateLimited, "Too many requests. The website is rate limiting."},
		{pagesafe.FetchOther, "Failed to scrape website"},
	}
	for _, tt := range tests {
		err := &pagesafe.FetchError{Kind: tt.kind}
		assert.Equal(t, tt.want, err.Message(), string(tt.kind))
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("tls: bad certificate")
	err := &pagesafe.FetchError{Kind: pagesafe.FetchOther, URL: "https://example.com", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "tls: bad certificate", err.Details())
	assert.Contains(t, err.Error(), "https://example.com")
	assert.Empty(t, (&pagesafe.FetchError{}).Details())
}
