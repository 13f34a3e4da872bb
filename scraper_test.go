package pagesafe_test

import (
	"testing"

	"github.com/fwojciec/pagesafe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	u, err := pagesafe.ParseURL("https://example.com/page?q=1")
	require.NoError(t, err)
	assert.Equal(t, "example.com", u.Host)

	for _, raw := range []string{"", "example.com", "mailto:someone@example.com", "https://", "://bad"} {
		_, err := pagesafe.ParseURL(raw)
		assert.Equal(t, pagesafe.EINVALID, pagesafe.ErrorCode(err), raw)
	}
}

func TestSession_Text(t *testing.T) {
	t.Parallel()

	var nilSession *pagesafe.Session
	assert.Empty(t, nilSession.Text())
	assert.Empty(t, (&pagesafe.Session{}).Text())

	s := &pagesafe.Session{Result: &pagesafe.ScrapeResult{Text: "scraped"}}
	assert.Equal(t, "scraped", s.Text())
}
