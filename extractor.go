package pagesafe

import (
	"regexp"
	"strings"
)

// Extraction limits.
const (
	// MaxTextLength caps the composed text in characters.
	MaxTextLength = 10000

	// MinContentLength is the shortest composed text accepted as meaningful.
	MinContentLength = 50

	// DefaultTitle is used when a page has neither <title> nor <h1>.
	DefaultTitle = "Untitled"
)

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Text is "Title: ...\n\nDescription: ...\n\n<content>",
	// truncated to MaxTextLength characters.
	Text string

	Title       string
	Description string

	// WordCount is the number of whitespace-delimited tokens in Text.
	WordCount int
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract parses raw HTML and returns the composed text with its
	// title and description metadata.
	// Returns EINVALID for empty input.
	Extract(html string) (*ExtractResult, error)
}

var (
	whitespaceRe = regexp.MustCompile(`[\s\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	newlinesRe   = regexp.MustCompile(`\n+`)
)

// NormalizeText collapses whitespace runs to a single space, newline runs to
// a single newline, and trims the result.
func NormalizeText(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = newlinesRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// ComposeResult builds an ExtractResult from already-normalized content.
// An empty title becomes DefaultTitle. The composed text is cut to
// MaxTextLength characters, possibly mid-word.
func ComposeResult(title, description, content string) *ExtractResult {
	if title == "" {
		title = DefaultTitle
	}
	text := "Title: " + title + "\n\nDescription: " + description + "\n\n" + content
	text = Truncate(text, MaxTextLength)
	return &ExtractResult{
		Text:        text,
		Title:       title,
		Description: description,
		WordCount:   len(strings.Fields(text)),
	}
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
