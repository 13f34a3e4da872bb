// Package goquery implements pagesafe.Extractor with CSS selector heuristics
// on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesafe"
)

// Ensure Extractor implements pagesafe.Extractor at compile time.
var _ pagesafe.Extractor = (*Extractor)(nil)

// DefaultRemoveSelectors lists boilerplate stripped before content selection.
var DefaultRemoveSelectors = []string{
	"script, style, nav, footer, header, iframe, noscript, svg",
	".advertisement, .ad, .sidebar, .cookie-banner, .popup",
}

// DefaultContentSelectors lists main-content candidates in priority order.
var DefaultContentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	".main-content",
	"#content",
	"#main",
	".post-content",
	".article-content",
	"body",
}

// DefaultMinContentChars is the length a candidate's text must exceed
// to be selected.
const DefaultMinContentChars = 100

// Extractor selects the main text region of a page using a prioritized
// selector list.
type Extractor struct {
	RemoveSelectors  []string
	ContentSelectors []string
	MinContentChars  int

	// OnSelect, if set, is called with the selector that produced the
	// content, or "body (fallback)" when none qualified.
	OnSelect func(selector string)
}

// NewExtractor creates an Extractor with the default selector lists.
func NewExtractor() *Extractor {
	return &Extractor{
		RemoveSelectors:  DefaultRemoveSelectors,
		ContentSelectors: DefaultContentSelectors,
		MinContentChars:  DefaultMinContentChars,
	}
}

// Extract parses raw HTML and returns the composed text with metadata.
//
// Boilerplate is removed once, before any content selector is evaluated.
// The first selector whose text exceeds MinContentChars wins; otherwise the
// full body text is used regardless of length.
func (e *Extractor) Extract(rawHTML string) (*pagesafe.ExtractResult, error) {
	if rawHTML == "" {
		return nil, pagesafe.Errorf(pagesafe.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagesafe.Errorf(pagesafe.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, sel := range e.RemoveSelectors {
		doc.Find(sel).Remove()
	}

	content := pagesafe.NormalizeText(e.selectContent(doc))

	return pagesafe.ComposeResult(title(doc), description(doc), content), nil
}

// selectContent returns the raw text of the first qualifying selector.
func (e *Extractor) selectContent(doc *goquery.Document) string {
	for _, sel := range e.ContentSelectors {
		found := doc.Find(sel)
		if found.Length() == 0 {
			continue
		}
		text := found.Text()
		if utf8.RuneCountInString(text) > e.MinContentChars {
			e.selected(sel)
			return text
		}
	}
	e.selected("body (fallback)")
	return doc.Find("body").Text()
}

func (e *Extractor) selected(selector string) {
	if e.OnSelect != nil {
		e.OnSelect(selector)
	}
}

// title returns the <title> text, else the first <h1>, trimmed.
// An empty result is replaced by pagesafe.DefaultTitle during composition.
func title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// description returns the meta description, else the Open Graph description.
func description(doc *goquery.Document) string {
	if d, _ := doc.Find(`meta[name="description"]`).Attr("content"); d != "" {
		return d
	}
	d, _ := doc.Find(`meta[property="og:description"]`).Attr("content")
	return d
}
