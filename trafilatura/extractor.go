// Package trafilatura provides a webfetch.Extractor backed by go-trafilatura.
// It is an alternative to the readability extractor that tends to keep
// more of the page on long documentation and listing pages.
package trafilatura

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/webfetch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// MinTextLength is the number of characters trafilatura must extract on
// its own before its result is preferred over the fallback extractor.
const MinTextLength = 250

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*Extractor)(nil)

// Extractor isolates main content with go-trafilatura. Short pages, and
// pages trafilatura cannot handle, go to the fallback extractor.
//
// trafilatura's built-in fallback is disabled: it merges its own and the
// fallback candidates into one node, repeating the page text.
type Extractor struct {
	opts     trafilatura.Options
	fallback webfetch.Extractor
}

// NewExtractor creates a new Extractor. fallback may be nil, in which case
// trafilatura's own result is always returned.
func NewExtractor(fallback webfetch.Extractor) *Extractor {
	return &Extractor{
		opts:     trafilatura.Options{EnableFallback: false},
		fallback: fallback,
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webfetch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webfetch.Errorf(webfetch.EINVALID, "empty HTML input")
	}

	extracted, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if e.fallback != nil && (err != nil || extracted == nil || extracted.ContentNode == nil ||
		utf8.RuneCountInString(strings.TrimSpace(extracted.ContentText)) < MinTextLength) {
		return e.fallback.Extract(rawHTML)
	}
	if err != nil {
		return nil, err
	}

	result := &webfetch.ExtractResult{
		Title: extracted.Metadata.Title,
		Text:  extracted.ContentText,
	}
	if extracted.ContentNode == nil {
		return result, nil
	}

	var sb strings.Builder
	if err := html.Render(&sb, extracted.ContentNode); err != nil {
		return nil, err
	}
	result.ContentHTML = sb.String()
	return result, nil
}
