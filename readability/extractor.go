// Package readability provides a webfetch.Extractor backed by go-readability,
// a port of Mozilla's Readability.
package readability

import (
	"strings"

	"github.com/fwojciec/webfetch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main content of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*webfetch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webfetch.Errorf(webfetch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &webfetch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        article.TextContent,
	}, nil
}
