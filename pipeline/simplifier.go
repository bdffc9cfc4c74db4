package pipeline

import (
	"strings"

	"github.com/fwojciec/webfetch"
)

// Ensure Simplifier implements webfetch.Simplifier at compile time.
var _ webfetch.Simplifier = (*Simplifier)(nil)

// Simplifier isolates the main content of a page and renders it as Markdown.
type Simplifier struct {
	// Cleaner is optional. When set, it runs before extraction.
	Cleaner   webfetch.Cleaner
	Extractor webfetch.Extractor
	Converter webfetch.Converter
}

// Simplify converts html to Markdown. It returns
// webfetch.SimplifyFailedContent when no content can be extracted.
func (s *Simplifier) Simplify(html string) string {
	if s.Cleaner != nil {
		if cleaned, err := s.Cleaner.Clean(html); err == nil {
			html = cleaned
		}
	}

	result, err := s.Extractor.Extract(html)
	if err != nil || result == nil {
		return webfetch.SimplifyFailedContent
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return webfetch.SimplifyFailedContent
	}

	content, err := s.Converter.Convert(result.ContentHTML)
	if err != nil {
		return webfetch.SimplifyFailedContent
	}
	return content
}
