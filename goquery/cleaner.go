// Package goquery provides HTML preprocessing backed by goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webfetch"
)

// Ensure Cleaner implements webfetch.Cleaner at compile time.
var _ webfetch.Cleaner = (*Cleaner)(nil)

// DefaultRemoveSelector matches elements that never carry readable content.
const DefaultRemoveSelector = "script, style, noscript, template, iframe, object, embed"

// Cleaner strips non-content elements from a page before extraction.
type Cleaner struct {
	selector string
}

// NewCleaner creates a Cleaner that removes elements matching
// DefaultRemoveSelector.
func NewCleaner() *Cleaner {
	return &Cleaner{selector: DefaultRemoveSelector}
}

// Clean parses html and returns it with all matching elements removed.
func (c *Cleaner) Clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", webfetch.Errorf(webfetch.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(c.selector).Remove()

	return goquery.OuterHtml(doc.Selection)
}
