package mock

import "github.com/fwojciec/webfetch"

var _ webfetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webfetch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webfetch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webfetch.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ webfetch.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of webfetch.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}

var _ webfetch.Simplifier = (*Simplifier)(nil)

// Simplifier is a mock implementation of webfetch.Simplifier.
type Simplifier struct {
	SimplifyFn func(html string) string
}

func (s *Simplifier) Simplify(html string) string {
	return s.SimplifyFn(html)
}

var _ webfetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of webfetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
