// Package pipeline implements the fetch pipeline: robots check, fetch,
// simplification and windowing.
package pipeline

import (
	"context"
	"fmt"

	"github.com/fwojciec/webfetch"
)

// Ensure Service implements webfetch.FetchService at compile time.
var _ webfetch.FetchService = (*Service)(nil)

// Service runs the fetch pipeline. It holds no mutable state and is safe
// for concurrent use when its dependencies are.
type Service struct {
	Robots     webfetch.RobotsChecker
	Fetcher    webfetch.Fetcher
	Simplifier webfetch.Simplifier
	UserAgents webfetch.UserAgents

	// IgnoreRobotsTxt disables the robots.txt check for autonomous fetches.
	IgnoreRobotsTxt bool
}

// Fetch validates req, checks robots.txt, fetches the URL and returns the
// requested window of its content.
func (s *Service) Fetch(ctx context.Context, req *webfetch.FetchRequest) (*webfetch.FetchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !s.IgnoreRobotsTxt {
		if err := s.Robots.CheckMayFetch(ctx, req.URL, s.UserAgents.Autonomous); err != nil {
			return nil, err
		}
	}

	resp, err := s.Fetcher.Fetch(ctx, req.URL, s.UserAgents.Autonomous)
	if err != nil {
		return nil, err
	}

	content, prefix := s.render(resp, req.Raw)
	window := webfetch.Window(content, req.StartIndex, req.MaxLength)

	return &webfetch.FetchResult{
		URL:            req.URL,
		Prefix:         prefix,
		Content:        window.Content,
		Truncated:      window.Truncated,
		NextStartIndex: window.NextStartIndex,
	}, nil
}

// FetchManual fetches rawURL on behalf of a user. The robots.txt check is
// skipped and the whole content is returned.
func (s *Service) FetchManual(ctx context.Context, rawURL string) (*webfetch.FetchResult, error) {
	if err := webfetch.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	resp, err := s.Fetcher.Fetch(ctx, rawURL, s.UserAgents.Manual)
	if err != nil {
		return nil, err
	}

	content, prefix := s.render(resp, false)
	return &webfetch.FetchResult{
		URL:     rawURL,
		Prefix:  prefix,
		Content: content,
	}, nil
}

// render simplifies HTML responses unless raw is set. Anything else is
// passed through with a prefix explaining why.
func (s *Service) render(resp *webfetch.Response, raw bool) (content, prefix string) {
	if resp.IsHTML && !raw {
		return s.Simplifier.Simplify(resp.Body), ""
	}
	return resp.Body, RawContentPrefix(resp.ContentType)
}

// RawContentPrefix returns the prefix shown before unsimplified content.
func RawContentPrefix(contentType string) string {
	return fmt.Sprintf("Content type %s cannot be simplified to markdown, but here is the raw content:\n", contentType)
}
