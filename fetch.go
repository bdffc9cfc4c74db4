package webfetch

import (
	"context"
	"fmt"
	"net/url"
)

// Fetch request defaults and bounds.
const (
	DefaultMaxLength = 5000
	MaxLengthLimit   = 1000000
)

// FetchRequest is a request to fetch a URL and return a window of its content.
type FetchRequest struct {
	URL string

	// MaxLength is the maximum number of characters to return.
	MaxLength int

	// StartIndex is the character offset to start returning content from.
	StartIndex int

	// Raw disables HTML simplification.
	Raw bool
}

// Validate returns an error if the request contains invalid fields.
func (r *FetchRequest) Validate() error {
	if err := ValidateURL(r.URL); err != nil {
		return err
	}
	if r.MaxLength <= 0 || r.MaxLength >= MaxLengthLimit {
		return Errorf(EINVALID, "max_length must be greater than 0 and less than %d", MaxLengthLimit)
	}
	if r.StartIndex < 0 {
		return Errorf(EINVALID, "start_index must be greater than or equal to 0")
	}
	return nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return Errorf(EINVALID, "URL is required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "URL must use http or https: %q", rawURL)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "URL must have a host: %q", rawURL)
	}
	return nil
}

// FetchResult is the outcome of a fetch.
type FetchResult struct {
	URL string

	// Prefix is advisory text shown before the content, usually empty.
	Prefix string

	// Content already embeds continuation and error markers.
	Content string

	Truncated bool

	// NextStartIndex is only meaningful when Truncated is true.
	NextStartIndex int
}

// Text renders the result as returned to the tool caller.
func (r *FetchResult) Text() string {
	return fmt.Sprintf("%sContents of %s:\n%s", r.Prefix, r.URL, r.Content)
}

// FetchService runs the fetch pipeline.
type FetchService interface {
	// Fetch performs an autonomous fetch, subject to robots.txt, and
	// returns a window of the content.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)

	// FetchManual performs a user-initiated fetch. It uses the manual user
	// agent, skips the robots.txt check and returns the whole content.
	FetchManual(ctx context.Context, url string) (*FetchResult, error)
}
