package webfetch

import "context"

// Response is a fetched resource.
type Response struct {
	// URL is the requested URL.
	URL string

	StatusCode int

	// ContentType is the raw Content-Type header value, possibly empty.
	ContentType string

	// Body is the response body decoded to UTF-8 text.
	Body string

	// IsHTML reports whether the body was classified as HTML.
	IsHTML bool
}

// Fetcher retrieves resources over the network.
type Fetcher interface {
	// Fetch retrieves the URL using the given user agent.
	// Returns EFETCH on transport failure and a *StatusError when the
	// server responds with status >= 400.
	Fetch(ctx context.Context, url, userAgent string) (*Response, error)
}

// RobotsChecker evaluates a site's robots.txt before autonomous fetches.
type RobotsChecker interface {
	// CheckMayFetch returns nil if userAgent may fetch url.
	// Returns a *PolicyDeniedError when fetching is not allowed and
	// EROBOTSFETCH when robots.txt could not be retrieved.
	CheckMayFetch(ctx context.Context, url, userAgent string) error
}

// RateLimiter provides per-host rate limiting.
type RateLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
