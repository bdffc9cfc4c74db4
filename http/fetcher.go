// Package http provides HTTP-based implementations of webfetch.Fetcher
// and webfetch.RobotsChecker.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/webfetch"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for resource requests.
const DefaultFetchTimeout = 30 * time.Second

// htmlSniffLen is the number of leading characters searched for "<html".
const htmlSniffLen = 100

// Ensure Fetcher implements webfetch.Fetcher at compile time.
var _ webfetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources using HTTP GET requests.
// It does not execute JavaScript. Safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	limiter webfetch.RateLimiter
}

// Option configures a Fetcher or a RobotsChecker.
type Option func(*options)

type options struct {
	timeout time.Duration
	limiter webfetch.RateLimiter
	client  *http.Client
}

// WithTimeout sets the timeout for HTTP requests.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithRateLimiter makes every request wait on limiter for the target host.
func WithRateLimiter(l webfetch.RateLimiter) Option {
	return func(o *options) {
		o.limiter = l
	}
}

// WithHTTPClient sets the underlying client. Its Timeout is replaced by
// the configured timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func newOptions(timeout time.Duration, opts []Option) *options {
	o := &options{timeout: timeout}
	for _, opt := range opts {
		opt(o)
	}
	if o.client == nil {
		o.client = &http.Client{}
	} else {
		c := *o.client
		o.client = &c
	}
	o.client.Timeout = o.timeout
	return o
}

// NewFetcher creates a new HTTP-based Fetcher.
// Defaults to DefaultFetchTimeout if no timeout is given.
func NewFetcher(opts ...Option) *Fetcher {
	o := newOptions(DefaultFetchTimeout, opts)
	return &Fetcher{
		client:  o.client,
		limiter: o.limiter,
	}
}

// Fetch retrieves the resource at rawURL, following redirects.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, userAgent string) (*webfetch.Response, error) {
	resp, err := get(ctx, f.client, f.limiter, rawURL, userAgent)
	if err != nil {
		return nil, webfetch.WrapError(webfetch.EFETCH, err, "Failed to fetch %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &webfetch.StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := readText(resp.Body, contentType)
	if err != nil {
		return nil, webfetch.WrapError(webfetch.EFETCH, err, "Failed to fetch %s", rawURL)
	}

	return &webfetch.Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
		IsHTML:      IsHTML(body, contentType),
	}, nil
}

// IsHTML classifies a response body as HTML. The checks run in order:
// "<html" within the first 100 characters, a text/html content type, or a
// missing content type.
func IsHTML(body, contentType string) bool {
	return strings.Contains(prefix(body, htmlSniffLen), "<html") ||
		strings.Contains(contentType, "text/html") ||
		contentType == ""
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// get issues a GET request for rawURL with the given user agent.
func get(ctx context.Context, client *http.Client, limiter webfetch.RateLimiter, rawURL, userAgent string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	if limiter != nil {
		if err := limiter.Wait(ctx, req.URL.Host); err != nil {
			return nil, err
		}
	}

	return client.Do(req)
}

// readText reads r and decodes it to UTF-8 using the charset declared in
// contentType or sniffed from the content.
func readText(r io.Reader, contentType string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	enc, _, certain := charset.DetermineEncoding(raw, contentType)
	if !certain && utf8.Valid(raw) {
		return string(raw), nil
	}
	body, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		// Undecodable input is returned as-is.
		return string(raw), nil
	}
	return string(body), nil
}
