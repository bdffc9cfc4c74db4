package mock

import (
	"context"

	"github.com/fwojciec/webfetch"
)

var _ webfetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webfetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, userAgent string) (*webfetch.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url, userAgent string) (*webfetch.Response, error) {
	return f.FetchFn(ctx, url, userAgent)
}

var _ webfetch.RobotsChecker = (*RobotsChecker)(nil)

// RobotsChecker is a mock implementation of webfetch.RobotsChecker.
type RobotsChecker struct {
	CheckMayFetchFn func(ctx context.Context, url, userAgent string) error
}

func (r *RobotsChecker) CheckMayFetch(ctx context.Context, url, userAgent string) error {
	return r.CheckMayFetchFn(ctx, url, userAgent)
}

var _ webfetch.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of webfetch.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (r *RateLimiter) Wait(ctx context.Context, host string) error {
	return r.WaitFn(ctx, host)
}
