package mock

import (
	"context"

	"github.com/fwojciec/webfetch"
)

var _ webfetch.FetchService = (*FetchService)(nil)

// FetchService is a mock implementation of webfetch.FetchService.
type FetchService struct {
	FetchFn       func(ctx context.Context, req *webfetch.FetchRequest) (*webfetch.FetchResult, error)
	FetchManualFn func(ctx context.Context, url string) (*webfetch.FetchResult, error)
}

func (s *FetchService) Fetch(ctx context.Context, req *webfetch.FetchRequest) (*webfetch.FetchResult, error) {
	return s.FetchFn(ctx, req)
}

func (s *FetchService) FetchManual(ctx context.Context, url string) (*webfetch.FetchResult, error) {
	return s.FetchManualFn(ctx, url)
}
