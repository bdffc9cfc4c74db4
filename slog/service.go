package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
	"github.com/google/uuid"
)

// Ensure LoggingService implements webfetch.FetchService.
var _ webfetch.FetchService = (*LoggingService)(nil)

// LoggingService wraps a FetchService and logs every call with a request id.
type LoggingService struct {
	next   webfetch.FetchService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next webfetch.FetchService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Fetch delegates to the wrapped service and logs the operation.
func (s *LoggingService) Fetch(ctx context.Context, req *webfetch.FetchRequest) (result *webfetch.FetchResult, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "fetch", req.URL, begin, result, err,
			"max_length", req.MaxLength,
			"start_index", req.StartIndex,
			"raw", req.Raw,
		)
	}(time.Now())
	return s.next.Fetch(ctx, req)
}

// FetchManual delegates to the wrapped service and logs the operation.
func (s *LoggingService) FetchManual(ctx context.Context, url string) (result *webfetch.FetchResult, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "fetch manual", url, begin, result, err)
	}(time.Now())
	return s.next.FetchManual(ctx, url)
}

func (s *LoggingService) log(ctx context.Context, msg, url string, begin time.Time, result *webfetch.FetchResult, err error, extra ...any) {
	attrs := []any{
		"request_id", uuid.NewString(),
		"url", url,
	}
	attrs = append(attrs, extra...)
	if result != nil {
		attrs = append(attrs,
			"chars", len([]rune(result.Content)),
			"truncated", result.Truncated,
		)
	}
	attrs = append(attrs, "duration", time.Since(begin))

	if err != nil {
		attrs = append(attrs, "code", webfetch.ErrorCode(err), "err", err)
		s.logger.WarnContext(ctx, msg, attrs...)
		return
	}
	s.logger.InfoContext(ctx, msg, attrs...)
}
