// Package slog provides logging decorators for webfetch interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
)

// Ensure LoggingFetcher implements webfetch.Fetcher.
var _ webfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   webfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url, userAgent string) (resp *webfetch.Response, err error) {
	defer func(begin time.Time) {
		var status, size int
		var contentType string
		if resp != nil {
			status, size, contentType = resp.StatusCode, len(resp.Body), resp.ContentType
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"content_type", contentType,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, userAgent)
}

// Ensure LoggingRobotsChecker implements webfetch.RobotsChecker.
var _ webfetch.RobotsChecker = (*LoggingRobotsChecker)(nil)

// LoggingRobotsChecker wraps a RobotsChecker with debug logging.
type LoggingRobotsChecker struct {
	next   webfetch.RobotsChecker
	logger *slog.Logger
}

// NewLoggingRobotsChecker creates a new LoggingRobotsChecker.
func NewLoggingRobotsChecker(next webfetch.RobotsChecker, logger *slog.Logger) *LoggingRobotsChecker {
	return &LoggingRobotsChecker{next: next, logger: logger}
}

// CheckMayFetch delegates to the wrapped checker and logs the verdict.
func (r *LoggingRobotsChecker) CheckMayFetch(ctx context.Context, url, userAgent string) (err error) {
	defer func(begin time.Time) {
		r.logger.Debug("robots check",
			"url", url,
			"user_agent", userAgent,
			"allowed", err == nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.CheckMayFetch(ctx, url, userAgent)
}
