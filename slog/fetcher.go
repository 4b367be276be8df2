// Package slog provides logging decorators for the wikipedia services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/wikipedia"
	"github.com/google/uuid"
)

// Ensure LoggingFetcher implements wikipedia.Fetcher.
var _ wikipedia.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   wikipedia.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikipedia.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs one line per API request.
// Each request gets a fresh ID so continuation rounds can be told apart.
func (f *LoggingFetcher) Fetch(ctx context.Context, params url.Values) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("api request",
			"request_id", uuid.NewString(),
			"action", params.Get("action"),
			"titles", params.Get("titles"),
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, params)
}
