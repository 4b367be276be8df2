package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikipedia"
)

// Ensure LoggingPageService implements wikipedia.PageService.
var _ wikipedia.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with lookup logging.
type LoggingPageService struct {
	next   wikipedia.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next wikipedia.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

func (s *LoggingPageService) Find(ctx context.Context, title string, opts ...wikipedia.FindOption) (page *wikipedia.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find page",
			"title", title,
			"resolved", pageTitle(page),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Find(ctx, title, opts...)
}

func (s *LoggingPageService) FindImage(ctx context.Context, title string, opts ...wikipedia.FindOption) (page *wikipedia.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find image",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindImage(ctx, title, opts...)
}

func (s *LoggingPageService) FindRandom(ctx context.Context, opts ...wikipedia.FindOption) (page *wikipedia.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find random",
			"resolved", pageTitle(page),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRandom(ctx, opts...)
}

func (s *LoggingPageService) ImageURLs(ctx context.Context, page *wikipedia.Page) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("image urls",
			"title", pageTitle(page),
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImageURLs(ctx, page)
}

func pageTitle(p *wikipedia.Page) string {
	if p == nil {
		return ""
	}
	return p.Title()
}
