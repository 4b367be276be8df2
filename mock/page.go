package mock

import (
	"context"

	"github.com/fwojciec/wikipedia"
)

// Compile-time interface verification.
var (
	_ wikipedia.PageService = (*PageService)(nil)
	_ wikipedia.PageStore   = (*PageStore)(nil)
)

// PageService is a mock implementation of wikipedia.PageService.
type PageService struct {
	FindFn       func(ctx context.Context, title string, opts ...wikipedia.FindOption) (*wikipedia.Page, error)
	FindImageFn  func(ctx context.Context, title string, opts ...wikipedia.FindOption) (*wikipedia.Page, error)
	FindRandomFn func(ctx context.Context, opts ...wikipedia.FindOption) (*wikipedia.Page, error)
	ImageURLsFn  func(ctx context.Context, page *wikipedia.Page) ([]string, error)
}

func (s *PageService) Find(ctx context.Context, title string, opts ...wikipedia.FindOption) (*wikipedia.Page, error) {
	return s.FindFn(ctx, title, opts...)
}

func (s *PageService) FindImage(ctx context.Context, title string, opts ...wikipedia.FindOption) (*wikipedia.Page, error) {
	return s.FindImageFn(ctx, title, opts...)
}

func (s *PageService) FindRandom(ctx context.Context, opts ...wikipedia.FindOption) (*wikipedia.Page, error) {
	return s.FindRandomFn(ctx, opts...)
}

func (s *PageService) ImageURLs(ctx context.Context, page *wikipedia.Page) ([]string, error) {
	return s.ImageURLsFn(ctx, page)
}

// PageStore is a mock implementation of wikipedia.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, doc *wikipedia.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, doc *wikipedia.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
