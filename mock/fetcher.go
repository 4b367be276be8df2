package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/wikipedia"
)

var _ wikipedia.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikipedia.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, params url.Values) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, params url.Values) (string, error) {
	return f.FetchFn(ctx, params)
}
