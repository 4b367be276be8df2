package wikipedia

import (
	"context"
	"net/url"
)

// Fetcher performs one request against the MediaWiki action API.
type Fetcher interface {
	// Fetch sends params to the API endpoint and returns the raw JSON body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, params url.Values) (body string, err error)
}
