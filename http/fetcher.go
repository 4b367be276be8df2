// Package http provides the HTTP implementation of wikipedia.Fetcher
// against the MediaWiki action API.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/wikipedia"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements wikipedia.Fetcher at compile time.
var _ wikipedia.Fetcher = (*Fetcher)(nil)

// Fetcher sends GET requests to the API endpoint of one wiki.
type Fetcher struct {
	client    *http.Client
	endpoint  string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit paces requests to at most rps per second, with no bursting.
// A non-positive rps disables pacing.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient replaces the underlying client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a Fetcher for the API endpoint described by cfg.
func NewFetcher(cfg wikipedia.Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		endpoint:  cfg.Endpoint(),
		userAgent: cfg.UserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Endpoint returns the API URL requests are sent to.
func (f *Fetcher) Endpoint() string {
	return f.endpoint
}

// Fetch sends params to the API and returns the response body.
func (f *Fetcher) Fetch(ctx context.Context, params url.Values) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("format", "json")
	u := f.endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
