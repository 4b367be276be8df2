package wikipedia

import (
	"strings"
)

// Default configuration values.
const (
	DefaultProtocol     = "https"
	DefaultDomain       = "en.wikipedia.org"
	DefaultPath         = "w/api.php"
	DefaultUserAgent    = "wikipedia-go/1.0 (https://github.com/fwojciec/wikipedia)"
	DefaultMaxRedirects = 5
)

// Config describes which wiki to talk to and how pages are resolved.
// It is passed explicitly to the client and transport constructors.
type Config struct {
	// Protocol is the URL scheme of the API endpoint ("https" or "http").
	Protocol string

	// Domain is the wiki host, e.g. "en.wikipedia.org" or "ja.wikipedia.org".
	Domain string

	// Path is the API script path relative to the domain root.
	Path string

	// UserAgent is sent with every request. Wikimedia asks clients to
	// identify themselves with contact information.
	UserAgent string

	// FollowRedirects makes Find resolve redirect pages to their target.
	FollowRedirects bool

	// MaxRedirects bounds the number of redirect hops Find will follow.
	MaxRedirects int
}

// DefaultConfig returns the configuration for English Wikipedia.
func DefaultConfig() Config {
	return Config{
		Protocol:        DefaultProtocol,
		Domain:          DefaultDomain,
		Path:            DefaultPath,
		UserAgent:       DefaultUserAgent,
		FollowRedirects: true,
		MaxRedirects:    DefaultMaxRedirects,
	}
}

// Endpoint returns the absolute API URL without query parameters.
func (c Config) Endpoint() string {
	return c.Protocol + "://" + c.Domain + "/" + strings.TrimPrefix(c.Path, "/")
}

// BaseURL returns the wiki root URL, used to resolve relative article links.
func (c Config) BaseURL() string {
	return c.Protocol + "://" + c.Domain
}

// Validate returns an error if the configuration cannot produce a usable endpoint.
func (c Config) Validate() error {
	if c.Protocol != "http" && c.Protocol != "https" {
		return Errorf(EINVALID, "unsupported protocol %q", c.Protocol)
	}
	if c.Domain == "" {
		return Errorf(EINVALID, "wiki domain required")
	}
	if strings.ContainsAny(c.Domain, "/?# ") {
		return Errorf(EINVALID, "invalid wiki domain %q", c.Domain)
	}
	if c.Path == "" {
		return Errorf(EINVALID, "API path required")
	}
	if c.MaxRedirects < 0 {
		return Errorf(EINVALID, "max redirects must not be negative")
	}
	return nil
}
