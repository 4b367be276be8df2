package wikipedia

import (
	"context"
	"maps"
	"net/url"
	"strconv"
	"strings"
)

const (
	// maxContinuations bounds how many continuation rounds a single query follows.
	maxContinuations = 50

	// imageBatchSize is the number of titles the API accepts per request.
	imageBatchSize = 50

	pageProps = "info|revisions|links|extlinks|images|categories|coordinates|templates|extracts|pageimages|langlinks"
)

// Ensure Client implements PageService.
var _ PageService = (*Client)(nil)

// Client looks up pages through the MediaWiki action API.
type Client struct {
	fetcher Fetcher
	config  Config
}

// NewClient creates a Client that sends requests through f. Redirect
// handling is taken from cfg; the endpoint belongs to the Fetcher.
func NewClient(f Fetcher, cfg Config) *Client {
	return &Client{fetcher: f, config: cfg}
}

// FindOption configures a single lookup.
type FindOption func(*findConfig)

type findConfig struct {
	params      url.Values
	imageURLs   bool
	htmlExtract bool
}

// WithParam sets an arbitrary API parameter, replacing any default.
func WithParam(key, value string) FindOption {
	return func(c *findConfig) {
		c.params.Set(key, value)
	}
}

// WithSection restricts the revision content to one section (0 is the lead).
func WithSection(n int) FindOption {
	return func(c *findConfig) {
		c.params.Set("rvsection", strconv.Itoa(n))
	}
}

// WithIntro restricts the extract to the text before the first heading.
func WithIntro() FindOption {
	return func(c *findConfig) {
		c.params.Set("exintro", "1")
	}
}

// WithHTMLExtract requests the extract as limited HTML instead of plain text.
func WithHTMLExtract() FindOption {
	return func(c *findConfig) {
		c.params.Del("explaintext")
		c.htmlExtract = true
	}
}

// WithImageURLs resolves the file URL of every image on the page after lookup.
func WithImageURLs() FindOption {
	return func(c *findConfig) {
		c.imageURLs = true
	}
}

// WithImageSize requests a scaled thumbnail URL for image pages.
// Non-positive dimensions are ignored.
func WithImageSize(width, height int) FindOption {
	return func(c *findConfig) {
		if width > 0 {
			c.params.Set("iiurlwidth", strconv.Itoa(width))
		}
		if height > 0 {
			c.params.Set("iiurlheight", strconv.Itoa(height))
		}
	}
}

func newFindConfig(params url.Values, opts []FindOption) *findConfig {
	c := &findConfig{params: params}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Find retrieves an article by title. When the client follows redirects,
// redirect pages are replaced by their target, up to MaxRedirects hops.
func (c *Client) Find(ctx context.Context, title string, opts ...FindOption) (*Page, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, Errorf(EINVALID, "title required")
	}

	var page *Page
	seen := make(map[string]bool)
	for hops := 0; ; hops++ {
		fc := newFindConfig(findParams(title), opts)
		resp, err := c.queryAll(ctx, fc.params)
		if err != nil {
			return nil, err
		}
		if page, err = firstPage(resp, title); err != nil {
			return nil, err
		}
		seen[page.Title()] = true

		if !c.config.FollowRedirects || !page.IsRedirect() || hops >= c.config.MaxRedirects {
			break
		}
		target := page.RedirectTitle()
		if target == "" || seen[target] {
			break
		}
		title = target
	}

	fc := newFindConfig(url.Values{}, opts)
	page.htmlExtract = fc.htmlExtract
	if fc.imageURLs {
		urls, err := c.ImageURLs(ctx, page)
		if err != nil {
			return nil, err
		}
		page.imageURLs = urls
	}
	return page, nil
}

func findParams(title string) url.Values {
	return url.Values{
		"titles":      {title},
		"prop":        {pageProps},
		"rvprop":      {"content"},
		"rvslots":     {"main"},
		"inprop":      {"url"},
		"explaintext": {"1"},
		"piprop":      {"original|thumbnail|name"},
		"pllimit":     {"max"},
		"ellimit":     {"max"},
		"imlimit":     {"max"},
		"cllimit":     {"max"},
		"tllimit":     {"max"},
		"lllimit":     {"max"},
	}
}

// FindImage retrieves a file page and its image information.
func (c *Client) FindImage(ctx context.Context, title string, opts ...FindOption) (*Page, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, Errorf(EINVALID, "title required")
	}

	fc := newFindConfig(url.Values{
		"titles": {title},
		"prop":   {"imageinfo"},
		"iiprop": {"url"},
	}, opts)
	resp, err := c.queryAll(ctx, fc.params)
	if err != nil {
		return nil, err
	}
	return firstPage(resp, title)
}

// FindRandom retrieves a random article from the main namespace.
func (c *Client) FindRandom(ctx context.Context, opts ...FindOption) (*Page, error) {
	// The random list always offers a continuation, so only one round is sent.
	body, err := c.fetcher.Fetch(ctx, queryParams(url.Values{
		"list":        {"random"},
		"rnnamespace": {"0"},
		"rnlimit":     {"1"},
	}))
	if err != nil {
		return nil, err
	}
	resp, err := decodeResponse(body)
	if err != nil {
		return nil, err
	}
	if len(resp.Query.Random) == 0 {
		return nil, Errorf(EINTERNAL, "random query returned no pages")
	}
	return c.Find(ctx, resp.Query.Random[0].Title, opts...)
}

// ImageURLs resolves the file URLs of page's images. The result follows the
// order of page.Images(); images without a URL are skipped.
func (c *Client) ImageURLs(ctx context.Context, page *Page) ([]string, error) {
	images := page.Images()
	if len(images) == 0 {
		return nil, nil
	}

	byTitle := make(map[string]string, len(images))
	normalized := make(map[string]string)
	for start := 0; start < len(images); start += imageBatchSize {
		end := min(start+imageBatchSize, len(images))
		resp, err := c.queryAll(ctx, url.Values{
			"titles": {strings.Join(images[start:end], "|")},
			"prop":   {"imageinfo"},
			"iiprop": {"url"},
		})
		if err != nil {
			return nil, err
		}
		for _, m := range resp.Normalized {
			normalized[m.From] = m.To
		}
		for _, d := range resp.Pages {
			if len(d.ImageInfo) > 0 && d.ImageInfo[0].URL != "" {
				byTitle[d.Title] = d.ImageInfo[0].URL
			}
		}
	}

	urls := make([]string, 0, len(images))
	for _, title := range images {
		if to, ok := normalized[title]; ok {
			title = to
		}
		if u, ok := byTitle[title]; ok {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// queryAll sends an action=query request and follows continuations,
// merging every batch into one result. Each round resends the original
// parameters together with the latest continuation values.
func (c *Client) queryAll(ctx context.Context, params url.Values) (*queryResult, error) {
	base := queryParams(params)

	var result *queryResult
	var cont map[string]string
	for range maxContinuations {
		req := maps.Clone(base)
		for k, v := range cont {
			req.Set(k, v)
		}

		body, err := c.fetcher.Fetch(ctx, req)
		if err != nil {
			return nil, err
		}
		resp, err := decodeResponse(body)
		if err != nil {
			return nil, err
		}

		if result == nil {
			result = resp.Query
		} else {
			result.merge(resp.Query)
		}

		if cont = resp.continueParams(); cont == nil {
			return result, nil
		}
	}
	return nil, Errorf(EINTERNAL, "response still incomplete after %d requests", maxContinuations)
}

func queryParams(params url.Values) url.Values {
	p := maps.Clone(params)
	p.Set("action", "query")
	p.Set("format", "json")
	p.Set("formatversion", "2")
	return p
}
