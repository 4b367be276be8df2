package wikipedia

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

var (
	redirectRe       = regexp.MustCompile(`(?i)^\s*#REDIRECT`)
	redirectTargetRe = regexp.MustCompile(`\[\[([^\]\|#]+)`)
)

// Page represents one fetched article or image page. A Page is immutable
// once returned by a client; derived text is computed on first use.
type Page struct {
	data      pageData
	imageURLs []string

	contentOnce      sync.Once
	sanitizedContent string

	textOnce    sync.Once
	plainText   string
	htmlExtract bool
}

// Coordinates is a geographic position attached to a page.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newPage(d pageData) *Page {
	return &Page{data: d}
}

// PageID returns the wiki's numeric page identifier.
func (p *Page) PageID() int64 { return p.data.PageID }

// Namespace returns the page namespace number (0 for articles, 6 for files).
func (p *Page) Namespace() int { return p.data.NS }

// Title returns the canonical page title.
func (p *Page) Title() string { return p.data.Title }

// FullURL returns the canonical article URL.
func (p *Page) FullURL() string { return p.data.FullURL }

// Content returns the raw revision content (wikitext).
func (p *Page) Content() string {
	if len(p.data.Revisions) == 0 {
		return ""
	}
	return p.data.Revisions[0].text()
}

// Text returns the raw extract.
func (p *Page) Text() string { return p.data.Extract }

// SanitizedContent returns Content rendered as plain text.
func (p *Page) SanitizedContent() string {
	p.contentOnce.Do(func() {
		p.sanitizedContent = Sanitize(p.Content())
	})
	return p.sanitizedContent
}

// PlainText returns the extract as plain text. Plain extracts only have
// their whitespace and headings normalized; HTML extracts are sanitized.
func (p *Page) PlainText() string {
	p.textOnce.Do(func() {
		if p.htmlExtract {
			p.plainText = Sanitize(p.Text())
		} else {
			p.plainText = NormalizeText(p.Text())
		}
	})
	return p.plainText
}

// Summary returns a bounded excerpt of PlainText, or of the sanitized
// content when the page carries no extract.
func (p *Page) Summary(opts ...SummaryOption) (string, error) {
	if text := p.PlainText(); text != "" {
		return Summarize(text, opts...)
	}
	return Summarize(p.SanitizedContent(), opts...)
}

// Categories returns category titles in API order.
func (p *Page) Categories() []string { return titles(p.data.Categories) }

// Links returns linked page titles in API order.
func (p *Page) Links() []string { return titles(p.data.Links) }

// Images returns image file titles in API order.
func (p *Page) Images() []string { return titles(p.data.Images) }

// Templates returns transcluded template titles in API order.
func (p *Page) Templates() []string { return titles(p.data.Templates) }

// ExtLinks returns external link URLs in API order.
func (p *Page) ExtLinks() []string {
	if len(p.data.ExtLinks) == 0 {
		return nil
	}
	urls := make([]string, 0, len(p.data.ExtLinks))
	for _, l := range p.data.ExtLinks {
		urls = append(urls, l.URL)
	}
	return urls
}

// LangLinks maps language codes to the page title on that language's wiki.
func (p *Page) LangLinks() map[string]string {
	if len(p.data.LangLinks) == 0 {
		return nil
	}
	links := make(map[string]string, len(p.data.LangLinks))
	for _, l := range p.data.LangLinks {
		links[l.Lang] = l.Title
	}
	return links
}

// Coordinates returns the primary coordinates of the page, if any.
func (p *Page) Coordinates() (Coordinates, bool) {
	if len(p.data.Coordinates) == 0 {
		return Coordinates{}, false
	}
	c := p.data.Coordinates[0]
	for _, candidate := range p.data.Coordinates {
		if candidate.Primary {
			c = candidate
			break
		}
	}
	return Coordinates{Lat: c.Lat, Lon: c.Lon}, true
}

// MainImageURL returns the lead image of an article, preferring the
// original over the thumbnail.
func (p *Page) MainImageURL() string {
	if p.data.Original != nil && p.data.Original.Source != "" {
		return p.data.Original.Source
	}
	if p.data.Thumbnail != nil {
		return p.data.Thumbnail.Source
	}
	return ""
}

// MainImageName returns the file name of the article's lead image.
func (p *Page) MainImageName() string { return p.data.PageImage }

// ImageURL returns the file URL of an image page.
func (p *Page) ImageURL() string {
	if len(p.data.ImageInfo) == 0 {
		return ""
	}
	return p.data.ImageInfo[0].URL
}

// ImageThumbURL returns the scaled URL of an image page when a size was requested.
func (p *Page) ImageThumbURL() string {
	if len(p.data.ImageInfo) == 0 {
		return ""
	}
	return p.data.ImageInfo[0].ThumbURL
}

// ImageDescriptionURL returns the file description page of an image page.
func (p *Page) ImageDescriptionURL() string {
	if len(p.data.ImageInfo) == 0 {
		return ""
	}
	return p.data.ImageInfo[0].DescriptionURL
}

// ImageURLs returns resolved URLs for Images, in the same order. It is only
// populated when the page was fetched with WithImageURLs.
func (p *Page) ImageURLs() []string { return p.imageURLs }

// IsRedirect reports whether the page is a redirect stub.
func (p *Page) IsRedirect() bool {
	return p.data.Redirect || redirectRe.MatchString(p.Content())
}

// RedirectTitle returns the target of a redirect page, without section.
func (p *Page) RedirectTitle() string {
	if !p.IsRedirect() {
		return ""
	}
	m := redirectTargetRe.FindStringSubmatch(p.Content())
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func titles(refs []titleRef) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Title)
	}
	return out
}

// PageService represents a service for looking up wiki pages.
type PageService interface {
	// Find retrieves an article by title, following redirects when configured.
	// Returns ENOTFOUND if the page does not exist.
	Find(ctx context.Context, title string, opts ...FindOption) (*Page, error)

	// FindImage retrieves a file page with its image information.
	FindImage(ctx context.Context, title string, opts ...FindOption) (*Page, error)

	// FindRandom retrieves a random article.
	FindRandom(ctx context.Context, opts ...FindOption) (*Page, error)

	// ImageURLs resolves the file URLs of a page's images.
	ImageURLs(ctx context.Context, page *Page) ([]string, error)
}
