// Package goquery cleans HTML extracts with goquery.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikipedia"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wikipedia.Extractor at compile time.
var _ wikipedia.Extractor = (*Extractor)(nil)

// DefaultRemoveSelectors match wiki chrome that carries no article prose.
var DefaultRemoveSelectors = []string{
	"script",
	"style",
	"link",
	"sup.reference",
	".mw-editsection",
	".mw-empty-elt",
	".mw-references-wrap",
	".noprint",
	".hatnote",
	".ambox",
	".navbox",
	".metadata",
	".reflist",
	"table.infobox",
}

// Extractor removes reference markers and maintenance boxes from HTML extracts.
type Extractor struct {
	remove []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRemoveSelectors adds CSS selectors whose matches are dropped.
func WithRemoveSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.remove = append(e.remove, selectors...)
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		remove: append([]string(nil), DefaultRemoveSelectors...),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses an HTML fragment and returns its cleaned content. The
// title is taken from the first heading, when there is one.
func (e *Extractor) Extract(rawHTML string) (*wikipedia.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, wikipedia.Errorf(wikipedia.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, wikipedia.Errorf(wikipedia.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	for _, sel := range e.remove {
		body.Find(sel).Remove()
	}
	removeComments(body)

	// Paragraphs left empty after cleanup render as stray blank lines.
	body.Find("p").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" && s.Find("img").Length() == 0 {
			s.Remove()
		}
	})

	title := strings.TrimSpace(body.Find("h1, h2").First().Text())

	contentHTML, err := renderChildren(body)
	if err != nil {
		return nil, err
	}

	return &wikipedia.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}

// removeComments drops every comment node below the selection.
func removeComments(sel *goquery.Selection) {
	for _, root := range sel.Nodes {
		var walk func(n *html.Node)
		walk = func(n *html.Node) {
			for c := n.FirstChild; c != nil; {
				next := c.NextSibling
				if c.Type == html.CommentNode {
					n.RemoveChild(c)
				} else {
					walk(c)
				}
				c = next
			}
		}
		walk(root)
	}
}

// renderChildren renders the children of every node in sel.
func renderChildren(sel *goquery.Selection) (string, error) {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
	}
	return buf.String(), nil
}
