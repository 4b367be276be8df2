package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/wikipedia"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	page, body, err := c.render(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "json":
		fmt.Fprint(deps.Stdout, body)
	case "text":
		fmt.Fprint(deps.Stdout, wikipedia.FormatPage(page.Title(), page.FullURL(), body))
	default:
		fmt.Fprintln(deps.Stdout, body)
	}

	if c.Images && c.Format != "json" {
		fmt.Fprintln(deps.Stdout, "\nImages:")
		for _, u := range page.ImageURLs() {
			fmt.Fprintf(deps.Stdout, "  %s\n", u)
		}
	}

	return nil
}

func (c *PageCmd) summaryRequested() bool {
	return c.Summary || c.Sentences > 0 || c.Characters > 0
}

func (c *PageCmd) summaryOptions() []wikipedia.SummaryOption {
	var opts []wikipedia.SummaryOption
	if c.Sentences > 0 {
		opts = append(opts, wikipedia.WithSentences(c.Sentences))
	}
	if c.Characters > 0 {
		opts = append(opts, wikipedia.WithCharacters(c.Characters))
	}
	return opts
}

func (c *PageCmd) findOptions() []wikipedia.FindOption {
	var opts []wikipedia.FindOption
	if c.Section >= 0 {
		opts = append(opts, wikipedia.WithSection(c.Section))
	}
	if c.Images {
		opts = append(opts, wikipedia.WithImageURLs())
	}
	if c.Format == "markdown" {
		opts = append(opts, wikipedia.WithHTMLExtract())
	}
	return opts
}

func (c *PageCmd) validate() error {
	if c.summaryRequested() && (c.Format == "wikitext" || c.Format == "markdown") {
		return wikipedia.Errorf(wikipedia.EINVALID, "summaries are only available as text or json")
	}
	if c.Sections && c.Format != "text" {
		return wikipedia.Errorf(wikipedia.EINVALID, "--sections requires text format")
	}
	if c.Sentences < 0 || c.Characters < 0 {
		return wikipedia.Errorf(wikipedia.EINVALID, "summary limits must not be negative")
	}
	return nil
}

// render fetches the page and produces the output body for the chosen format.
func (c *PageCmd) render(deps *Dependencies) (*wikipedia.Page, string, error) {
	if err := c.validate(); err != nil {
		return nil, "", err
	}

	page, err := deps.Pages.Find(deps.Ctx, c.Title, c.findOptions()...)
	if err != nil {
		return nil, "", err
	}

	switch {
	case c.Sections:
		return page, wikipedia.FormatSections(page.Sections()), nil
	case c.Format == "wikitext":
		return page, page.Content(), nil
	case c.Format == "markdown":
		body, err := c.markdown(deps, page)
		return page, body, err
	}

	text, err := c.text(page)
	if err != nil {
		return nil, "", err
	}

	if c.Format == "json" {
		body, err := pageJSON(page, text, c.summaryRequested())
		return page, body, err
	}
	return page, text, nil
}

// text returns the plain-text body: the summary when one was requested,
// otherwise the whole article as plain text. A single section only exists in
// the wikitext, so it is read from there.
func (c *PageCmd) text(page *wikipedia.Page) (string, error) {
	if c.summaryRequested() {
		if c.Section >= 0 {
			return wikipedia.Summarize(page.SanitizedContent(), c.summaryOptions()...)
		}
		return page.Summary(c.summaryOptions()...)
	}
	if c.Section >= 0 || page.Text() == "" {
		return page.SanitizedContent(), nil
	}
	return page.PlainText(), nil
}

func (c *PageCmd) markdown(deps *Dependencies, page *wikipedia.Page) (string, error) {
	if strings.TrimSpace(page.Text()) == "" {
		return "", wikipedia.Errorf(wikipedia.ENOTFOUND, "page %q has no extract", page.Title())
	}

	result, err := deps.Extractor.Extract(page.Text())
	if err != nil {
		return "", err
	}

	md, err := deps.Converter.Convert(result.ContentHTML)
	if err != nil {
		return "", err
	}
	return "# " + page.Title() + "\n\n" + md, nil
}

type jsonPage struct {
	PageID      int64                  `json:"pageid"`
	Title       string                 `json:"title"`
	URL         string                 `json:"url,omitempty"`
	Summary     string                 `json:"summary,omitempty"`
	Text        string                 `json:"text,omitempty"`
	Categories  []string               `json:"categories,omitempty"`
	Links       []string               `json:"links,omitempty"`
	Images      []string               `json:"images,omitempty"`
	ImageURLs   []string               `json:"image_urls,omitempty"`
	MainImage   string                 `json:"main_image,omitempty"`
	Coordinates *wikipedia.Coordinates `json:"coordinates,omitempty"`
	LangLinks   map[string]string      `json:"langlinks,omitempty"`
	Sections    []wikipedia.Section    `json:"sections,omitempty"`
}

func pageJSON(page *wikipedia.Page, text string, summary bool) (string, error) {
	out := jsonPage{
		PageID:     page.PageID(),
		Title:      page.Title(),
		URL:        page.FullURL(),
		Categories: page.Categories(),
		Links:      page.Links(),
		Images:     page.Images(),
		ImageURLs:  page.ImageURLs(),
		MainImage:  page.MainImageURL(),
		LangLinks:  page.LangLinks(),
		Sections:   page.Sections(),
	}
	if summary {
		out.Summary = text
	} else {
		out.Text = text
	}
	if coords, ok := page.Coordinates(); ok {
		out.Coordinates = &coords
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
