package wikipedia

import (
	"encoding/json"
	"fmt"
)

// response is a formatversion=2 reply from the MediaWiki action API.
type response struct {
	Continue map[string]any `json:"continue"`
	Query    *queryResult   `json:"query"`
	Error    *apiError      `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type queryResult struct {
	Normalized []titleMapping `json:"normalized"`
	Redirects  []titleMapping `json:"redirects"`
	Pages      []pageData     `json:"pages"`
	Random     []randomPage   `json:"random"`
}

type titleMapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type randomPage struct {
	ID    int64  `json:"id"`
	NS    int    `json:"ns"`
	Title string `json:"title"`
}

// pageData mirrors one entry of query.pages. Every field is optional.
type pageData struct {
	PageID        int64          `json:"pageid"`
	NS            int            `json:"ns"`
	Title         string         `json:"title"`
	Missing       bool           `json:"missing"`
	Known         bool           `json:"known"`
	Invalid       bool           `json:"invalid"`
	InvalidReason string         `json:"invalidreason"`
	Redirect      bool           `json:"redirect"`
	FullURL       string         `json:"fullurl"`
	Extract       string         `json:"extract"`
	Revisions     []revisionData `json:"revisions"`
	Categories    []titleRef     `json:"categories"`
	Links         []titleRef     `json:"links"`
	Images        []titleRef     `json:"images"`
	Templates     []titleRef     `json:"templates"`
	ExtLinks      []extLinkRef   `json:"extlinks"`
	LangLinks     []langLinkRef  `json:"langlinks"`
	Coordinates   []coordinate   `json:"coordinates"`
	Thumbnail     *imageSource   `json:"thumbnail"`
	Original      *imageSource   `json:"original"`
	PageImage     string         `json:"pageimage"`
	ImageInfo     []imageInfo    `json:"imageinfo"`
}

type revisionData struct {
	Slots struct {
		Main struct {
			Content string `json:"content"`
		} `json:"main"`
	} `json:"slots"`
	Content string `json:"content"`
}

// text returns the revision content from the main slot, falling back to the
// slotless layout older wikis return.
func (r revisionData) text() string {
	if r.Slots.Main.Content != "" {
		return r.Slots.Main.Content
	}
	return r.Content
}

type titleRef struct {
	NS    int    `json:"ns"`
	Title string `json:"title"`
}

type extLinkRef struct {
	URL string `json:"url"`
}

type langLinkRef struct {
	Lang  string `json:"lang"`
	Title string `json:"title"`
}

type coordinate struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Primary bool    `json:"primary"`
}

type imageSource struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type imageInfo struct {
	URL            string `json:"url"`
	DescriptionURL string `json:"descriptionurl"`
	ThumbURL       string `json:"thumburl"`
}

// decodeResponse decodes a raw API reply and converts API error payloads
// into application errors.
func decodeResponse(body string) (*response, error) {
	var resp response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, Errorf(EINVALID, "malformed API response: %v", err)
	}

	if resp.Error != nil {
		switch resp.Error.Code {
		case "invalidtitle", "badvalue", "paramempty", "missingparam":
			return nil, Errorf(EINVALID, "%s: %s", resp.Error.Code, resp.Error.Info)
		case "missingtitle":
			return nil, Errorf(ENOTFOUND, "%s", resp.Error.Info)
		default:
			return nil, Errorf(EINTERNAL, "API error %s: %s", resp.Error.Code, resp.Error.Info)
		}
	}

	if resp.Query == nil {
		resp.Query = &queryResult{}
	}
	return &resp, nil
}

// continueParams flattens the continuation object into request parameters.
func (r *response) continueParams() map[string]string {
	if len(r.Continue) == 0 {
		return nil
	}
	params := make(map[string]string, len(r.Continue))
	for k, v := range r.Continue {
		params[k] = fmt.Sprint(v)
	}
	return params
}

// merge folds a continuation batch into q. List properties are appended to
// the matching page; scalar fields keep their first non-empty value.
func (q *queryResult) merge(next *queryResult) {
	q.Normalized = append(q.Normalized, next.Normalized...)
	q.Redirects = append(q.Redirects, next.Redirects...)
	q.Random = append(q.Random, next.Random...)

	for _, np := range next.Pages {
		idx := q.indexOf(np)
		if idx < 0 {
			q.Pages = append(q.Pages, np)
			continue
		}
		q.Pages[idx].merge(np)
	}
}

func (q *queryResult) indexOf(p pageData) int {
	for i, existing := range q.Pages {
		if p.PageID != 0 && existing.PageID == p.PageID {
			return i
		}
		if p.PageID == 0 && existing.Title == p.Title {
			return i
		}
	}
	return -1
}

func (d *pageData) merge(o pageData) {
	if d.FullURL == "" {
		d.FullURL = o.FullURL
	}
	if d.Extract == "" {
		d.Extract = o.Extract
	}
	if len(d.Revisions) == 0 {
		d.Revisions = o.Revisions
	}
	if len(d.ImageInfo) == 0 {
		d.ImageInfo = o.ImageInfo
	}
	if d.Thumbnail == nil {
		d.Thumbnail = o.Thumbnail
	}
	if d.Original == nil {
		d.Original = o.Original
	}
	if d.PageImage == "" {
		d.PageImage = o.PageImage
	}
	d.Categories = append(d.Categories, o.Categories...)
	d.Links = append(d.Links, o.Links...)
	d.Images = append(d.Images, o.Images...)
	d.Templates = append(d.Templates, o.Templates...)
	d.ExtLinks = append(d.ExtLinks, o.ExtLinks...)
	d.LangLinks = append(d.LangLinks, o.LangLinks...)
	d.Coordinates = append(d.Coordinates, o.Coordinates...)
}

// firstPage returns the first page of a query, rejecting invalid titles and
// pages that do not exist. Shared media files are reported as missing but
// known and still carry image information, so they are accepted.
func firstPage(q *queryResult, title string) (*Page, error) {
	if q == nil || len(q.Pages) == 0 {
		return nil, Errorf(ENOTFOUND, "page %q not found", title)
	}

	d := q.Pages[0]
	if title == "" {
		title = d.Title
	}
	if d.Invalid {
		return nil, Errorf(EINVALID, "invalid title %q: %s", title, d.InvalidReason)
	}
	if d.Missing && !d.Known && len(d.ImageInfo) == 0 {
		return nil, Errorf(ENOTFOUND, "page %q not found", title)
	}
	return newPage(d), nil
}

// ParsePage decodes a raw query response and returns its first page.
func ParsePage(body string) (*Page, error) {
	resp, err := decodeResponse(body)
	if err != nil {
		return nil, err
	}
	return firstPage(resp.Query, "")
}
