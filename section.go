package wikipedia

import (
	"regexp"
	"strconv"
	"strings"
)

var sectionRe = regexp.MustCompile(`(?m)^(={1,6})[ \t]*(.+?)[ \t]*(={1,6})[ \t]*$`)

// Section represents a heading in wikitext.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractSections parses wikitext and returns all headings in document
// order. Anchors follow the wiki's own scheme: spaces become underscores and
// repeated headings get a numeric suffix starting at 2.
func ExtractSections(wikitext string) []Section {
	if wikitext == "" {
		return nil
	}

	cleaned := commentRe.ReplaceAllString(wikitext, "")
	matches := sectionRe.FindAllStringSubmatch(cleaned, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	anchorCounts := make(map[string]int)

	for _, match := range matches {
		// Unbalanced markers give the shorter level; the surplus stays in the title.
		level := min(len(match[1]), len(match[3]))
		raw := strings.Repeat("=", len(match[1])-level) + match[2] + strings.Repeat("=", len(match[3])-level)

		title := Sanitize(raw)
		if title == "" {
			continue
		}
		baseAnchor := generateAnchor(title)

		anchor := baseAnchor
		anchorCounts[baseAnchor]++
		if n := anchorCounts[baseAnchor]; n > 1 {
			anchor = baseAnchor + "_" + strconv.Itoa(n)
		}

		sections = append(sections, Section{
			Level:  level,
			Title:  title,
			Anchor: anchor,
		})
	}

	if len(sections) == 0 {
		return nil
	}
	return sections
}

// Sections returns the headings of the page content.
func (p *Page) Sections() []Section {
	return ExtractSections(p.Content())
}

// generateAnchor creates a fragment identifier from a heading title.
func generateAnchor(title string) string {
	return strings.Join(strings.Fields(title), "_")
}
