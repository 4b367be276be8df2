package wikipedia

import "strings"

// FormatPage formats a page body for terminal display.
// The title is underlined and followed by the canonical URL when known.
func FormatPage(title, fullURL, body string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n")
	if fullURL != "" {
		b.WriteString(fullURL)
		b.WriteString("\n")
	}
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSections formats headings as an indented outline, one per line.
// Level 2 headings, the top level in article wikitext, are not indented.
func FormatSections(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		indent := strings.Repeat("  ", max(s.Level-2, 0))
		lines = append(lines, indent+s.Title+" (#"+s.Anchor+")")
	}
	return strings.Join(lines, "\n")
}
