package wikipedia

import (
	"html"
	"regexp"
	"strings"
)

// Extension tags whose bodies never contain readable prose.
var nonProseTags = []string{
	"gallery",
	"imagemap",
	"math",
	"noinclude",
	"references",
	"score",
	"syntaxhighlight",
	"timeline",
}

// Elements rendered by the wiki parser. Anything else between angle brackets
// is prose, e.g. "a<b and c>d".
var markupTags = []string{
	"abbr", "b", "bdi", "bdo", "big", "blockquote", "br", "caption", "ce",
	"center", "chem", "cite", "code", "data", "dd", "del", "dfn", "div", "dl",
	"dt", "em", "font", "h[1-6]", "hr", "i", "includeonly", "indicator", "ins",
	"kbd", "li", "mark", "nowiki", "ol", "onlyinclude", "p", "poem", "pre",
	"q", "rb", "ref", "references", "rp", "rt", "rtc", "ruby", "s", "samp",
	"section", "small", "span", "strike", "strong", "sub", "sup", "table",
	"td", "templatestyles", "th", "time", "tr", "tt", "u", "ul", "var", "wbr",
}

// Link namespaces that render as media or metadata rather than text.
var hiddenNamespaces = map[string]bool{
	"category": true,
	"file":     true,
	"image":    true,
	"media":    true,
}

var (
	commentRe   = regexp.MustCompile(`(?s)<!--.*?(?:-->|$)`)
	refRe       = regexp.MustCompile(`(?is)<ref\b[^>]*/>|<ref\b[^>]*>.*?</ref\s*>`)
	templateRe  = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
	tableRe     = regexp.MustCompile(`(?s)\{\|.*?\|\}`)
	linkRe      = regexp.MustCompile(`\[\[([^\[\]]*)\]\]`)
	extLinkRe   = regexp.MustCompile(`\[(?:https?:)?//[^\s\[\]]+(?:[ \t]+([^\[\]]*))?\]`)
	headingRe   = regexp.MustCompile(`(?m)^[ \t]*=+[ \t]*(.+?)[ \t]*=+[ \t]*$`)
	switchRe    = regexp.MustCompile(`__[A-Z]+__`)
	quoteRe     = regexp.MustCompile(`'{2,}`)
	breakRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe       = compileTags(markupTags)
	spaceRunRe  = regexp.MustCompile(`[ \t]{2,}`)
	lineEdgeRe  = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
	parenTailRe = regexp.MustCompile(`\s*\([^()]*\)$`)
	nonProseRes = compileNonProse(nonProseTags)
)

// compileTags matches closing tags and opening tags whose attributes all
// have values, so bare words after a name are not taken for attributes.
func compileTags(names []string) *regexp.Regexp {
	name := `(?:` + strings.Join(names, "|") + `)`
	attr := `\s+[a-z][a-z0-9:_-]*\s*=\s*(?:"[^"<>]*"|'[^'<>]*'|[^\s"'<>/]+)`
	return regexp.MustCompile(`(?i)</` + name + `\s*>|<` + name + `(?:` + attr + `)*\s*/?>`)
}

func compileNonProse(tags []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(tags))
	for _, tag := range tags {
		res = append(res, regexp.MustCompile(`(?is)<`+tag+`\b[^>]*/>|<`+tag+`\b[^>]*>.*?</`+tag+`\s*>`))
	}
	return res
}

// Sanitize converts a raw extract or wikitext fragment into trimmed plain
// text. Reference markers, comments, templates, tables, media links and
// residual HTML are removed; links, headings and text-bearing templates are
// rendered as their text. Paragraph breaks and all other characters are
// preserved. Sanitize is idempotent and never fails.
func Sanitize(raw string) string {
	return fixedPoint(raw, sanitizePass)
}

// NormalizeText tidies text that is already plain, such as an extract
// requested with explaintext: line endings, whitespace runs and blank line
// runs are normalized and headings are rendered. Nothing else is touched.
func NormalizeText(raw string) string {
	return fixedPoint(raw, normalizePass)
}

// fixedPoint applies pass until the string stops changing. Each pass either
// removes markup or decodes one layer of entities, so the loop terminates.
func fixedPoint(s string, pass func(string) string) string {
	for {
		next := pass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func normalizePass(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\uFEFF", "")
	s = headingRe.ReplaceAllString(s, "$1")
	return tidyWhitespace(s)
}

func sanitizePass(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\uFEFF", "")

	s = commentRe.ReplaceAllString(s, "")
	s = refRe.ReplaceAllString(s, "")
	for _, re := range nonProseRes {
		s = re.ReplaceAllString(s, "")
	}

	// Innermost templates first so nested arguments resolve before their parents.
	for templateRe.MatchString(s) {
		s = templateRe.ReplaceAllStringFunc(s, func(m string) string {
			return renderTemplate(m[2 : len(m)-2])
		})
	}
	s = tableRe.ReplaceAllString(s, "")

	for linkRe.MatchString(s) {
		s = linkRe.ReplaceAllStringFunc(s, func(m string) string {
			return renderLink(m[2 : len(m)-2])
		})
	}
	s = extLinkRe.ReplaceAllString(s, "$1")

	s = headingRe.ReplaceAllString(s, "$1")
	s = switchRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = breakRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	return tidyWhitespace(s)
}

func tidyWhitespace(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = lineEdgeRe.ReplaceAllString(s, "")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// renderTemplate returns the plain text a template contributes, which is
// empty for everything except punctuation and text-wrapping templates.
func renderTemplate(body string) string {
	args := strings.Split(body, "|")
	arg := func(i int) string {
		if i < len(args) {
			return strings.TrimSpace(args[i])
		}
		return ""
	}

	name := strings.ToLower(strings.ReplaceAll(arg(0), "_", " "))
	name = strings.Join(strings.Fields(name), " ")

	switch name {
	case "em dash", "emdash", "mdash", "—":
		return "—"
	case "en dash", "endash", "ndash", "nsndns", "–":
		return "–"
	case "snd", "snds", "spnd", "sndash", "spndash", "spndsp", "spaced en dash", "spaced ndash", "spaced en dash space":
		return " – "
	case "·", "dot", "middot", ",":
		return " · "
	case "•", "bull", "bullet":
		return " • "
	case `\`:
		return " / "
	case "nbsp":
		return "\u00a0"
	case "lang":
		return arg(2)
	case "nowrap", "nobr", "ipa", "script":
		return arg(1)
	case "convert", "cvt":
		return strings.TrimSpace(arg(1) + " " + arg(2))
	}

	if strings.HasPrefix(name, "lang-") || strings.HasPrefix(name, "ipa-") {
		return arg(1)
	}
	return ""
}

// renderLink returns the displayed text of an internal link body.
func renderLink(body string) string {
	target, label, piped := strings.Cut(body, "|")
	target = strings.TrimSpace(target)

	if ns, _, ok := strings.Cut(target, ":"); ok && hiddenNamespaces[strings.ToLower(strings.TrimSpace(ns))] {
		return ""
	}

	if !piped {
		return strings.TrimPrefix(target, ":")
	}

	if i := strings.LastIndex(label, "|"); i >= 0 {
		label = label[i+1:]
	}
	if label = strings.TrimSpace(label); label != "" {
		return label
	}
	return pipeTrick(target)
}

// pipeTrick derives the label MediaWiki shows for [[Target|]]: the target
// without namespace, trailing parenthetical, or comma suffix.
func pipeTrick(target string) string {
	t := strings.TrimPrefix(target, ":")
	if _, rest, ok := strings.Cut(t, ":"); ok {
		t = rest
	}
	t = parenTailRe.ReplaceAllString(t, "")
	if before, _, ok := strings.Cut(t, ","); ok {
		t = before
	}
	return strings.TrimSpace(t)
}
