package wikipedia

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ellipsis marks a summary cut short by a character limit.
const ellipsis = "..."

// SummaryOption bounds the excerpt returned by Summarize.
type SummaryOption func(*summaryConfig)

type summaryConfig struct {
	sentences     int
	hasSentences  bool
	characters    int
	hasCharacters bool
}

// WithSentences limits the summary to the first n sentences.
func WithSentences(n int) SummaryOption {
	return func(c *summaryConfig) {
		c.sentences = n
		c.hasSentences = true
	}
}

// WithCharacters limits the summary to the first n characters followed by
// an ellipsis marker.
func WithCharacters(n int) SummaryOption {
	return func(c *summaryConfig) {
		c.characters = n
		c.hasCharacters = true
	}
}

// Summarize derives a bounded excerpt from sanitized text. Without options
// it returns the first paragraph. At most one of WithSentences and
// WithCharacters may be given.
func Summarize(text string, opts ...SummaryOption) (string, error) {
	var cfg summaryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.hasSentences && cfg.hasCharacters:
		return "", Errorf(EINVALID, "summary accepts sentences or characters, not both")
	case cfg.hasSentences:
		if cfg.sentences < 0 {
			return "", Errorf(EINVALID, "sentence count must not be negative")
		}
		return firstSentences(text, cfg.sentences), nil
	case cfg.hasCharacters:
		if cfg.characters < 0 {
			return "", Errorf(EINVALID, "character count must not be negative")
		}
		return firstCharacters(text, cfg.characters), nil
	default:
		return firstParagraph(text), nil
	}
}

// firstParagraph returns the text before the first blank line.
func firstParagraph(text string) string {
	before, _, _ := strings.Cut(strings.TrimLeft(text, " \t\n"), "\n\n")
	return strings.TrimRight(before, " \t\n")
}

// firstSentences returns text up to and including the nth sentence
// terminator. A terminator is a period followed by a space or tab; line
// breaks inside the excerpt are kept as they are.
func firstSentences(text string, n int) string {
	if n == 0 {
		return ""
	}

	count := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '.' || (text[i+1] != ' ' && text[i+1] != '\t') {
			continue
		}
		count++
		if count == n {
			return text[:i+1]
		}
	}
	return text
}

// firstCharacters returns the first n runes of text followed by an
// ellipsis, or text itself when it is not longer than n.
func firstCharacters(text string, n int) string {
	if n == 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	cut, count := len(text), 0
	for i := range text {
		if count == n {
			cut = i
			break
		}
		count++
	}

	prefix := text[:cut]
	if last, _ := utf8.DecodeLastRuneInString(prefix); unicode.IsSpace(last) {
		return prefix + ellipsis
	}
	return prefix + " " + ellipsis
}
