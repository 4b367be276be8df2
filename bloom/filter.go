// Package bloom provides page title deduplication using Bloom filters.
package bloom

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for page title deduplication. Titles are
// compared in canonical form, so "edsger_Dijkstra" and "Edsger Dijkstra"
// are the same entry.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected titles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a title to the filter.
func (f *Filter) Add(title string) {
	f.f.AddString(canonical(title))
}

// Test returns true if the title might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(title string) bool {
	return f.f.TestString(canonical(title))
}

// Seen reports whether the title might have been added before, and adds it.
func (f *Filter) Seen(title string) bool {
	return f.f.TestAndAddString(canonical(title))
}

// EstimatedCount returns the approximate number of titles in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// canonical applies the wiki's title normalization: underscores are spaces,
// whitespace runs collapse, and the first letter is upper case.
func canonical(title string) string {
	t := strings.Join(strings.Fields(strings.ReplaceAll(title, "_", " ")), " ")
	r, size := utf8.DecodeRuneInString(t)
	if r == utf8.RuneError {
		return t
	}
	return string(unicode.ToUpper(r)) + t[size:]
}
