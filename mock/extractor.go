package mock

import "github.com/fwojciec/wikipedia"

var _ wikipedia.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikipedia.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wikipedia.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wikipedia.ExtractResult, error) {
	return e.ExtractFn(html)
}
