package mock

import "github.com/fwojciec/wikipedia"

var _ wikipedia.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikipedia.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
