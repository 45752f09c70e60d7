package mock

import "github.com/fwojciec/lexarchive"

var _ lexarchive.Converter = (*Converter)(nil)

// Converter is a mock implementation of lexarchive.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
