package mock

import "github.com/fwojciec/popscrape"

var _ popscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of popscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
