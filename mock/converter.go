package mock

import "github.com/fwojciec/htmladf"

var _ htmladf.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmladf.Converter.
type Converter struct {
	ConvertFn func(html string) (*htmladf.Node, error)
}

func (c *Converter) Convert(html string) (*htmladf.Node, error) {
	return c.ConvertFn(html)
}
