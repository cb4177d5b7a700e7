package mock

import "github.com/fwojciec/htmladf"

var _ htmladf.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of htmladf.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
