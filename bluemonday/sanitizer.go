// Package bluemonday implements input HTML sanitization for conversion.
package bluemonday

import (
	"github.com/fwojciec/htmladf"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements htmladf.Sanitizer at compile time.
var _ htmladf.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips markup the tag registry never maps while keeping the
// elements and data attributes conversion relies on. Scripts, styles and
// event handlers are removed; unmapped but harmless tags are dropped with
// their text preserved, matching the converter's transparency policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the conversion-friendly policy.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "blockquote", "span", "ul", "ol", "li", "hr", "br",
		"table", "tr", "th", "td", "pre",
		"b", "strong", "i", "em", "u", "code", "sub", "sup",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src").OnElements("iframe", "img")
	p.AllowAttrs(
		"alt", "data-layout", "data-media-id", "data-collection",
		"data-width", "data-height", "data-width-type",
	).OnElements("img")
	// Bare anchors still contribute a link mark without attributes, and
	// media elements may carry data attributes only.
	p.AllowNoAttrs().OnElements("a", "img", "iframe")
	p.AllowStandardURLs()
	return &Sanitizer{policy: p}
}

// Sanitize returns the HTML with everything outside the policy removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
