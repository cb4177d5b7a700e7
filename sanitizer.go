package htmladf

// Sanitizer cleans untrusted HTML before conversion. Implementations strip
// content the registry never maps (scripts, styles, event handlers) while
// keeping the tags and data attributes the conversion relies on.
type Sanitizer interface {
	Sanitize(html string) string
}
