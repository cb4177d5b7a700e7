package htmladf

// Converter converts HTML text into an ADF document tree.
type Converter interface {
	// Convert transforms an HTML document or fragment into an ADF tree.
	// The returned root node always has type "doc". Conversion is total
	// over well-formed input: unmapped tags are transparent, missing
	// attributes degrade to narrower output, and structurally illegal
	// nesting is repaired rather than rejected.
	Convert(html string) (*Node, error)
}
