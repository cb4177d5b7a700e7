// Package goquery implements HTML to ADF conversion on top of goquery's
// HTML parser. It preprocesses raw HTML to protect horizontal rules from
// parser auto-closing, flattens the parsed tree into ordered leaf records,
// and reassembles them into a document satisfying the ADF nesting grammar.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/htmladf"
)

// Ensure Converter implements htmladf.Converter at compile time.
var _ htmladf.Converter = (*Converter)(nil)

// Converter converts HTML text into an ADF document tree.
type Converter struct {
	registry *htmladf.Registry
	grammar  *htmladf.Grammar
}

// NewConverter creates a Converter with the default tag registry and
// nesting grammar.
func NewConverter() *Converter {
	return NewConverterWith(htmladf.NewRegistry(), htmladf.NewGrammar())
}

// NewConverterWith creates a Converter with a custom registry and grammar.
func NewConverterWith(registry *htmladf.Registry, grammar *htmladf.Grammar) *Converter {
	return &Converter{registry: registry, grammar: grammar}
}

// Convert transforms an HTML document or fragment into an ADF tree rooted
// at a doc node. Empty input yields an empty doc.
func (c *Converter) Convert(raw string) (*htmladf.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(EscapeRules(raw)))
	if err != nil {
		return nil, htmladf.Errorf(htmladf.EINVALID, "failed to parse HTML: %v", err)
	}
	if len(doc.Nodes) == 0 {
		return &htmladf.Node{Type: "doc"}, nil
	}

	leaves := ExtractLeaves(doc.Nodes[0])
	a := newAssembler(c.registry, c.grammar)
	return a.assemble(leaves), nil
}
