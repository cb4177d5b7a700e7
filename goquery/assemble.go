package goquery

import (
	"encoding/json"
	"slices"

	"github.com/fwojciec/htmladf"
	"golang.org/x/net/html"
)

// element adapts an *html.Node to the read-only htmladf.Element view the
// registry derivations consume.
type element struct {
	n *html.Node
}

func (e element) TagName() string { return e.n.Data }

func (e element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// inlineTypes are the ADF types that represent inline content. Inline
// nodes that land under a parent that rejects them are wrapped in a
// synthesized paragraph rather than re-homed.
var inlineTypes = map[string]bool{
	"text":      true,
	"emoji":     true,
	"hardBreak": true,
}

// frame is an open node on the assembly stack. src is nil for the document
// root and for synthesized paragraph wrappers.
type frame struct {
	src    *html.Node
	node   *htmladf.Node
	parent *htmladf.Node
}

// chainEntry is one mapped block ancestor of a leaf, top-down.
type chainEntry struct {
	src *html.Node
	ct  *htmladf.ContentType
}

// assembler reconstructs ADF nesting from a flattened leaf sequence. For
// each leaf it resolves the leaf's block-ancestor chain through the
// registry, aligns the stack of open output nodes with it, and attaches
// the leaf's node under the innermost parent the grammar accepts.
//
// When the grammar rejects a placement, repair is applied in order:
// synthesize a paragraph wrapper for inline content, re-home under the
// nearest accepting open ancestor (closing the frames in between so
// document order survives), or drop the node.
type assembler struct {
	reg     *htmladf.Registry
	grammar *htmladf.Grammar
	doc     *htmladf.Node
	open    []*frame
}

func newAssembler(reg *htmladf.Registry, grammar *htmladf.Grammar) *assembler {
	doc := &htmladf.Node{Type: "doc"}
	return &assembler{
		reg:     reg,
		grammar: grammar,
		doc:     doc,
		open:    []*frame{{node: doc}},
	}
}

func (a *assembler) assemble(leaves []DocNode) *htmladf.Node {
	for _, leaf := range leaves {
		a.place(leaf)
	}
	return a.doc
}

func (a *assembler) place(leaf DocNode) {
	node, ok := a.leafNode(leaf)
	if !ok {
		return
	}
	a.align(a.blockChain(leaf.Src))
	a.attach(node, nil)
}

// blockChain returns the leaf's mapped block ancestors in top-down order.
// Unmapped tags and inline mark carriers are transparent; the first
// doc-typed ancestor terminates the chain.
func (a *assembler) blockChain(src *html.Node) []chainEntry {
	var chain []chainEntry
	for p := src.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		ct, ok := a.reg.Resolve(p.Data)
		if !ok || ct.Inline() {
			continue
		}
		if ct.Name == "doc" {
			break
		}
		chain = append(chain, chainEntry{src: p, ct: ct})
	}
	slices.Reverse(chain)
	return chain
}

// align reconciles the open stack with a leaf's ancestor chain: the longest
// common prefix stays open, everything above it closes, and the chain's
// remaining entries open as new frames. A synthesized wrapper on top of the
// stack survives only while the whole chain still matches beneath it, so
// consecutive inline siblings share one wrapper paragraph.
func (a *assembler) align(chain []chainEntry) {
	keep := 1
	ci := 0
	for si := 1; si < len(a.open); si++ {
		fr := a.open[si]
		if fr.src == nil {
			if ci == len(chain) {
				keep = si + 1
				continue
			}
			break
		}
		if ci < len(chain) && fr.src == chain[ci].src {
			keep = si + 1
			ci++
			continue
		}
		break
	}
	a.truncate(keep)
	for ; ci < len(chain); ci++ {
		e := chain[ci]
		el := element{e.src}
		node := &htmladf.Node{
			Type:  e.ct.Name,
			Attrs: htmladf.AttrMap(e.ct.ResolveAttrs(el)),
		}
		a.attach(node, e.src)
	}
}

// truncate closes all frames at or above keep. A closed frame that never
// received content only exists because a repair split it open; it is
// removed from its parent again.
func (a *assembler) truncate(keep int) {
	for i := len(a.open) - 1; i >= keep; i-- {
		fr := a.open[i]
		if len(fr.node.Content) == 0 && fr.node.Text == "" {
			removeChild(fr.parent, fr.node)
		}
	}
	a.open = a.open[:keep]
}

// attach places a node under the innermost open frame whose rule accepts
// it, applying the repair policy on rejection. When src is non-nil the
// node opens a new frame for the leaf's deeper ancestors.
func (a *assembler) attach(node *htmladf.Node, src *html.Node) {
	for j := len(a.open) - 1; j >= 0; j-- {
		host := a.open[j]
		if a.accepts(host.node, node.Type) {
			a.truncate(j + 1)
			appendChild(host.node, node)
			if src != nil {
				a.open = append(a.open, &frame{src: src, node: node, parent: host.node})
			}
			return
		}
		if inlineTypes[node.Type] && a.accepts(host.node, "paragraph") {
			a.truncate(j + 1)
			wrapper := &htmladf.Node{Type: "paragraph"}
			appendChild(host.node, wrapper)
			a.open = append(a.open, &frame{node: wrapper, parent: host.node})
			appendChild(wrapper, node)
			return
		}
	}
	// No open ancestor accepts the node in any form; drop it.
}

// accepts reports whether appending a child of the given type to the
// parent's current children stays legal.
func (a *assembler) accepts(parent *htmladf.Node, childType string) bool {
	types := make([]string, 0, len(parent.Content)+1)
	for _, c := range parent.Content {
		types = append(types, c.Type)
	}
	return a.grammar.IsLegal(parent.Type, append(types, childType))
}

// leafNode builds the ADF node for a leaf record: text leaves collect
// marks from their inline ancestors, element leaves resolve attributes and
// synthesized children through the registry.
func (a *assembler) leafNode(leaf DocNode) (*htmladf.Node, bool) {
	ct, ok := a.reg.Resolve(leaf.Name)
	if !ok {
		return nil, false
	}
	if ct.Inline() {
		return &htmladf.Node{
			Type:  "text",
			Text:  leaf.Text,
			Marks: a.collectMarks(leaf.Src),
		}, true
	}
	el := element{leaf.Src}
	attrs := ct.ResolveAttrs(el)
	var content []*htmladf.Node
	if ct.Children != nil {
		extra, kids := ct.Children(el)
		attrs = append(attrs, extra...)
		content = kids
	}
	return &htmladf.Node{
		Type:    ct.Name,
		Attrs:   htmladf.AttrMap(attrs),
		Content: content,
	}, true
}

// collectMarks gathers the marks contributed by a text leaf's inline
// ancestors, outermost first, stopping at the nearest block ancestor.
// Repeated mark types keep the outermost occurrence.
func (a *assembler) collectMarks(src *html.Node) []*htmladf.Mark {
	var marks []*htmladf.Mark
	for p := src.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		ct, ok := a.reg.Resolve(p.Data)
		if !ok {
			continue
		}
		if !ct.Inline() {
			break
		}
		marks = append(marks, ct.ResolveMarks(element{p})...)
	}
	if len(marks) == 0 {
		return nil
	}
	slices.Reverse(marks)
	seen := make(map[string]bool, len(marks))
	out := marks[:0]
	for _, m := range marks {
		if seen[m.Type] {
			continue
		}
		seen[m.Type] = true
		out = append(out, m)
	}
	return out
}

// appendChild appends a node to the parent's content, coalescing adjacent
// text nodes that carry identical mark sets.
func appendChild(parent, node *htmladf.Node) {
	if node.Type == "text" && len(parent.Content) > 0 {
		last := parent.Content[len(parent.Content)-1]
		if last.Type == "text" && sameMarks(last.Marks, node.Marks) {
			last.Text += node.Text
			return
		}
	}
	parent.Content = append(parent.Content, node)
}

func removeChild(parent, node *htmladf.Node) {
	if parent == nil {
		return
	}
	for i, c := range parent.Content {
		if c == node {
			parent.Content = append(parent.Content[:i], parent.Content[i+1:]...)
			return
		}
	}
}

// sameMarks compares two mark sets structurally. encoding/json sorts map
// keys, so the comparison is independent of attribute insertion order.
func sameMarks(a, b []*htmladf.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(aj) == string(bj)
}
