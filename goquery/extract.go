package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// DocNode is a leaf content record extracted from a parsed HTML tree. The
// parse tree owns all node data; Src only references a position in it, so a
// DocNode is valid exactly as long as the tree it came from. A DocNode is
// never modified after extraction.
type DocNode struct {
	// Name is the HTML tag name of the leaf, or "text" for text leaves.
	Name string

	// Text is the raw source text. Only meaningful for text leaves;
	// element leaves always carry the empty string.
	Text string

	// Src is the provenance reference into the parse tree.
	Src *html.Node
}

// ExtractLeaves flattens a parsed HTML tree into an ordered sequence of
// leaf records. The traversal is depth-first and records each node on its
// closing visit, so every leaf appears exactly once and in document order.
//
// Element leaves are emitted for br, img and iframe (always), for the rule
// placeholder (relabeled to hr), and for table cells with no meaningful
// descendant. Text leaves keep their original, untrimmed text; outside a
// pre element, whitespace-only text is skipped.
func ExtractLeaves(root *html.Node) []DocNode {
	var leaves []DocNode
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "br", "img", "iframe":
				leaves = append(leaves, DocNode{Name: n.Data, Src: n})
			case placeholderRuleTag:
				leaves = append(leaves, DocNode{Name: "hr", Src: n})
			case "td":
				if !hasMeaningfulChild(n) {
					leaves = append(leaves, DocNode{Name: "td", Src: n})
				}
			}
		case html.TextNode:
			if n.Parent == nil {
				return
			}
			if keepText(n) {
				leaves = append(leaves, DocNode{Name: "text", Text: n.Data, Src: n})
			}
		}
	}
	walk(root)
	return leaves
}

// keepText reports whether a text node carries content worth emitting.
// Inside a pre element all non-empty text is kept verbatim; elsewhere the
// text must contain at least one non-whitespace character.
func keepText(n *html.Node) bool {
	if insidePre(n) {
		return n.Data != ""
	}
	return strings.TrimSpace(n.Data) != ""
}

// insidePre reports whether the node is a descendant of a pre element.
func insidePre(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "pre" {
			return true
		}
	}
	return false
}

// hasMeaningfulChild reports whether any descendant of the node is a line
// break or a text node that keepText would emit. Table cells without a
// meaningful descendant are represented by a single cell leaf instead of
// their children.
func hasMeaningfulChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if c.Data == "br" || hasMeaningfulChild(c) {
				return true
			}
		case html.TextNode:
			if keepText(c) {
				return true
			}
		}
	}
	return false
}
