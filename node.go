package htmladf

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Node is a single node in an ADF document tree. The zero value is not
// useful; every node carries at least a Type. The root of a converted
// document always has Type "doc".
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Marks   []*Mark        `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is an inline decoration (bold, italic, link, etc.) attached to a
// text node.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Fingerprint returns a stable content hash of the node and its subtree.
// Two trees with identical structure, attributes, marks and text produce
// the same fingerprint; encoding/json sorts map keys, so the hash is
// independent of attribute insertion order.
func (n *Node) Fingerprint() uint64 {
	data, err := json.Marshal(n)
	if err != nil {
		// Node contains only marshalable types; this cannot happen.
		return 0
	}
	return xxhash.Sum64(data)
}

// Walk calls fn for the node and every node in its subtree in depth-first,
// document order. If fn returns false the subtree below the current node is
// skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Content {
		child.Walk(fn)
	}
}

// Count returns the total number of nodes in the tree, including n itself.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) bool {
		total++
		return true
	})
	return total
}
