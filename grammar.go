package htmladf

// PermittedChildren constrains which child type names may legally appear
// directly under a parent type.
type PermittedChildren struct {
	// any holds the unordered rule: children may appear in any order and
	// count, drawn only from this set. An empty set permits no children.
	any map[string]bool

	// prefix and repeat hold the sequenced rule: the child sequence must
	// begin with a (possibly empty) run drawn from prefix and may continue
	// with a run drawn from repeat. When prefix is nil the rule is the
	// unordered one.
	prefix map[string]bool
	repeat map[string]bool
}

// AnyOf builds a rule permitting children of the given types in any order
// and count. With no arguments it permits no children at all.
func AnyOf(names ...string) PermittedChildren {
	return PermittedChildren{any: toSet(names)}
}

// PrefixThenRepeat builds a rule requiring the child sequence to start with
// a run drawn from prefix and continue with a run drawn from repeat. Either
// run may be empty.
func PrefixThenRepeat(prefix, repeat []string) PermittedChildren {
	return PermittedChildren{prefix: toSet(prefix), repeat: toSet(repeat)}
}

// Legal reports whether an ordered child type sequence satisfies the rule.
func (pc PermittedChildren) Legal(children []string) bool {
	if pc.prefix == nil {
		for _, name := range children {
			if !pc.any[name] {
				return false
			}
		}
		return true
	}
	// Greedily consume the prefix run; a maximal prefix run never rejects a
	// sequence some shorter run would accept, because any element past a
	// valid split point is already known to be in the repeat set.
	i := 0
	for i < len(children) && pc.prefix[children[i]] {
		i++
	}
	for ; i < len(children); i++ {
		if !pc.repeat[children[i]] {
			return false
		}
	}
	return true
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Grammar is the immutable mapping from ADF type names to their
// permitted-children rules. A type absent from the grammar permits no
// children.
type Grammar struct {
	rules map[string]PermittedChildren
}

// IsLegal reports whether the ordered child type sequence is permitted
// directly under the parent type.
func (g *Grammar) IsLegal(parent string, children []string) bool {
	rule, ok := g.rules[parent]
	if !ok {
		return len(children) == 0
	}
	return rule.Legal(children)
}

// Rule returns the registered rule for a type and whether one exists.
func (g *Grammar) Rule(parent string) (PermittedChildren, bool) {
	rule, ok := g.rules[parent]
	return rule, ok
}

// tableCellContent is the block set permitted inside table headers and
// cells; tableCell additionally permits hardBreak.
var tableCellContent = []string{
	"codeBlock", "blockCard", "paragraph", "bulletList", "mediaSingle",
	"orderedList", "heading", "panel", "blockquote", "rule", "mediaGroup",
	"decisionList", "taskList", "extension", "embedCard", "nestedExpand",
}

// NewGrammar builds the default ADF nesting grammar.
func NewGrammar() *Grammar {
	return &Grammar{rules: map[string]PermittedChildren{
		"paragraph":   AnyOf("text", "emoji", "hardBreak"),
		"heading":     AnyOf("text", "emoji", "hardBreak"),
		"bulletList":  AnyOf("listItem"),
		"orderedList": AnyOf("listItem"),
		"blockquote":  AnyOf("paragraph"),
		"codeBlock":   AnyOf("paragraph"),
		"listItem": PrefixThenRepeat(
			[]string{"paragraph", "mediaSingle", "codeBlock"},
			[]string{"paragraph", "mediaSingle", "mediaGroup", "codeBlock", "orderedList", "bulletList"},
		),
		"table":       AnyOf("tableRow"),
		"tableRow":    AnyOf("tableHeader", "tableCell"),
		"tableHeader": AnyOf(tableCellContent...),
		"tableCell":   AnyOf(append(append([]string{}, tableCellContent...), "hardBreak")...),
		"doc": AnyOf(
			"blockCard", "blockquote", "bodiedExtension", "bulletList",
			"codeBlock", "decisionList", "embedCard", "expand", "extension",
			"heading", "layoutSection", "mediaGroup", "mediaSingle",
			"orderedList", "panel", "paragraph", "rule", "table", "taskList",
		),
	}}
}
