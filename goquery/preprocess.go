package goquery

import "regexp"

// placeholderRuleTag is the reserved element name substituted for
// horizontal-rule tags before parsing. Parsers auto-close every open
// ancestor tag when they encounter <hr>, destroying the intended nesting;
// a paired, unknown element is nested like any other. The namespaced name
// cannot collide with legitimate authored markup, and leaves carrying it
// are relabeled back to hr after traversal.
const placeholderRuleTag = "htmladf-rule"

var rulePattern = regexp.MustCompile(`(?i)</?hr\s*/?>`)

// EscapeRules rewrites every <hr>, <hr/> and </hr> occurrence in raw HTML
// into a paired placeholder element. Apply it before handing the text to an
// HTML parser; Converter does this automatically.
func EscapeRules(html string) string {
	return rulePattern.ReplaceAllString(html, "<"+placeholderRuleTag+"></"+placeholderRuleTag+">")
}
