package htmladf

import "strconv"

// Element provides read-only access to a source HTML element. It decouples
// the registry's attribute derivations from any particular parser; the
// parser-facing packages adapt their node types to it.
type Element interface {
	// TagName returns the lowercase tag name of the element.
	TagName() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)
}

// Attr is a single JSON-ready attribute. Attribute derivations return
// ordered slices of Attr; ordering is preserved until the values are
// materialized into a Node's attribute map.
type Attr struct {
	Key   string
	Value any
}

// AttrMap materializes an ordered attribute list into a Node attribute map.
// Returns nil for an empty list so omitempty drops the attrs key.
func AttrMap(attrs []Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]any, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

// MarkAttrs determines the attributes attached to a mark instance. It is a
// small tagged variant: StaticAttrs carries fixed values, DerivedAttrs
// computes them from the source element. Keeping the two cases as distinct
// types keeps the registry inspectable.
type MarkAttrs interface {
	Resolve(el Element) []Attr
}

// StaticAttrs is a fixed, source-independent attribute list.
type StaticAttrs []Attr

// Resolve returns the static attribute list unchanged.
func (a StaticAttrs) Resolve(Element) []Attr { return a }

// DerivedAttrs computes mark attributes from the source element.
type DerivedAttrs func(el Element) []Attr

// Resolve invokes the derivation against the source element.
func (d DerivedAttrs) Resolve(el Element) []Attr { return d(el) }

// MarkSpec describes an inline mark contributed by an HTML tag. Attrs may
// be nil for marks that carry no attributes.
type MarkSpec struct {
	Type  string
	Attrs MarkAttrs
}

// Resolve materializes the spec into a concrete Mark for the given source
// element.
func (s MarkSpec) Resolve(el Element) *Mark {
	m := &Mark{Type: s.Type}
	if s.Attrs != nil {
		m.Attrs = AttrMap(s.Attrs.Resolve(el))
	}
	return m
}

// AttrFunc derives a content type's attributes from its source element.
type AttrFunc func(el Element) []Attr

// ChildFunc synthesizes extra attributes and ready-made child nodes from a
// source element. Synthesized children are constructed directly by the
// registry and are not subject to the nesting grammar.
type ChildFunc func(el Element) ([]Attr, []*Node)

// ContentType describes the ADF content type an HTML tag maps to: the ADF
// type name, an optional attribute derivation, the inline marks the tag
// contributes, and optional synthesized children.
type ContentType struct {
	Name     string
	Attrs    AttrFunc
	Marks    []MarkSpec
	Children ChildFunc
}

// Inline reports whether the content type maps to inline text rather than
// block structure.
func (ct *ContentType) Inline() bool { return ct.Name == "text" }

// ResolveAttrs derives the content type's attributes for the given source
// element. Returns nil when the type has no attribute derivation.
func (ct *ContentType) ResolveAttrs(el Element) []Attr {
	if ct.Attrs == nil {
		return nil
	}
	return ct.Attrs(el)
}

// ResolveMarks materializes the content type's marks for the given source
// element.
func (ct *ContentType) ResolveMarks(el Element) []*Mark {
	if len(ct.Marks) == 0 {
		return nil
	}
	marks := make([]*Mark, 0, len(ct.Marks))
	for _, spec := range ct.Marks {
		marks = append(marks, spec.Resolve(el))
	}
	return marks
}

// Registry is the immutable mapping from HTML tag names to ADF content
// types. Construct it once with NewRegistry and share it freely; Resolve
// never mutates state.
type Registry struct {
	types map[string]*ContentType
}

// Resolve returns the content type for an HTML tag name. Unmapped tags
// return false; their descendants pass through transparently.
func (r *Registry) Resolve(tag string) (*ContentType, bool) {
	ct, ok := r.types[tag]
	return ct, ok
}

// NewRegistry builds the default tag registry.
func NewRegistry() *Registry {
	types := map[string]*ContentType{
		"p":          {Name: "paragraph"},
		"blockquote": {Name: "blockquote"},
		"span":       {Name: "text"},
		"text":       {Name: "text"},
		"ul":         {Name: "bulletList"},
		"ol":         {Name: "orderedList"},
		"li":         {Name: "listItem"},
		"hr":         {Name: "rule"},
		"br":         {Name: "hardBreak"},
		"html":       {Name: "doc"},
		"body":       {Name: "doc"},
		"table":      {Name: "table"},
		"tr":         {Name: "tableRow"},
		"th":         {Name: "tableHeader"},
		"td":         {Name: "tableCell"},
		"iframe": {Name: "paragraph", Attrs: func(el Element) []Attr {
			if src, ok := el.Attr("src"); ok {
				return []Attr{{Key: "src", Value: src}}
			}
			return nil
		}},
		"b":      markType("strong", nil),
		"strong": markType("strong", nil),
		"i":      markType("em", nil),
		"em":     markType("em", nil),
		"u":      markType("underline", nil),
		"code":   markType("code", nil),
		"a": markType("link", DerivedAttrs(func(el Element) []Attr {
			if href, ok := el.Attr("href"); ok {
				return []Attr{{Key: "href", Value: href}}
			}
			return nil
		})),
		"sub": markType("subsup", StaticAttrs{{Key: "type", Value: "sub"}}),
		"sup": markType("subsup", StaticAttrs{{Key: "type", Value: "sup"}}),
		"img": {Name: "mediaSingle", Children: mediaContent},
	}
	for i := 1; i <= 6; i++ {
		level := i
		types["h"+strconv.Itoa(i)] = &ContentType{
			Name: "heading",
			Attrs: func(Element) []Attr {
				return []Attr{{Key: "level", Value: level}}
			},
		}
	}
	return &Registry{types: types}
}

// markType builds a text content type carrying a single mark.
func markType(mark string, attrs MarkAttrs) *ContentType {
	return &ContentType{
		Name:  "text",
		Marks: []MarkSpec{{Type: mark, Attrs: attrs}},
	}
}

// mediaContent synthesizes the mediaSingle attributes and its single media
// child from an img element. A src attribute wins over data-media-id;
// width/height are included only when they parse as integers, and
// widthType only when it is "pixel" or "percentage".
func mediaContent(el Element) ([]Attr, []*Node) {
	layout := "center"
	if v, ok := el.Attr("data-layout"); ok {
		layout = v
	}
	attrs := []Attr{{Key: "layout", Value: layout}}

	media := &Node{Type: "media"}
	if src, ok := el.Attr("src"); ok {
		media.Attrs = map[string]any{
			"url":  src,
			"type": "external",
		}
	} else if id, ok := el.Attr("data-media-id"); ok {
		media.Attrs = map[string]any{
			"id":   id,
			"type": "file",
		}
		if v, ok := el.Attr("data-collection"); ok {
			media.Attrs["collection"] = v
		}
		if v, ok := el.Attr("alt"); ok {
			media.Attrs["alt"] = v
		}
		if v, ok := el.Attr("data-width"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				media.Attrs["width"] = n
			}
		}
		if v, ok := el.Attr("data-height"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				media.Attrs["height"] = n
			}
		}
		if v, ok := el.Attr("data-width-type"); ok {
			if v == "pixel" || v == "percentage" {
				media.Attrs["widthType"] = v
			}
		}
	}
	return attrs, []*Node{media}
}
