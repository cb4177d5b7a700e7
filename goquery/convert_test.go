package goquery_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/htmladf"
	"github.com/fwojciec/htmladf/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// convert is a test helper running the default converter.
func convert(t *testing.T, raw string) *htmladf.Node {
	t.Helper()
	doc, err := goquery.NewConverter().Convert(raw)
	require.NoError(t, err)
	require.Equal(t, "doc", doc.Type)
	return doc
}

func TestConverterBasics(t *testing.T) {
	t.Parallel()

	t.Run("paragraph with text", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>hello</p>")
		require.Len(t, doc.Content, 1)
		p := doc.Content[0]
		assert.Equal(t, "paragraph", p.Type)
		require.Len(t, p.Content, 1)
		assert.Equal(t, "text", p.Content[0].Type)
		assert.Equal(t, "hello", p.Content[0].Text)
	})

	t.Run("empty input yields an empty doc", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "")
		assert.Empty(t, doc.Content)
	})

	t.Run("heading level is an integer attribute", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<h3>x</h3>")
		require.Len(t, doc.Content, 1)
		h := doc.Content[0]
		assert.Equal(t, "heading", h.Type)
		assert.Equal(t, 3, h.Attrs["level"])

		data, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"type":"doc","content":[{"type":"heading","attrs":{"level":3},"content":[{"type":"text","text":"x"}]}]}`,
			string(data))
	})

	t.Run("text fidelity is preserved verbatim", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>  hello  </p>")
		require.Len(t, doc.Content, 1)
		assert.Equal(t, "  hello  ", doc.Content[0].Content[0].Text)
	})

	t.Run("bare text is wrapped in a paragraph", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "hello")
		require.Len(t, doc.Content, 1)
		assert.Equal(t, "paragraph", doc.Content[0].Type)
		assert.Equal(t, "hello", doc.Content[0].Content[0].Text)
	})

	t.Run("unmapped tags are transparent", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<div><article><p>x</p></article></div>")
		require.Len(t, doc.Content, 1)
		assert.Equal(t, "paragraph", doc.Content[0].Type)
		assert.Equal(t, "x", doc.Content[0].Content[0].Text)
	})

	t.Run("line breaks stay inline", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>a<br>b</p>")
		require.Len(t, doc.Content, 1)
		p := doc.Content[0]
		require.Len(t, p.Content, 3)
		assert.Equal(t, "text", p.Content[0].Type)
		assert.Equal(t, "hardBreak", p.Content[1].Type)
		assert.Equal(t, "text", p.Content[2].Type)
	})

	t.Run("iframe becomes a paragraph with src", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, `<iframe src="https://example.com/embed"></iframe>`)
		require.Len(t, doc.Content, 1)
		p := doc.Content[0]
		assert.Equal(t, "paragraph", p.Type)
		assert.Equal(t, "https://example.com/embed", p.Attrs["src"])
	})
}

func TestConverterMarks(t *testing.T) {
	t.Parallel()

	t.Run("nested formatting collects marks outermost first", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p><b><i>x</i></b></p>")
		text := doc.Content[0].Content[0]
		require.Equal(t, "text", text.Type)
		require.Len(t, text.Marks, 2)
		assert.Equal(t, "strong", text.Marks[0].Type)
		assert.Equal(t, "em", text.Marks[1].Type)
	})

	t.Run("link mark carries href", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, `<p><a href="https://example.com">x</a></p>`)
		text := doc.Content[0].Content[0]
		require.Len(t, text.Marks, 1)
		assert.Equal(t, "link", text.Marks[0].Type)
		assert.Equal(t, map[string]any{"href": "https://example.com"}, text.Marks[0].Attrs)
	})

	t.Run("subscript and superscript", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>H<sub>2</sub>O and x<sup>2</sup></p>")
		p := doc.Content[0]
		require.Len(t, p.Content, 4)
		assert.Equal(t, map[string]any{"type": "sub"}, p.Content[1].Marks[0].Attrs)
		assert.Equal(t, map[string]any{"type": "sup"}, p.Content[3].Marks[0].Attrs)
	})

	t.Run("marks stop at the nearest block ancestor", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p><u>a</u>b</p>")
		p := doc.Content[0]
		require.Len(t, p.Content, 2)
		require.Len(t, p.Content[0].Marks, 1)
		assert.Equal(t, "underline", p.Content[0].Marks[0].Type)
		assert.Empty(t, p.Content[1].Marks)
	})

	t.Run("duplicate mark types keep one occurrence", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p><b><strong>x</strong></b></p>")
		text := doc.Content[0].Content[0]
		require.Len(t, text.Marks, 1)
		assert.Equal(t, "strong", text.Marks[0].Type)
	})

	t.Run("adjacent text with identical marks coalesces", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p><b>a</b><b>b</b></p>")
		p := doc.Content[0]
		require.Len(t, p.Content, 1)
		assert.Equal(t, "ab", p.Content[0].Text)
		require.Len(t, p.Content[0].Marks, 1)
		assert.Equal(t, "strong", p.Content[0].Marks[0].Type)
	})

	t.Run("text with differing marks stays separate", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p><b>a</b><i>b</i></p>")
		p := doc.Content[0]
		require.Len(t, p.Content, 2)
		assert.Equal(t, "strong", p.Content[0].Marks[0].Type)
		assert.Equal(t, "em", p.Content[1].Marks[0].Type)
	})
}

func TestConverterLists(t *testing.T) {
	t.Parallel()

	t.Run("bullet list items wrap their text in paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<ul><li>a</li><li>b</li></ul>")
		require.Len(t, doc.Content, 1)
		list := doc.Content[0]
		assert.Equal(t, "bulletList", list.Type)
		require.Len(t, list.Content, 2)
		for i, want := range []string{"a", "b"} {
			item := list.Content[i]
			assert.Equal(t, "listItem", item.Type)
			require.Len(t, item.Content, 1)
			assert.Equal(t, "paragraph", item.Content[0].Type)
			assert.Equal(t, want, item.Content[0].Content[0].Text)
		}
	})

	t.Run("ordered list", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<ol><li>one</li></ol>")
		assert.Equal(t, "orderedList", doc.Content[0].Type)
	})

	t.Run("nested list follows its leading paragraph", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<ul><li>a<ul><li>b</li></ul></li></ul>")
		item := doc.Content[0].Content[0]
		require.Len(t, item.Content, 2)
		assert.Equal(t, "paragraph", item.Content[0].Type)
		assert.Equal(t, "bulletList", item.Content[1].Type)
		inner := item.Content[1].Content[0]
		assert.Equal(t, "listItem", inner.Type)
		assert.Equal(t, "b", inner.Content[0].Content[0].Text)
	})

	t.Run("heading inside a list item is re-homed to the document", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<ul><li><h2>T</h2></li></ul>")
		require.Len(t, doc.Content, 1)
		h := doc.Content[0]
		assert.Equal(t, "heading", h.Type)
		assert.Equal(t, 2, h.Attrs["level"])
		assert.Equal(t, "T", h.Content[0].Text)
	})
}

func TestConverterTables(t *testing.T) {
	t.Parallel()

	t.Run("rows, headers and cells", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<table><tr><th>h</th><td>x</td></tr></table>")
		require.Len(t, doc.Content, 1)
		table := doc.Content[0]
		assert.Equal(t, "table", table.Type)
		require.Len(t, table.Content, 1)
		row := table.Content[0]
		assert.Equal(t, "tableRow", row.Type)
		require.Len(t, row.Content, 2)

		header := row.Content[0]
		assert.Equal(t, "tableHeader", header.Type)
		require.Len(t, header.Content, 1)
		assert.Equal(t, "paragraph", header.Content[0].Type)
		assert.Equal(t, "h", header.Content[0].Content[0].Text)

		cell := row.Content[1]
		assert.Equal(t, "tableCell", cell.Type)
		assert.Equal(t, "x", cell.Content[0].Content[0].Text)
	})

	t.Run("empty cell survives as a bare tableCell", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<table><tr><td></td><td>x</td></tr></table>")
		row := doc.Content[0].Content[0]
		require.Len(t, row.Content, 2)
		assert.Equal(t, "tableCell", row.Content[0].Type)
		assert.Empty(t, row.Content[0].Content)
		assert.Equal(t, "x", row.Content[1].Content[0].Content[0].Text)
	})

	t.Run("line break inside a cell stays in the cell paragraph", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<table><tr><td>x<br>y</td></tr></table>")
		cell := doc.Content[0].Content[0].Content[0]
		require.Len(t, cell.Content, 1)
		p := cell.Content[0]
		require.Len(t, p.Content, 3)
		assert.Equal(t, "hardBreak", p.Content[1].Type)
	})
}

func TestConverterRules(t *testing.T) {
	t.Parallel()

	t.Run("top-level hr becomes a rule", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>a</p><hr><p>b</p>")
		require.Len(t, doc.Content, 3)
		assert.Equal(t, "paragraph", doc.Content[0].Type)
		assert.Equal(t, "rule", doc.Content[1].Type)
		assert.Equal(t, "paragraph", doc.Content[2].Type)
	})

	t.Run("hr inside a paragraph splits it", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<p>a<hr/>b</p>")
		require.Len(t, doc.Content, 3)
		assert.Equal(t, "a", doc.Content[0].Content[0].Text)
		assert.Equal(t, "rule", doc.Content[1].Type)
		assert.Equal(t, "b", doc.Content[2].Content[0].Text)
	})
}

func TestConverterMedia(t *testing.T) {
	t.Parallel()

	t.Run("external image", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, `<img src="http://x/y.png" data-layout="wide">`)
		require.Len(t, doc.Content, 1)
		media := doc.Content[0]
		assert.Equal(t, "mediaSingle", media.Type)
		assert.Equal(t, "wide", media.Attrs["layout"])
		require.Len(t, media.Content, 1)
		assert.Equal(t, "media", media.Content[0].Type)
		assert.Equal(t, map[string]any{"url": "http://x/y.png", "type": "external"}, media.Content[0].Attrs)
	})

	t.Run("file image with integer width", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, `<img data-media-id="123" data-width="50" data-width-type="pixel">`)
		media := doc.Content[0].Content[0]
		assert.Equal(t, map[string]any{
			"id":        "123",
			"type":      "file",
			"width":     50,
			"widthType": "pixel",
		}, media.Attrs)
	})

	t.Run("image inside a paragraph splits it", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, `<p>a<img src="http://x/y.png">b</p>`)
		require.Len(t, doc.Content, 3)
		assert.Equal(t, "paragraph", doc.Content[0].Type)
		assert.Equal(t, "mediaSingle", doc.Content[1].Type)
		assert.Equal(t, "paragraph", doc.Content[2].Type)
	})
}

func TestConverterBlockquote(t *testing.T) {
	t.Parallel()

	t.Run("quoted paragraph", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<blockquote><p>q</p></blockquote>")
		bq := doc.Content[0]
		assert.Equal(t, "blockquote", bq.Type)
		assert.Equal(t, "paragraph", bq.Content[0].Type)
		assert.Equal(t, "q", bq.Content[0].Content[0].Text)
	})

	t.Run("bare quoted text is wrapped", func(t *testing.T) {
		t.Parallel()

		doc := convert(t, "<blockquote>q</blockquote>")
		bq := doc.Content[0]
		assert.Equal(t, "blockquote", bq.Type)
		assert.Equal(t, "paragraph", bq.Content[0].Type)
	})
}

func TestConverterDeterminism(t *testing.T) {
	t.Parallel()

	raw := `<h1>Title</h1><p>Intro with <b>bold</b> and <a href="u">a link</a>.</p>
<ul><li>one</li><li>two<br>lines</li></ul>
<table><tr><th>k</th><td></td></tr></table><hr>
<img data-media-id="1" data-width="10" data-height="20" data-width-type="percentage">`

	first := convert(t, raw)
	second := convert(t, raw)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	aj, err := json.Marshal(first)
	require.NoError(t, err)
	bj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(aj), string(bj))
}
