package tree_test

import (
	"testing"

	"github.com/nowf41/wikidot-parser/tree"
	"github.com/stretchr/testify/assert"
)

// Variants implement Element purely via the unexported marker method;
// this documents the full variant set and would fail to compile if any
// variant stopped satisfying the interface.
func TestVariantsImplementElement(t *testing.T) {
	elems := []tree.Element{
		tree.Paragraph{},
		tree.Text{Value: "hi"},
		tree.Bold{}, tree.Italics{}, tree.Underline{}, tree.Strikethrough{},
		tree.Monospaced{}, tree.Superscript{}, tree.Subscript{},
		tree.Colored{Red: 0xff},
		tree.Size{Scale: "150%"},
		tree.Link{Href: "https://example.com"},
		tree.InternalLink{Href: "some-page"},
		tree.Collapsible{},
		tree.Footnote{ID: 0},
		tree.QuoteBlock{},
		tree.Iframe{Raw: "<b>hi</b>"},
		tree.Tab{Title: "First"},
		tree.TabView{},
		tree.Table{},
		tree.NewLine{},
		tree.HTMLElement{Tag: "span"},
	}
	assert.Len(t, elems, 22)
}

func TestCellStyleZeroValueIsNone(t *testing.T) {
	var c tree.Cell
	assert.Equal(t, tree.CellStyleNone, c.Style)
	assert.Equal(t, 0, c.Spanning)
}

func TestTabViewHoldsOnlyTabs(t *testing.T) {
	tv := tree.TabView{Children: []tree.Tab{
		{Title: "One", Children: []tree.Element{tree.Text{Value: "a"}}},
		{Title: "Two", Children: []tree.Element{tree.Text{Value: "b"}}},
	}}
	assert.Len(t, tv.Children, 2)
	assert.Equal(t, "One", tv.Children[0].Title)
}
