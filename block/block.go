// Package block implements stage 2 of the Wikidot parsing pipeline: a
// stack-based pass over the tokenizer's flat token stream that groups
// tokens into a shallow tree of block-level attributes (paragraphs,
// blockquotes, tables, tabviews), without touching the inline markup
// inside a paragraph or table cell (that is stage 3's job, package
// inline).
package block

import "github.com/nowf41/wikidot-parser/token"

// Attribute is one block-level construct: a blockquote, a table, a
// tabview, or a bare paragraph of unresolved tokens.
//
// Tab is deliberately not an Attribute variant of its own: a tab
// only ever exists inside its parent TabView's Tabs slice, never as a
// free-standing sibling, so giving it the marker method would let
// callers construct an Attribute slice containing a Tab with no
// TabView around it, a shape Parse never produces.
type Attribute interface {
	attribute()
}

// BlockQuote holds the block-level attributes nested inside one level
// of ">" quoting.
type BlockQuote struct {
	Children []Attribute
}

// Tab is a single "[[tab title]]...[[/tab]]" pane of a TabView.
type Tab struct {
	Title    string
	Children []Attribute
}

// TabView holds the ordered tabs of a "[[tabview]]...[[/tabview]]"
// block.
type TabView struct {
	Tabs []Tab
}

// Cell is one table cell's raw, not-yet-inline-resolved content.
type Cell struct {
	Value    []token.Token
	Style    token.Style
	Spanning int
}

// Table is a "||a||b||\n||c||d||" block, a row-major grid of cells.
type Table struct {
	Rows [][]Cell
}

// Inline is a paragraph: a run of tokens that stage 3 will resolve
// into inline markup. A top-level Inline attribute represents one
// paragraph.
type Inline struct {
	Tokens []token.Token
}

func (BlockQuote) attribute() {}
func (TabView) attribute()    {}
func (Table) attribute()      {}
func (Inline) attribute()     {}
