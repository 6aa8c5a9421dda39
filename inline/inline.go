// Package inline implements stage 3 of the Wikidot parsing pipeline:
// it walks the block-level attribute tree stage 2 produced and
// resolves every paragraph's and table cell's token list into the
// final tree.Element document tree, recovering from overlapping or
// unmatched inline markup via the frameStack toggle algorithm (see
// frame.go).
package inline

import (
	"strconv"

	"github.com/nowf41/wikidot-parser/block"
	"github.com/nowf41/wikidot-parser/token"
	"github.com/nowf41/wikidot-parser/tree"
)

// maxNesting caps BlockQuote/TabView recursion depth as a guard
// against pathological input driving unbounded recursion. Ordinary
// documents never come close to it.
const maxNesting = 128

// Parse resolves a block-level attribute tree into the final document
// tree.
func Parse(blocks []block.Attribute) []tree.Element {
	r := &resolver{}
	out := &frameStack{}
	r.walk(out, blocks, 0)
	return out.drain()
}

// resolver carries the state that must persist across the whole
// document rather than reset per paragraph: the sequential footnote
// ID counter. IDs are assigned in the order footnote frames are
// opened.
type resolver struct {
	nextFootnoteID int
}

// walk appends each block-level attribute's resolved form onto out,
// recursing into BlockQuote and TabView bodies. depth guards against
// runaway nesting; once it exceeds maxNesting, remaining content is
// dropped rather than recursed into further.
func (r *resolver) walk(out *frameStack, blocks []block.Attribute, depth int) {
	if depth > maxNesting {
		return
	}
	for _, b := range blocks {
		switch v := b.(type) {
		case block.BlockQuote:
			inner := &frameStack{}
			r.walk(inner, v.Children, depth+1)
			out.add(tree.QuoteBlock{Children: inner.drain()})

		case block.TabView:
			tabs := make([]tree.Tab, len(v.Tabs))
			for i, tab := range v.Tabs {
				inner := &frameStack{}
				r.walk(inner, tab.Children, depth+1)
				tabs[i] = tree.Tab{Title: tab.Title, Children: inner.drain()}
			}
			out.add(tree.TabView{Children: tabs})

		case block.Table:
			out.add(r.resolveTable(v))

		case block.Inline:
			out.add(tree.Paragraph{Children: r.resolveTokens(v.Tokens)})
		}
	}
}

func (r *resolver) resolveTable(t block.Table) tree.Element {
	rows := make([][]tree.Cell, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]tree.Cell, len(row))
		for j, c := range row {
			cells[j] = tree.Cell{
				Value:    r.resolveTokens(c.Value),
				Style:    cellStyle(c.Style),
				Spanning: c.Spanning,
			}
		}
		rows[i] = cells
	}
	return tree.Table{Rows: rows}
}

func cellStyle(s token.Style) tree.CellStyle {
	switch s {
	case token.StyleTitle:
		return tree.CellStyleTitle
	case token.StyleLeftAligned:
		return tree.CellStyleLeftAligned
	case token.StyleRightAligned:
		return tree.CellStyleRightAligned
	case token.StyleCenterAligned:
		return tree.CellStyleCenterAligned
	default:
		return tree.CellStyleNone
	}
}

// resolveTokens resolves one paragraph's or table cell's token list
// into inline elements, using a fresh frameStack per call. Spans
// never cross a paragraph/cell boundary, since the block stage never
// lets tokens from two different paragraphs or cells land in the
// same slice.
func (r *resolver) resolveTokens(tokens []token.Token) []tree.Element {
	st := &frameStack{}

	for _, t := range tokens {
		if top, ok := st.top(); ok && top.kind == kindIframe {
			switch v := t.(type) {
			case token.ElementEnd:
				if v.Name == "iframe" {
					st.popAndMerge()
				}
				// A mismatched closer inside an iframe body is
				// dropped (only Text tokens feed Raw); Wikidot iframes
				// are not meant to nest, so nothing reopens here.
			case token.Text:
				st.appendRaw(v.Value)
			}
			continue
		}

		switch v := t.(type) {
		case token.Bold:
			st.switchElement(frame{kind: kindBold})
		case token.Italics:
			st.switchElement(frame{kind: kindItalics})
		case token.Underline:
			st.switchElement(frame{kind: kindUnderline})
		case token.Strikethrough:
			st.switchElement(frame{kind: kindStrikethrough})
		case token.Superscript:
			st.switchElement(frame{kind: kindSuperscript})
		case token.Subscript:
			st.switchElement(frame{kind: kindSubscript})
		case token.MonospacedOpen:
			st.push(frame{kind: kindMonospaced})
		case token.MonospacedClose:
			st.closeElement(frame{kind: kindMonospaced})
		case token.ElementBegin:
			r.beginElement(st, v)
		case token.ElementEnd:
			r.endElement(st, v)
		case token.ColoredBeginColorName:
			if rgb, ok := token.Palette[v.Name]; ok {
				st.push(frame{kind: kindColored, red: rgb[0], green: rgb[1], blue: rgb[2]})
			}
		case token.ColoredBeginColorCode:
			red, green, blue := parseHexColor(v.Hex)
			st.push(frame{kind: kindColored, red: red, green: green, blue: blue})
		case token.ColoredEnd:
			st.closeElement(frame{kind: kindColored})
		case token.NamedLink:
			st.add(tree.Link{Href: v.Link, Name: v.Name})
		case token.PageLink:
			st.add(tree.InternalLink{Href: v.Link, Name: v.Name})
		case token.BlockQuote:
			panic("inline: BlockQuote token reached stage 3 (should have been consumed by block.Parse)")
		case token.CellSeparator:
			panic("inline: CellSeparator token reached stage 3 (should have been consumed by block.Parse)")
		case token.NewLine:
			st.add(tree.NewLine{})
		case token.Text:
			st.add(tree.Text{Value: v.Value})
		}
	}

	return st.drain()
}

// htmlTags allow-lists the ElementBegin/ElementEnd names that resolve
// to a generic tree.HTMLElement. "tabview" and "tab" are deliberately
// absent: they are always consumed during block parsing, and a stray
// mismatched closer of either should vanish rather than render as an
// HTML element.
var htmlTags = map[string]bool{
	"span": true, "div": true, "code": true,
	"del": true, "ins": true, "mark": true,
	"sup": true, "sub": true,
}

func (r *resolver) beginElement(st *frameStack, e token.ElementBegin) {
	switch e.Name {
	case "size":
		st.push(frame{kind: kindSize, scale: firstPositionalAttr(e.Attributes)})
	case "collapsible":
		st.push(frame{kind: kindCollapsible})
	case "footnote":
		id := r.nextFootnoteID
		r.nextFootnoteID++
		st.push(frame{kind: kindFootnote, footnoteID: id})
	case "iframe":
		st.push(frame{kind: kindIframe})
	default:
		if htmlTags[e.Name] {
			st.push(frame{kind: kindHTMLElement, htmlTag: e.Name, htmlProps: attrsToProps(e.Attributes)})
		}
	}
}

func (r *resolver) endElement(st *frameStack, e token.ElementEnd) {
	switch e.Name {
	case "size":
		st.closeElement(frame{kind: kindSize})
	case "collapsible":
		st.closeElement(frame{kind: kindCollapsible})
	case "footnote":
		st.closeElement(frame{kind: kindFootnote})
	case "iframe":
		// Reaching here means there was no open iframe frame (the
		// top-of-stack fast path above handles the normal case);
		// nothing to close.
	default:
		if htmlTags[e.Name] {
			st.closeElement(frame{kind: kindHTMLElement, htmlTag: e.Name})
		}
	}
}

func firstPositionalAttr(attrs []token.Attribute) string {
	for _, a := range attrs {
		if a.Key == "" {
			return a.Value
		}
	}
	return ""
}

func attrsToProps(attrs []token.Attribute) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	props := make(map[string]string, len(attrs))
	for _, a := range attrs {
		props[a.Key] = a.Value
	}
	return props
}

// parseHexColor decodes a 6-digit hex string channel by channel. A
// channel with invalid digits resolves to 0, independently of its
// neighbors.
func parseHexColor(hex string) (red, green, blue uint8) {
	return parseHexByte(hex, 0), parseHexByte(hex, 2), parseHexByte(hex, 4)
}

func parseHexByte(hex string, at int) uint8 {
	if at+2 > len(hex) {
		return 0
	}
	v, err := strconv.ParseUint(hex[at:at+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

