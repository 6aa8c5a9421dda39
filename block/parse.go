package block

import (
	"strings"

	"github.com/nowf41/wikidot-parser/token"
)

// Parse groups a flat token stream into the shallow tree of
// block-level attributes the inline stage consumes. It never fails:
// a "[[/tabview]]"/"[[/tab]]" closer that does not match the innermost
// open frame is silently dropped, and element tags other than tabview
// and tab are buffered as ordinary paragraph tokens for the inline
// stage.
func Parse(tokens []token.Token) []Attribute {
	b := &builder{}
	isLastNewline := false

	for _, t := range tokens {
		switch v := t.(type) {
		case token.BlockQuote:
			b.setBQDepth(v.Level)
			isLastNewline = false

		case token.ElementBegin:
			if isLastNewline {
				b.setBQDepth(0)
			}
			switch v.Name {
			case "tabview":
				b.push(stackFrame{kind: frameTabView})
			case "tab":
				b.push(stackFrame{kind: frameTab, title: tabTitle(v.Attributes)})
			default:
				b.addToken(t)
			}
			isLastNewline = false

		case token.ElementEnd:
			if isLastNewline {
				b.setBQDepth(0)
			}
			switch v.Name {
			case "tabview":
				if k, ok := b.lastFrameKind(); ok && k == frameTabView {
					b.popAndMerge()
				}
			case "tab":
				if k, ok := b.lastFrameKind(); ok && k == frameTab {
					b.popAndMerge()
				}
			default:
				b.addToken(t)
			}
			isLastNewline = false

		case token.NewLine:
			if isLastNewline {
				// Second consecutive NewLine: a paragraph break.
				b.flush()
				b.setBQDepth(0)
			} else {
				b.addToken(t)
			}
			isLastNewline = true

		default:
			if isLastNewline {
				b.setBQDepth(0)
			}
			b.addToken(t)
			isLastNewline = false
		}
	}

	return b.get()
}

// tabTitle concatenates a tab tag's positional attribute values
// (empty Key) with a single space, the same rule Wikidot uses for a
// tab's display title: "[[tab My Tab]]" and "[[tab My|Tab]]" both
// yield the title "My Tab".
func tabTitle(attrs []token.Attribute) string {
	var b strings.Builder
	for _, a := range attrs {
		if a.Key != "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.Value)
	}
	return b.String()
}
