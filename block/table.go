package block

import "github.com/nowf41/wikidot-parser/token"

// parseTable converts one flushed run of buffered tokens (everything
// between two block-level boundaries) into zero or more Attribute
// values. A "||" CellSeparator only starts a table when it is the
// first token on its line; otherwise it is reconstituted as literal
// text ("||" plus its style character, if any). Once a table is open,
// it stays open across its own internal NewLines and closes either on
// a non-table line or at end of input.
func parseTable(buf []token.Token) []Attribute {
	var res []Attribute

	var table [][]Cell
	spanningCount := 0
	isTableLine := false
	var nowBuf []token.Token
	isLastNewline := true
	recentCellStyle := token.StyleNone

	flushPending := func() {
		if len(nowBuf) > 0 {
			res = append(res, Inline{Tokens: nowBuf})
			nowBuf = nil
		}
	}

	for _, t := range buf {
		switch v := t.(type) {
		case token.CellSeparator:
			if isLastNewline {
				isTableLine = true
				if len(table) == 0 && len(nowBuf) > 0 {
					// nowBuf's last token is always the NewLine that
					// preceded this line; drop it before flushing the
					// paragraph that came before the table.
					nowBuf = nowBuf[:len(nowBuf)-1]
					flushPending()
				}
				table = append(table, []Cell{})
			}

			if isTableLine {
				switch {
				case len(nowBuf) > 0 && !isLastNewline:
					table[len(table)-1] = append(table[len(table)-1], Cell{
						Value:    nowBuf,
						Style:    recentCellStyle,
						Spanning: spanningCount,
					})
					nowBuf = nil
					spanningCount = 0
				case len(nowBuf) > 0 && isLastNewline:
					flushPending()
				}
				recentCellStyle = v.Style
				spanningCount++
			} else {
				literal := "||" + styleChar(v.Style)
				if len(nowBuf) > 0 {
					if txt, ok := nowBuf[len(nowBuf)-1].(token.Text); ok {
						nowBuf[len(nowBuf)-1] = token.Text{Value: txt.Value + literal}
					} else {
						nowBuf = append(nowBuf, token.Text{Value: literal})
					}
				} else {
					nowBuf = append(nowBuf, token.Text{Value: literal})
				}
			}

			isLastNewline = false

		case token.NewLine:
			if !isTableLine {
				if isLastNewline {
					flushPending()
				} else {
					nowBuf = append(nowBuf, t)
				}
			} else {
				nowBuf = nil
				spanningCount = 0
			}
			isLastNewline = true
			isTableLine = false

		default:
			if len(table) > 0 && !isTableLine {
				res = append(res, Table{Rows: table})
				table = nil
				nowBuf = nil
				spanningCount = 0
			}
			nowBuf = append(nowBuf, t)
			isLastNewline = false
		}
	}

	if len(table) > 0 {
		res = append(res, Table{Rows: table})
	} else if len(nowBuf) > 0 {
		res = append(res, Inline{Tokens: nowBuf})
	}

	return res
}

func styleChar(s token.Style) string {
	switch s {
	case token.StyleLeftAligned:
		return "<"
	case token.StyleRightAligned:
		return ">"
	case token.StyleCenterAligned:
		return "="
	case token.StyleTitle:
		return "~"
	default:
		return ""
	}
}
