// Package tokenizer implements stage 1 of the Wikidot parsing
// pipeline: a single left-to-right scan over normalized source text
// that produces a flat token.Token stream.
//
// The tokenizer never fails. A square-bracket link or element tag
// that isn't matched before its terminator, a line boundary, or
// end-of-input, and a ">" run that isn't a valid quote marker, degrade
// to literal text: their characters are buffered, not dropped. "##"
// and "||" always produce a token (a bare "##" is a ColoredEnd); a
// single "#" or "|" is literal text.
package tokenizer

import (
	"strings"

	"github.com/nowf41/wikidot-parser/token"
)

// Tokenize scans source into a flat token stream. source must already
// have normalized line endings ("\r\n" and lone "\r" collapsed to
// "\n", see the root package's Parse doc for that contract).
func Tokenize(source string) []token.Token {
	chars := []rune(source)
	b := &builder{}
	literal := false

	i := 0
	for i < len(chars) {
		r := chars[i]

		if r == '@' && isNextEq(chars, i, '@') {
			literal = !literal
			i += 2
			continue
		}

		if literal {
			b.addChar(r)
			i++
			continue
		}

		if tok, ok := matchPairedMarker(chars, i); ok {
			b.flushAndAdd(tok)
			i += 2
			continue
		}

		switch r {
		case '[':
			i = scanBracket(b, chars, i)
		case '|':
			i = scanPipe(b, chars, i)
		case '\\':
			i = scanBackslash(b, chars, i)
		case '>':
			i = scanBlockQuote(b, chars, i)
		case '#':
			i = scanColor(b, chars, i)
		case '\n':
			b.flushAndAdd(token.NewLine{})
			i++
		default:
			b.addChar(r)
			i++
		}
	}

	b.flush()
	return b.tokens
}

// builder accumulates literal text into buf, flushing it to a Text
// token whenever a structural token is about to be emitted: flush the
// buffer before writing a structural element.
type builder struct {
	tokens []token.Token
	buf    strings.Builder
}

func (b *builder) addChar(r rune) {
	b.buf.WriteRune(r)
}

func (b *builder) flush() {
	if b.buf.Len() > 0 {
		b.tokens = append(b.tokens, token.Text{Value: b.buf.String()})
		b.buf.Reset()
	}
}

func (b *builder) flushAndAdd(t token.Token) {
	b.flush()
	b.tokens = append(b.tokens, t)
}

var pairedMarkers = []struct {
	c   rune
	tok token.Token
}{
	{'*', token.Bold{}},
	{'/', token.Italics{}},
	{'_', token.Underline{}},
	{'-', token.Strikethrough{}},
	{'{', token.MonospacedOpen{}},
	{'}', token.MonospacedClose{}},
	{'^', token.Superscript{}},
	{',', token.Subscript{}},
}

// matchPairedMarker reports whether chars[i] starts one of the
// doubled-character markers ("**", "//", ...). A single occurrence of
// any of these characters is literal text, so the caller only acts on
// ok == true.
func matchPairedMarker(chars []rune, i int) (token.Token, bool) {
	r := chars[i]
	for _, p := range pairedMarkers {
		if r == p.c && isNextEq(chars, i, p.c) {
			return p.tok, true
		}
	}
	return nil, false
}

func scanBracket(b *builder, chars []rune, i int) int {
	switch {
	case isNextEq(chars, i, '[') && isNextEq(chars, i+1, '['):
		return scanPageLink(b, chars, i)
	case isNextEq(chars, i, '['):
		return scanElementTag(b, chars, i)
	default:
		return scanNamedLink(b, chars, i)
	}
}

// scanPageLink handles "[[[ page ]]]" and "[[[ page | name ]]]". The
// body must terminate on the same line; an unterminated or
// cross-line form leaves the opening "[" as literal text.
func scanPageLink(b *builder, chars []rune, i int) int {
	bodyStart := i + 3
	end, ok := scanBracketBody(chars, bodyStart, "]]]", true)
	if !ok {
		b.addChar(chars[i])
		return i + 1
	}
	body := unescape(chars[bodyStart:end])
	if idx := strings.IndexByte(body, '|'); idx >= 0 {
		b.flushAndAdd(token.PageLink{Link: body[:idx], Name: body[idx+1:]})
	} else {
		b.flushAndAdd(token.PageLink{Link: body})
	}
	return end + 3
}

// scanElementTag handles "[[ name attrs ]]" and its closing form
// "[[/ name ]]". Unlike page links and named links, the body may span
// multiple lines; only running off the end of input without a
// terminator falls back to literal text.
func scanElementTag(b *builder, chars []rune, i int) int {
	bodyStart := i + 2
	end, ok := scanBracketBody(chars, bodyStart, "]]", false)
	if !ok {
		b.addChar(chars[i])
		return i + 1
	}
	body := unescape(chars[bodyStart:end])
	if strings.HasPrefix(body, "/") {
		b.flushAndAdd(token.ElementEnd{Name: body[1:]})
	} else {
		name, attrs := parseElementBody(body)
		b.flushAndAdd(token.ElementBegin{Name: name, Attributes: attrs})
	}
	return end + 2
}

// scanNamedLink handles "[ url name ]". The opening "[" degrades to
// literal text both when no same-line terminator is found and when a
// terminator is found but the body contains no space to split on.
func scanNamedLink(b *builder, chars []rune, i int) int {
	bodyStart := i + 1
	end, ok := scanBracketBody(chars, bodyStart, "]", true)
	if !ok {
		b.addChar(chars[i])
		return i + 1
	}
	body := unescape(chars[bodyStart:end])
	idx := strings.IndexByte(body, ' ')
	if idx < 0 {
		b.addChar(chars[i])
		return i + 1
	}
	b.flushAndAdd(token.NamedLink{Link: body[:idx], Name: body[idx+1:]})
	return end + 1
}

// scanBracketBody looks for the first unescaped occurrence of term at
// or after bodyStart, returning its starting index. A terminator
// character is "escaped" if immediately preceded by a backslash. If
// stopAtNewline is set, a newline encountered before a terminator
// aborts the scan (ok == false) even if a terminator exists later in
// the input.
func scanBracketBody(chars []rune, bodyStart int, term string, stopAtNewline bool) (end int, ok bool) {
	termLen := len([]rune(term))
	n := len(chars)
	for j := bodyStart; j < n; j++ {
		if stopAtNewline && chars[j] == '\n' {
			return 0, false
		}
		if j+termLen <= n && string(chars[j:j+termLen]) == term {
			escaped := j > bodyStart && chars[j-1] == '\\'
			if !escaped {
				return j, true
			}
		}
	}
	return 0, false
}

// parseElementBody splits an element tag's unescaped body into its
// name and ordered attribute list. A "|" in the body is treated as
// whitespace (Wikidot lets authors separate attributes with either).
// Each field containing "=" becomes a keyed attribute; its value has
// one surrounding quote character stripped from each side (Wikidot
// attribute values are always quoted). Any other field is a
// positional attribute (empty Key).
func parseElementBody(body string) (name string, attrs []token.Attribute) {
	fields := strings.Fields(strings.ReplaceAll(body, "|", " "))
	if len(fields) == 0 {
		return "", nil
	}
	name = fields[0]
	for _, f := range fields[1:] {
		if idx := strings.IndexByte(f, '='); idx >= 0 {
			key := f[:idx]
			value := f[idx+1:]
			if len(value) >= 2 {
				value = value[1 : len(value)-1]
			}
			attrs = append(attrs, token.Attribute{Key: key, Value: value})
		} else {
			attrs = append(attrs, token.Attribute{Key: "", Value: f})
		}
	}
	return name, attrs
}

func scanPipe(b *builder, chars []rune, i int) int {
	if !isNextEq(chars, i, '|') {
		b.addChar(chars[i])
		return i + 1
	}
	style := token.StyleNone
	consumed := 2
	if i+2 < len(chars) {
		switch chars[i+2] {
		case '~':
			style, consumed = token.StyleTitle, 3
		case '<':
			style, consumed = token.StyleLeftAligned, 3
		case '>':
			style, consumed = token.StyleRightAligned, 3
		case '=':
			style, consumed = token.StyleCenterAligned, 3
		}
	}
	b.flushAndAdd(token.CellSeparator{Style: style})
	return i + consumed
}

// scanBackslash handles "\X" (literal X) and "\" at end-of-input or
// before a newline (literal newline).
func scanBackslash(b *builder, chars []rune, i int) int {
	if i+1 >= len(chars) || chars[i+1] == '\n' {
		b.addChar('\n')
		return i + 2
	}
	b.addChar(chars[i+1])
	return i + 2
}

// scanBlockQuote handles a line-initial run of ">" characters. The
// run is only a BlockQuote token if it is immediately followed by a
// space or end-of-input; that space is consumed as a delimiter but
// never itself becomes a token. Otherwise the run is literal text.
func scanBlockQuote(b *builder, chars []rune, i int) int {
	if i != 0 && chars[i-1] != '\n' {
		b.addChar('>')
		return i + 1
	}

	level := 1
	for isNextEq(chars, i+level-1, '>') {
		level++
	}

	next := i + level
	if next >= len(chars) || chars[next] == ' ' {
		b.flushAndAdd(token.BlockQuote{Level: level})
		if next < len(chars) && chars[next] == ' ' {
			return next + 1
		}
		return next
	}

	for k := 0; k < level; k++ {
		b.addChar(chars[i+k])
	}
	return i + level
}

var paletteNames = []string{
	"aqua", "black", "blue", "fuchsia", "grey", "green", "lime",
	"maroon", "navy", "olive", "purple", "red", "silver", "teal",
	"white", "yellow",
}

// scanColor handles "##RRGGBB|", "##name|", and the bare "##" that
// closes a colored span.
func scanColor(b *builder, chars []rune, i int) int {
	if !isNextEq(chars, i, '#') {
		b.addChar('#')
		return i + 1
	}

	if i+8 < len(chars) && allHex(chars[i+2:i+8]) && chars[i+8] == '|' {
		b.flushAndAdd(token.ColoredBeginColorCode{Hex: string(chars[i+2 : i+8])})
		return i + 9
	}

	for _, name := range paletteNames {
		end := i + 2 + len(name)
		if end < len(chars) && string(chars[i+2:end]) == name && chars[end] == '|' {
			b.flushAndAdd(token.ColoredBeginColorName{Name: name})
			return end + 1
		}
	}

	b.flushAndAdd(token.ColoredEnd{})
	return i + 2
}

func isNextEq(chars []rune, at int, c rune) bool {
	if at+1 >= len(chars) {
		return false
	}
	return chars[at+1] == c
}

// unescape removes backslashes from s, copying the following
// character verbatim. It does not special-case any character: a
// trailing lone backslash is simply dropped.
func unescape(s []rune) string {
	var b strings.Builder
	b.Grow(len(s))
	ignoreNext := false
	for _, c := range s {
		switch {
		case ignoreNext:
			b.WriteRune(c)
			ignoreNext = false
		case c == '\\':
			ignoreNext = true
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func allHex(rs []rune) bool {
	for _, r := range rs {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
