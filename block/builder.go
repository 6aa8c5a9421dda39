package block

import "github.com/nowf41/wikidot-parser/token"

type frameKind int

const (
	frameBlockQuote frameKind = iota
	frameTabView
	frameTab
)

// stackFrame is one open block-level construct. Depending on kind,
// only a subset of its fields are meaningful: title for frameTab,
// tabs for frameTabView (its closed children, appended to as nested
// Tab frames pop), children for frameBlockQuote and frameTab.
type stackFrame struct {
	kind     frameKind
	title    string
	tabs     []Tab
	children []Attribute
}

// builder accumulates block-level structure token by token, the way
// a single left-to-right pass must: it tracks an explicit stack of
// open frames (one per currently-open BlockQuote/TabView/Tab) plus a
// pending token buffer that becomes one or more Attribute values
// (via parseTable) whenever a structural boundary forces a flush.
type builder struct {
	root    []Attribute
	stack   []stackFrame
	buf     []token.Token
	bqDepth int
}

func (b *builder) pop() (stackFrame, bool) {
	if len(b.stack) == 0 {
		return stackFrame{}, false
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if f.kind == frameBlockQuote {
		b.bqDepth--
	}
	return f, true
}

// flush drains the pending token buffer (minus any trailing
// NewLines) through the table sub-parser and appends the resulting
// attributes to whatever frame is currently open, or to root.
func (b *builder) flush() {
	for len(b.buf) > 0 && isNewLine(b.buf[len(b.buf)-1]) {
		b.buf = b.buf[:len(b.buf)-1]
	}
	if len(b.buf) == 0 {
		return
	}
	attrs := parseTable(b.buf)
	b.buf = nil
	for _, a := range attrs {
		b.appendToCurrent(a)
	}
}

func (b *builder) appendToCurrent(a Attribute) {
	if len(b.stack) == 0 {
		b.root = append(b.root, a)
		return
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, a)
}

// popAndMerge flushes, pops the innermost frame, and merges it into
// its new parent, with one exception: a popped Tab frame is merged
// into its parent TabView's Tabs list rather than appended as a
// generic child attribute, since a Tab never appears outside a
// TabView.
func (b *builder) popAndMerge() bool {
	b.flush()
	f, ok := b.pop()
	if !ok {
		return false
	}
	switch f.kind {
	case frameBlockQuote:
		b.appendToCurrent(BlockQuote{Children: f.children})
	case frameTabView:
		b.appendToCurrent(TabView{Tabs: f.tabs})
	case frameTab:
		if len(b.stack) > 0 {
			parent := &b.stack[len(b.stack)-1]
			if parent.kind == frameTabView {
				parent.tabs = append(parent.tabs, Tab{Title: f.title, Children: f.children})
			}
		}
	}
	return true
}

func (b *builder) push(f stackFrame) {
	b.flush()
	if f.kind == frameBlockQuote {
		b.bqDepth++
	}
	b.stack = append(b.stack, f)
}

// addToken buffers t, suppressing a NewLine that would otherwise
// follow an empty buffer or another NewLine. Paragraph-break
// detection (Parse's own isLastNewline tracking) already handles
// intentional blank lines; this just keeps the buffer from
// accumulating redundant leading/doubled NewLines.
func (b *builder) addToken(t token.Token) {
	if isNewLine(t) {
		if len(b.buf) == 0 || isNewLine(b.buf[len(b.buf)-1]) {
			return
		}
	}
	b.buf = append(b.buf, t)
}

func (b *builder) isEmpty() bool {
	return len(b.stack) == 0
}

// setBQDepth closes or opens BlockQuote frames until bqDepth matches
// target, the tokenizer's BlockQuote.Level. Closing may pop through
// (and thereby close) any TabView/Tab frames nested inside the
// blockquotes being closed; opening always pushes plain BlockQuote
// frames.
func (b *builder) setBQDepth(target int) {
	for b.bqDepth > target && !b.isEmpty() {
		b.popAndMerge()
	}
	for b.bqDepth < target {
		b.push(stackFrame{kind: frameBlockQuote})
	}
}

func (b *builder) lastFrameKind() (frameKind, bool) {
	if len(b.stack) == 0 {
		return 0, false
	}
	return b.stack[len(b.stack)-1].kind, true
}

// get performs the final flush and drains every remaining open frame,
// returning the completed top-level attribute list.
func (b *builder) get() []Attribute {
	b.flush()
	for b.popAndMerge() {
	}
	return b.root
}

func isNewLine(t token.Token) bool {
	_, ok := t.(token.NewLine)
	return ok
}
