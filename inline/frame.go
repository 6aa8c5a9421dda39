package inline

import "github.com/nowf41/wikidot-parser/tree"

type frameKind int

const (
	kindBold frameKind = iota
	kindItalics
	kindUnderline
	kindStrikethrough
	kindMonospaced
	kindSuperscript
	kindSubscript
	kindColored
	kindSize
	kindCollapsible
	kindFootnote
	kindHTMLElement
	kindIframe
)

// frame is one open inline span. Only the fields relevant to kind are
// meaningful: red/green/blue for kindColored, scale for kindSize,
// footnoteID for kindFootnote, htmlTag/htmlProps for kindHTMLElement,
// raw for kindIframe (which never accumulates Children; see
// resolver.resolveTokens's raw-capture branch).
type frame struct {
	kind             frameKind
	red, green, blue uint8
	scale            string
	footnoteID       int
	htmlTag          string
	htmlProps        map[string]string
	raw              string
	children         []tree.Element
}

// sameKind reports whether f and other represent the same toggleable
// span for the purposes of switchElement/closeElement. HTMLElement
// frames additionally require a matching tag, since "[[/span]]" must
// not close an open "[[div]]".
func (f frame) sameKind(other frame) bool {
	if f.kind != other.kind {
		return false
	}
	if f.kind == kindHTMLElement {
		return f.htmlTag == other.htmlTag
	}
	return true
}

func (f frame) toElement() tree.Element {
	switch f.kind {
	case kindBold:
		return tree.Bold{Children: f.children}
	case kindItalics:
		return tree.Italics{Children: f.children}
	case kindUnderline:
		return tree.Underline{Children: f.children}
	case kindStrikethrough:
		return tree.Strikethrough{Children: f.children}
	case kindMonospaced:
		return tree.Monospaced{Children: f.children}
	case kindSuperscript:
		return tree.Superscript{Children: f.children}
	case kindSubscript:
		return tree.Subscript{Children: f.children}
	case kindColored:
		return tree.Colored{Red: f.red, Green: f.green, Blue: f.blue, Children: f.children}
	case kindSize:
		return tree.Size{Scale: f.scale, Children: f.children}
	case kindCollapsible:
		return tree.Collapsible{Children: f.children}
	case kindFootnote:
		return tree.Footnote{ID: f.footnoteID, Children: f.children}
	case kindHTMLElement:
		return tree.HTMLElement{Tag: f.htmlTag, Properties: f.htmlProps, Children: f.children}
	case kindIframe:
		return tree.Iframe{Raw: f.raw}
	default:
		panic("inline: unhandled frame kind")
	}
}

// frameStack is the inline-span analog of block's builder: an
// explicit stack of open spans plus the root element list, supporting
// the toggle-marker recovery algorithm that lets overlapping markup
// like "**a //b**c//" degrade gracefully instead of corrupting
// everything after the first mismatch.
type frameStack struct {
	root  []tree.Element
	stack []frame
}

func (s *frameStack) push(f frame) {
	s.stack = append(s.stack, f)
}

func (s *frameStack) add(e tree.Element) {
	if len(s.stack) == 0 {
		s.root = append(s.root, e)
		return
	}
	top := &s.stack[len(s.stack)-1]
	top.children = append(top.children, e)
}

// appendRaw feeds literal text into the innermost frame's raw buffer.
// Callers must only invoke this while that frame is kindIframe.
func (s *frameStack) appendRaw(text string) {
	top := &s.stack[len(s.stack)-1]
	top.raw += text
}

func (s *frameStack) top() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// popAndMerge pops the innermost frame, converts it, and appends the
// result to whatever is now on top (or root), reporting the frame
// that was popped.
func (s *frameStack) popAndMerge() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.add(f.toElement())
	return f, true
}

// closeElement pops frames until one matching want is found, merging
// each as it goes, then reopens (fresh, with no children) every frame
// that was popped along the way without matching, in the same order
// they were encountered. That reopening is what keeps an unrelated,
// still-open span alive across a mismatched closer instead of
// silently dropping it.
func (s *frameStack) closeElement(want frame) bool {
	var reopen []frame
	reached := false
	for {
		f, ok := s.popAndMerge()
		if !ok {
			break
		}
		if f.sameKind(want) {
			reached = true
			break
		}
		reopen = append(reopen, f)
	}
	for _, f := range reopen {
		f.children = nil
		s.push(f)
	}
	return reached
}

// switchElement implements the toggle-marker semantics shared by
// Bold/Italics/Underline/Strikethrough/Superscript/Subscript: if a
// frame of the same kind is already open anywhere in the stack, close
// it (ending the span); otherwise open a new one.
func (s *frameStack) switchElement(want frame) {
	for _, f := range s.stack {
		if f.sameKind(want) {
			s.closeElement(want)
			return
		}
	}
	s.push(want)
}

// drain closes every remaining open frame and returns the completed
// element list.
func (s *frameStack) drain() []tree.Element {
	for {
		if _, ok := s.popAndMerge(); !ok {
			break
		}
	}
	return s.root
}
