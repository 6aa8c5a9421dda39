package token_test

import (
	"testing"

	"github.com/nowf41/wikidot-parser/token"
	"github.com/stretchr/testify/assert"
)

func TestPaletteHasAllSixteenNames(t *testing.T) {
	names := []string{
		"aqua", "black", "blue", "fuchsia", "grey", "green", "lime",
		"maroon", "navy", "olive", "purple", "red", "silver", "teal",
		"white", "yellow",
	}
	assert.Len(t, token.Palette, len(names))
	for _, n := range names {
		_, ok := token.Palette[n]
		assert.Truef(t, ok, "palette missing %q", n)
	}
}

func TestPaletteKnownValues(t *testing.T) {
	assert.Equal(t, [3]uint8{0x00, 0x80, 0x00}, token.Palette["green"])
	assert.Equal(t, [3]uint8{0xff, 0xff, 0x00}, token.Palette["yellow"])
}

// Variants implement Token purely via the unexported marker method; this
// just documents (and would fail to compile if broken) that every
// variant satisfies the interface.
func TestVariantsImplementToken(t *testing.T) {
	var toks = []token.Token{
		token.Bold{}, token.Italics{}, token.Underline{},
		token.Strikethrough{}, token.MonospacedOpen{}, token.MonospacedClose{},
		token.Superscript{}, token.Subscript{},
		token.ElementBegin{Name: "span"}, token.ElementEnd{Name: "span"},
		token.ColoredBeginColorCode{Hex: "ff0000"},
		token.ColoredBeginColorName{Name: "red"}, token.ColoredEnd{},
		token.NamedLink{Link: "https://example.com", Name: "x"},
		token.PageLink{Link: "home"},
		token.BlockQuote{Level: 1},
		token.CellSeparator{Style: token.StyleTitle},
		token.NewLine{},
		token.Text{Value: "hi"},
	}
	assert.Len(t, toks, 19)
}
