package block_test

import (
	"testing"

	"github.com/nowf41/wikidot-parser/block"
	"github.com/nowf41/wikidot-parser/token"
	"github.com/nowf41/wikidot-parser/tokenizer"
)

func TestTableShortText(t *testing.T) {
	got := block.Parse(tokenizer.Tokenize("Hello, World!"))
	want := []block.Attribute{
		block.Inline{Tokens: []token.Token{token.Text{Value: "Hello, World!"}}},
	}
	diff(t, want, got)
}

func TestTableSingle(t *testing.T) {
	got := block.Parse(tokenizer.Tokenize("b\n|| a || b || c ||\na"))
	want := []block.Attribute{
		block.Inline{Tokens: []token.Token{token.Text{Value: "b"}}},
		block.Table{Rows: [][]block.Cell{
			{
				{Value: []token.Token{token.Text{Value: " a "}}, Spanning: 1},
				{Value: []token.Token{token.Text{Value: " b "}}, Spanning: 1},
				{Value: []token.Token{token.Text{Value: " c "}}, Spanning: 1},
			},
		}},
		block.Inline{Tokens: []token.Token{token.Text{Value: "a"}}},
	}
	diff(t, want, got)
}

func TestTableMulti(t *testing.T) {
	got := block.Parse(tokenizer.Tokenize("b\n||~ a ||~ b ||~ c ||  \n||< d ||> e||=f ||\ng"))
	want := []block.Attribute{
		block.Inline{Tokens: []token.Token{token.Text{Value: "b"}}},
		block.Table{Rows: [][]block.Cell{
			{
				{Value: []token.Token{token.Text{Value: " a "}}, Style: token.StyleTitle, Spanning: 1},
				{Value: []token.Token{token.Text{Value: " b "}}, Style: token.StyleTitle, Spanning: 1},
				{Value: []token.Token{token.Text{Value: " c "}}, Style: token.StyleTitle, Spanning: 1},
			},
			{
				{Value: []token.Token{token.Text{Value: " d "}}, Style: token.StyleLeftAligned, Spanning: 1},
				{Value: []token.Token{token.Text{Value: " e"}}, Style: token.StyleRightAligned, Spanning: 1},
				{Value: []token.Token{token.Text{Value: "f "}}, Style: token.StyleCenterAligned, Spanning: 1},
			},
		}},
		block.Inline{Tokens: []token.Token{token.Text{Value: "g"}}},
	}
	diff(t, want, got)
}
