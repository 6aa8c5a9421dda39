package wikidot_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	wikidot "github.com/nowf41/wikidot-parser"
	"github.com/nowf41/wikidot-parser/tree"
)

func diff(t *testing.T, want, got []tree.Element) {
	t.Helper()
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("element mismatch (-want +got):\n%s", d)
	}
}

func TestBoldScenario(t *testing.T) {
	got := wikidot.Parse("**bold**")
	want := []tree.Element{
		tree.Paragraph{Children: []tree.Element{
			tree.Bold{Children: []tree.Element{tree.Text{Value: "bold"}}},
		}},
	}
	diff(t, want, got)
}

func TestSuperscriptScenario(t *testing.T) {
	got := wikidot.Parse("Super^^scripted^^text")
	want := []tree.Element{
		tree.Paragraph{Children: []tree.Element{
			tree.Text{Value: "Super"},
			tree.Superscript{Children: []tree.Element{tree.Text{Value: "scripted"}}},
			tree.Text{Value: "text"},
		}},
	}
	diff(t, want, got)
}

func TestBlockquoteNestingScenario(t *testing.T) {
	got := wikidot.Parse("> One\n>> Two\n> Three\nFour")
	want := []tree.Element{
		tree.QuoteBlock{Children: []tree.Element{
			tree.Paragraph{Children: []tree.Element{tree.Text{Value: "One"}}},
			tree.QuoteBlock{Children: []tree.Element{
				tree.Paragraph{Children: []tree.Element{tree.Text{Value: "Two"}}},
			}},
			tree.Paragraph{Children: []tree.Element{tree.Text{Value: "Three"}}},
		}},
		tree.Paragraph{Children: []tree.Element{tree.Text{Value: "Four"}}},
	}
	diff(t, want, got)
}

func TestTableScenario(t *testing.T) {
	got := wikidot.Parse("a\n|| a || b ||\nc")
	want := []tree.Element{
		tree.Paragraph{Children: []tree.Element{tree.Text{Value: "a"}}},
		tree.Table{Rows: [][]tree.Cell{
			{
				{Value: []tree.Element{tree.Text{Value: " a "}}, Spanning: 1},
				{Value: []tree.Element{tree.Text{Value: " b "}}, Spanning: 1},
			},
		}},
		tree.Paragraph{Children: []tree.Element{tree.Text{Value: "c"}}},
	}
	diff(t, want, got)
}

func TestColoredByNameScenario(t *testing.T) {
	got := wikidot.Parse("##green|Test Passed##")
	want := []tree.Element{
		tree.Paragraph{Children: []tree.Element{
			tree.Colored{Red: 0, Green: 0x80, Blue: 0, Children: []tree.Element{tree.Text{Value: "Test Passed"}}},
		}},
	}
	diff(t, want, got)
}

func TestTabViewScenario(t *testing.T) {
	got := wikidot.Parse("[[tabview]][[tab T1]]x[[/tab]][[tab T2]]y[[/tab]][[/tabview]]")
	want := []tree.Element{
		tree.TabView{Children: []tree.Tab{
			{Title: "T1", Children: []tree.Element{tree.Paragraph{Children: []tree.Element{tree.Text{Value: "x"}}}}},
			{Title: "T2", Children: []tree.Element{tree.Paragraph{Children: []tree.Element{tree.Text{Value: "y"}}}}},
		}},
	}
	diff(t, want, got)
}

func TestLiteralModeScenario(t *testing.T) {
	got := wikidot.Parse("@@**Should not be bolded**@@")
	want := []tree.Element{
		tree.Paragraph{Children: []tree.Element{tree.Text{Value: "**Should not be bolded**"}}},
	}
	diff(t, want, got)
}

func TestTableSpanningCountsConsecutiveSeparators(t *testing.T) {
	got := wikidot.Parse("||a||b||||c||")
	want := []tree.Element{
		tree.Table{Rows: [][]tree.Cell{
			{
				{Value: []tree.Element{tree.Text{Value: "a"}}, Spanning: 1},
				{Value: []tree.Element{tree.Text{Value: "b"}}, Spanning: 1},
				{Value: []tree.Element{tree.Text{Value: "c"}}, Spanning: 2},
			},
		}},
	}
	diff(t, want, got)
}

func TestUnmatchedBoldOpenerBehavesLikeOpener(t *testing.T) {
	a := wikidot.Parse("**x**")
	b := wikidot.Parse("**x")
	diff(t, a, b)
}

func TestParseNeverPanicsOnOrdinaryInput(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"**unterminated bold",
		"[[unterminated element",
		"> quote\nnot quote",
		"[[tabview]][[tab]]x[[/tab]]",
		"||a||b",
		"@@unterminated literal",
		"##red|unterminated color",
		"\\",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			wikidot.Parse(in)
		}()
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"**bold**",
		"//italics//",
		"Super^^scripted^^text",
		"> One\n>> Two\n> Three\nFour",
		"a\n|| a || b ||\nc",
		"##green|Test Passed##",
		"##00ff00|hex color##",
		"[[tabview]][[tab T1]]x[[/tab]][[/tabview]]",
		"@@literal @@",
		"[[size 150%]]big[[/size]]",
		"[[footnote]]note[[/footnote]]",
		"[[iframe src=\"x\"]]body[[/iframe]]",
		"[[[page|name]]]",
		"[ http://example.com name ]",
		"\\*escaped",
		"||a||b||||c||",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Parse panicked on %q: %v", s, r)
			}
		}()
		wikidot.Parse(s)
	})
}
