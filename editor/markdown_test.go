package editor

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func testMarkdownStyles() MarkdownStyles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return MarkdownStyles{
		Heading:       r.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		Bold:          r.NewStyle().Bold(true),
		Italic:        r.NewStyle().Italic(true),
		Strikethrough: r.NewStyle().Strikethrough(true),
		Code:          r.NewStyle().Foreground(lipgloss.Color("#ff8800")),
		Quote:         r.NewStyle().Faint(true),
		ListMarker:    r.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

type spanKind struct {
	start, end int
	style      string
}

func describeSpans(t *testing.T, st MarkdownStyles, spans []HighlightSpan) []spanKind {
	t.Helper()
	named := map[string]lipgloss.Style{
		"heading": st.Heading,
		"bold":    st.Bold,
		"italic":  st.Italic,
		"strike":  st.Strikethrough,
		"code":    st.Code,
		"quote":   st.Quote,
		"marker":  st.ListMarker,
	}
	out := make([]spanKind, 0, len(spans))
	for _, sp := range spans {
		name := "?"
		for n, s := range named {
			if s.Render("x") == sp.Style.Render("x") {
				name = n
				break
			}
		}
		out = append(out, spanKind{start: sp.StartGraphemeCol, end: sp.EndGraphemeCol, style: name})
	}
	return out
}

func TestMarkdownHighlighter(t *testing.T) {
	st := testMarkdownStyles()
	h := MarkdownHighlighter{Styles: st}

	tests := []struct {
		name string
		line string
		want []spanKind
	}{
		{name: "empty", line: "", want: nil},
		{name: "plain", line: "plain text", want: nil},
		{name: "heading", line: "## Title **x**", want: []spanKind{{0, 14, "heading"}}},
		{name: "bold", line: "a **b** c", want: []spanKind{{2, 7, "bold"}}},
		{name: "italic", line: "*i* x", want: []spanKind{{0, 3, "italic"}}},
		{name: "bold over italic", line: "*i* **b**", want: []spanKind{{0, 3, "italic"}, {4, 9, "bold"}}},
		{name: "strike and code", line: "~~s~~ `c`", want: []spanKind{{0, 5, "strike"}, {6, 9, "code"}}},
		{name: "list marker", line: "- item", want: []spanKind{{0, 2, "marker"}}},
		{name: "star marker is not italic", line: "* item *it*", want: []spanKind{{0, 2, "marker"}, {7, 11, "italic"}}},
		{name: "star marker then bold", line: "* a **b**", want: []spanKind{{0, 2, "marker"}, {4, 9, "bold"}}},
		{name: "ordered marker", line: "12. item", want: []spanKind{{0, 4, "marker"}}},
		{name: "checklist marker", line: "- [x] done", want: []spanKind{{0, 6, "marker"}}},
		{name: "quote", line: "> q `c`", want: []spanKind{{0, 4, "quote"}, {4, 7, "code"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans, err := h.HighlightLine(LineContext{Text: tt.line, CursorGraphemeCol: -1})
			if err != nil {
				t.Fatalf("HighlightLine: %v", err)
			}
			got := describeSpans(t, st, spans)
			if len(got) != len(tt.want) {
				t.Fatalf("spans: got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("span %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMarkdownHighlighter_GraphemeColumns(t *testing.T) {
	st := testMarkdownStyles()
	h := MarkdownHighlighter{Styles: st}

	// The family emoji is several runes but one grapheme column.
	line := "\U0001F468\u200d\U0001F469\u200d\U0001F467 **b**"
	spans, _ := h.HighlightLine(LineContext{Text: line})
	got := describeSpans(t, st, spans)
	if len(got) != 1 || got[0] != (spanKind{2, 7, "bold"}) {
		t.Fatalf("spans: got %v, want [{2 7 bold}]", got)
	}
}
