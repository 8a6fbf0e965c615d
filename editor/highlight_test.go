package editor

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/mdflourish/buffer"
)

func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

// recordRows returns a highlighter that logs every row it is asked about.
func recordRows(rows *[]int) HighlighterFunc {
	return func(ctx LineContext) ([]HighlightSpan, error) {
		*rows = append(*rows, ctx.Row)
		return nil, nil
	}
}

func TestHighlighter_OnlyVisibleRows(t *testing.T) {
	var rows []int
	m := New(Config{Text: "# Title\n\n- item", Highlighter: recordRows(&rows)})
	m = m.SetSize(20, 2)

	rows = nil
	_ = m.renderContent()
	if !slices.Equal(rows, []int{0, 1}) {
		t.Fatalf("rows = %v, want [0 1]", rows)
	}

	// Moving the cursor to the last line scrolls it into view.
	m.buf.SetCursor(buffer.Pos{Row: 2})
	rows = nil
	m, _ = m.Update(struct{}{})
	if !slices.Contains(rows, 2) || slices.Contains(rows, 0) {
		t.Fatalf("rows after scroll = %v, want row 2 without row 0", rows)
	}
}

func TestHighlighter_SpansStyleClusters(t *testing.T) {
	r := trueColorRenderer()
	text := r.NewStyle()
	bold := r.NewStyle().Bold(true)

	m := New(Config{
		Text:  "a**b**",
		Style: Style{Text: text},
		Highlighter: HighlighterFunc(func(LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartGraphemeCol: 1, EndGraphemeCol: 6, Style: bold}}, nil
		}),
	})
	m = m.SetSize(20, 1).Blur()

	want := text.Render("a")
	for _, c := range []string{"*", "*", "b", "*", "*"} {
		want += bold.Inherit(text).Render(c)
	}
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got %q\nwant %q", got, want)
	}
}

func TestHighlighter_ErrorRendersPlain(t *testing.T) {
	r := trueColorRenderer()
	text := r.NewStyle()

	m := New(Config{
		Text:  "`x`",
		Style: Style{Text: text},
		Highlighter: HighlighterFunc(func(LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartGraphemeCol: 0, EndGraphemeCol: 3, Style: r.NewStyle().Reverse(true)}}, errors.New("lexer failed")
		}),
	})
	m = m.SetSize(20, 1).Blur()

	want := text.Render("`") + text.Render("x") + text.Render("`")
	if got := m.renderContent(); got != want {
		t.Fatalf("render:\n got %q\nwant %q", got, want)
	}
}

func TestHighlighterFunc_Nil(t *testing.T) {
	var f HighlighterFunc
	spans, err := f.HighlightLine(LineContext{Text: "# h"})
	if spans != nil || err != nil {
		t.Fatalf("nil func = %v, %v", spans, err)
	}
}

func TestNormalizeHighlightSpans_ClampSortAndOverlap(t *testing.T) {
	st := lipgloss.NewStyle()
	spans := []HighlightSpan{
		{StartGraphemeCol: 9, EndGraphemeCol: 7, Style: st}, // reversed
		{StartGraphemeCol: 2, EndGraphemeCol: 5, Style: st},
		{StartGraphemeCol: 4, EndGraphemeCol: 6, Style: st},   // overlaps [2,5)
		{StartGraphemeCol: 3, EndGraphemeCol: 3, Style: st},   // empty
		{StartGraphemeCol: 10, EndGraphemeCol: 40, Style: st}, // past the end
		{StartGraphemeCol: -5, EndGraphemeCol: 1, Style: st},
	}

	var got [][2]int
	for _, sp := range normalizeHighlightSpans(spans, 12) {
		got = append(got, [2]int{sp.StartGraphemeCol, sp.EndGraphemeCol})
	}
	want := [][2]int{{0, 1}, {2, 5}, {7, 9}, {10, 12}}
	if !slices.Equal(got, want) {
		t.Fatalf("spans = %v, want %v", got, want)
	}

	if normalizeHighlightSpans(nil, 3) != nil {
		t.Fatalf("no spans must stay nil")
	}
}
