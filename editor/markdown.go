package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mdflourish/format"
	graphemeutil "github.com/iw2rmb/mdflourish/internal/grapheme"
)

// MarkdownStyles styles markdown syntax in the editor.
type MarkdownStyles struct {
	Heading       lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Strikethrough lipgloss.Style
	Code          lipgloss.Style
	Quote         lipgloss.Style
	ListMarker    lipgloss.Style
}

// MarkdownHighlighter highlights headings, quotes, list markers and inline
// emphasis with the same delimiter rules the format package resolves.
type MarkdownHighlighter struct {
	Styles MarkdownStyles
}

var _ Highlighter = MarkdownHighlighter{}

func (h MarkdownHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	runes := []rune(ctx.Text)
	if len(runes) == 0 {
		return nil, nil
	}

	// paint holds one style per rune; later layers win.
	paint := make([]*lipgloss.Style, len(runes))
	fill := func(from, to int, st *lipgloss.Style) {
		for i := maxInt(from, 0); i < to && i < len(paint); i++ {
			paint[i] = st
		}
	}

	// body is where inline markup starts; list markers are not delimiters.
	body := 0
	if tag, ok := format.ClassifyBlock(ctx.Text); ok {
		switch tag {
		case format.H1, format.H2, format.H3, format.H4:
			fill(0, len(runes), &h.Styles.Heading)
			return collapseRuneStyles(ctx.Text, paint), nil
		case format.Quote:
			fill(0, len(runes), &h.Styles.Quote)
		default:
			body = listMarkerLen(tag, runes)
			fill(0, body, &h.Styles.ListMarker)
		}
	}

	layers := []struct {
		token string
		style *lipgloss.Style
	}{
		{"*", &h.Styles.Italic},
		{"**", &h.Styles.Bold},
		{"~~", &h.Styles.Strikethrough},
		{"`", &h.Styles.Code},
	}
	inline := string(runes[body:])
	for _, l := range layers {
		for _, sp := range format.Pairs(inline, l.token) {
			fill(body+sp.Open, body+sp.End, l.style)
		}
	}
	return collapseRuneStyles(ctx.Text, paint), nil
}

func listMarkerLen(tag format.Tag, runes []rune) int {
	if tag == format.Checklist {
		return len("- [ ] ")
	}
	for i, r := range runes {
		if r == ' ' {
			return i + 1
		}
	}
	return 0
}

// collapseRuneStyles turns per-rune styles into grapheme spans. A grapheme
// takes the style of its first rune.
func collapseRuneStyles(text string, paint []*lipgloss.Style) []HighlightSpan {
	var out []HighlightSpan
	var cur *lipgloss.Style
	start := 0
	r := 0
	clusters := graphemeutil.Split(text)
	flush := func(end int) {
		if cur != nil && end > start {
			out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: *cur})
		}
	}
	for col, c := range clusters {
		st := paint[r]
		if st != cur {
			flush(col)
			cur, start = st, col
		}
		r += utf8.RuneCountInString(c)
	}
	flush(len(clusters))
	return out
}
