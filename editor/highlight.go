package editor

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the grapheme columns [StartGraphemeCol, EndGraphemeCol)
// of one line.
type HighlightSpan struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

// LineContext is what a Highlighter sees of a visible line.
type LineContext struct {
	Row  int
	Text string

	// CursorGraphemeCol is -1 unless HasCursor.
	CursorGraphemeCol int
	HasCursor         bool
}

// Highlighter returns style spans for a line. Only visible lines are asked.
// On error the line renders unstyled.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	if f == nil {
		return nil, nil
	}
	return f(ctx)
}

// normalizeHighlightSpans clamps spans to the line, flips reversed ones,
// drops empty ones and sorts them. Where two spans overlap the one that
// starts first is kept.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	lineLen = max(lineLen, 0)

	var out []HighlightSpan
	for _, sp := range spans {
		lo := clampInt(min(sp.StartGraphemeCol, sp.EndGraphemeCol), 0, lineLen)
		hi := clampInt(max(sp.StartGraphemeCol, sp.EndGraphemeCol), 0, lineLen)
		if lo < hi {
			out = append(out, HighlightSpan{StartGraphemeCol: lo, EndGraphemeCol: hi, Style: sp.Style})
		}
	}
	slices.SortStableFunc(out, func(a, b HighlightSpan) int {
		return cmp.Or(
			cmp.Compare(a.StartGraphemeCol, b.StartGraphemeCol),
			cmp.Compare(a.EndGraphemeCol, b.EndGraphemeCol),
		)
	})

	kept := out[:0]
	for _, sp := range out {
		if n := len(kept); n > 0 && sp.StartGraphemeCol < kept[n-1].EndGraphemeCol {
			continue
		}
		kept = append(kept, sp)
	}
	return kept
}
