package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/mdflourish/buffer"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(ansi.Strip(line), wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EOLCursorPlaceholder(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)},
	})
	m.buf.SetCursor(buffer.Pos{GraphemeCol: 2})

	if got, want := m.renderContent(), "ab  "; got != want {
		t.Fatalf("unexpected EOL cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_TabsExpandToTabStops(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4})
	m = m.Blur()

	if got, want := ansi.Strip(m.renderContent()), "a   b"; got != want {
		t.Fatalf("unexpected tab rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_HorizontalWindow(t *testing.T) {
	m := New(Config{Text: "abcdefghij"})
	m = m.SetSize(5, 1)
	m = m.Blur()
	m.xOffset = 3

	if got, want := ansi.Strip(m.renderContent()), "defgh"; got != want {
		t.Fatalf("unexpected windowed render:\n got: %q\nwant: %q", got, want)
	}
}

func TestSelectionColsForRow(t *testing.T) {
	sel := buffer.Range{
		Start: buffer.Pos{Row: 0, GraphemeCol: 1},
		End:   buffer.Pos{Row: 2, GraphemeCol: 1},
	}
	tests := []struct {
		row        int
		start, end int
		has        bool
	}{
		{row: 0, start: 1, end: 2, has: true},
		{row: 1, start: 0, end: 2, has: true},
		{row: 2, start: 0, end: 1, has: true},
		{row: 3, has: false},
	}
	for _, tt := range tests {
		start, end, has := selectionColsForRow(sel, true, tt.row, 2)
		if has != tt.has || (has && (start != tt.start || end != tt.end)) {
			t.Fatalf("row %d: got (%d,%d,%v), want (%d,%d,%v)", tt.row, start, end, has, tt.start, tt.end, tt.has)
		}
	}
}
