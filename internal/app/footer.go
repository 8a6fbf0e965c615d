package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/mdflourish/document"
	"github.com/iw2rmb/mdflourish/format"
	"github.com/iw2rmb/mdflourish/theme"
)

type footerInfo struct {
	name      string
	text      string
	sel       format.Selection
	themeName string
	lastSaved time.Time
	status    string
}

func (f footerInfo) left() string {
	cur := document.CursorAt(f.text, f.sel.Start, f.sel.End)
	stats := document.Count(f.text)
	parts := []string{
		f.name,
		fmt.Sprintf("Ln %d, Col %d", cur.Line, cur.Col),
	}
	if cur.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", cur.Selected))
	}
	parts = append(parts, fmt.Sprintf("%d lines", stats.Lines))
	if f.status != "" {
		parts = append(parts, f.status)
	}
	return strings.Join(parts, "  ")
}

func (f footerInfo) right() string {
	stats := document.Count(f.text)
	parts := []string{f.themeName}
	if !f.lastSaved.IsZero() {
		parts = append(parts, "Last saved: "+f.lastSaved.Format("15:04:05"))
	}
	parts = append(parts, fmt.Sprintf("%d words  %d chars", stats.Words, stats.Chars))
	return strings.Join(parts, "  ")
}

// renderFooter lays the left and right groups on one row of width cells,
// truncating the left group first.
func renderFooter(st theme.Styles, width int, f footerInfo) string {
	inner := max(width-st.Footer.GetHorizontalFrameSize(), 0)
	l, r := f.left(), f.right()
	rw := runewidth.StringWidth(r)
	if rw > inner {
		r = runewidth.Truncate(r, inner, "…")
		rw = runewidth.StringWidth(r)
	}
	avail := inner - rw - 1
	if avail < 0 {
		avail = 0
	}
	if runewidth.StringWidth(l) > avail {
		l = runewidth.Truncate(l, avail, "…")
	}
	gap := max(inner-runewidth.StringWidth(l)-rw, 0)
	return st.Footer.Width(width).MaxWidth(width).Render(l + strings.Repeat(" ", gap) + r)
}
