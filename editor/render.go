package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iw2rmb/mdflourish/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(lineCount)
	}

	// Highlighters only run for rows inside the viewport.
	visStart, visEnd := 0, 0
	if h := m.visibleRowCount(); h > 0 {
		visStart = clampInt(m.viewport.YOffset, 0, lineCount)
		visEnd = clampInt(visStart+h, 0, lineCount)
	}

	left := maxInt(m.xOffset, 0)
	right := math.MaxInt
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var highlights []HighlightSpan
		if row >= visStart && row < visEnd {
			highlights = m.highlightForLine(row, cursor)
		}

		sb.WriteString(renderLine(lineRender{
			st:         m.cfg.Style,
			line:       m.buf.LineGraphemes(row),
			tabWidth:   m.cfg.TabWidth,
			row:        row,
			cursor:     cursor,
			focused:    m.focused,
			sel:        sel,
			selOK:      selOK,
			highlights: highlights,
			left:       left,
			right:      right,
		}))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m *Model) highlightForLine(row int, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	lineLen := len(m.buf.LineGraphemes(row))
	hasCursor := cursor.Row == row
	cursorCol := -1
	if hasCursor {
		cursorCol = clampInt(cursor.GraphemeCol, 0, lineLen)
	}

	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{
		Row:               row,
		Text:              m.buf.Line(row),
		CursorGraphemeCol: cursorCol,
		HasCursor:         hasCursor,
	})
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, lineLen)
}

type lineRender struct {
	st         Style
	line       []string
	tabWidth   int
	row        int
	cursor     buffer.Pos
	focused    bool
	sel        buffer.Range
	selOK      bool
	highlights []HighlightSpan

	// Visible cell window [left, right).
	left, right int
}

func renderLine(r lineRender) string {
	lineLen := len(r.line)

	cursorCol := -1
	if r.focused && r.row == r.cursor.Row {
		cursorCol = clampInt(r.cursor.GraphemeCol, 0, lineLen)
	}
	selStart, selEnd, hasSel := selectionColsForRow(r.sel, r.selOK, r.row, lineLen)

	var sb strings.Builder
	cell := 0
	hi := 0
	for col, g := range r.line {
		w := graphemeCellWidth(g, cell, r.tabWidth)
		segL, segR := cell, cell+w
		cell = segR

		spanL := maxInt(segL, r.left)
		spanR := minInt(segR, r.right)
		if spanL >= spanR {
			continue
		}

		text := g
		switch {
		case spanR-spanL != w:
			// Partial wide grapheme: preserve alignment with blanks.
			text = strings.Repeat(" ", spanR-spanL)
		case g == "\t":
			text = strings.Repeat(" ", w)
		}

		for hi < len(r.highlights) && r.highlights[hi].EndGraphemeCol <= col {
			hi++
		}

		style := r.st.Text
		switch {
		case col == cursorCol:
			style = r.st.Cursor
			if col == lineLen-1 && strings.TrimSpace(text) == "" {
				// Trailing spaces can be visually elided by terminals at line end.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
		case hasSel && col >= selStart && col < selEnd:
			style = r.st.Selection
		case hi < len(r.highlights) && r.highlights[hi].StartGraphemeCol <= col:
			style = r.highlights[hi].Style.Inherit(r.st.Text)
		}
		sb.WriteString(style.Render(text))
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol == lineLen && cell >= r.left && cell < r.right {
		sb.WriteString(r.st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	return start, end, start < end
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
