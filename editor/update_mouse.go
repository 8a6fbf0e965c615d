package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/buffer"
)

// updateMouse scrolls on the wheel and places the cursor or drags a
// selection with the left button. Coordinates are relative to the editor.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused || m.buf == nil {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inside(msg.X, msg.Y) {
			m.pressAt(m.docPosAt(msg.X, msg.Y), msg.Shift)
		}
	case tea.MouseActionMotion:
		if m.mouseDragging {
			m.dragTo(m.docPosAt(m.clampToView(msg.X, msg.Y)))
		}
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m, nil
}

// pressAt starts a drag at p. With shift the existing anchor is kept and
// the selection extends to p.
func (m *Model) pressAt(p buffer.Pos, extend bool) {
	m.mouseDragging = true
	if !extend {
		m.mouseAnchor = p
		m.buf.SetCursor(p)
		return
	}
	m.mouseAnchor = m.buf.Cursor()
	if raw, ok := m.buf.SelectionRaw(); ok {
		m.mouseAnchor = raw.Start
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
}

func (m *Model) dragTo(p buffer.Pos) {
	if p == m.mouseAnchor {
		m.buf.SetCursor(p)
		return
	}
	m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
}

func (m Model) inside(x, y int) bool {
	w, h := m.viewport.Width, m.viewport.Height
	return x >= 0 && y >= 0 && x < w && y < h
}

func (m Model) clampToView(x, y int) (int, int) {
	return clampInt(x, 0, max(m.viewport.Width-1, 0)), clampInt(y, 0, max(m.viewport.Height-1, 0))
}

// docPosAt maps a cell in the visible content to a document position. Cells
// in the line number gutter map to the start of the row.
func (m Model) docPosAt(x, y int) buffer.Pos {
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	cell := x - m.gutterWidth()
	if cell < 0 {
		return buffer.Pos{Row: row}
	}
	return buffer.Pos{
		Row:         row,
		GraphemeCol: graphemeColForCell(m.buf.LineGraphemes(row), cell+m.xOffset, m.cfg.TabWidth),
	}
}
