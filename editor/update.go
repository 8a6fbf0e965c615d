package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	if cmd, ok := km.formatCommand(msg); ok {
		if cmd.IsRequest() {
			return m, m.emojiRequest()
		}
		if !m.cfg.ReadOnly {
			m.buf.ApplyFormat(cmd)
		}
		return m, nil
	}

	for _, a := range m.keyActions() {
		if !key.Matches(msg, a.binding) {
			continue
		}
		if a.edits && m.cfg.ReadOnly {
			if a.fallback != nil {
				a.fallback()
			}
			return m, nil
		}
		a.run()
		return m, nil
	}

	if m.cfg.ReadOnly || msg.Alt {
		return m, nil
	}
	switch {
	case msg.Type == tea.KeySpace:
		m.buf.InsertText(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0:
		m.buf.InsertText(string(msg.Runes))
	}
	return m, nil
}

// keyAction binds a key to a buffer operation. Actions that edit are
// skipped in read-only mode, or replaced by fallback when it is set.
type keyAction struct {
	binding  key.Binding
	edits    bool
	run      func()
	fallback func()
}

func (m Model) keyActions() []keyAction {
	km, b := m.cfg.KeyMap, m.buf
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) func() {
		return func() { b.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend}) }
	}
	const (
		char = buffer.MoveGrapheme
		word = buffer.MoveWord
		line = buffer.MoveLine
		doc  = buffer.MoveDoc
	)
	return []keyAction{
		{binding: km.Left, run: move(char, buffer.DirLeft, false)},
		{binding: km.Right, run: move(char, buffer.DirRight, false)},
		{binding: km.Up, run: move(char, buffer.DirUp, false)},
		{binding: km.Down, run: move(char, buffer.DirDown, false)},
		{binding: km.ShiftLeft, run: move(char, buffer.DirLeft, true)},
		{binding: km.ShiftRight, run: move(char, buffer.DirRight, true)},
		{binding: km.ShiftUp, run: move(char, buffer.DirUp, true)},
		{binding: km.ShiftDown, run: move(char, buffer.DirDown, true)},
		{binding: km.WordLeft, run: move(word, buffer.DirLeft, false)},
		{binding: km.WordRight, run: move(word, buffer.DirRight, false)},
		{binding: km.ShiftWordLeft, run: move(word, buffer.DirLeft, true)},
		{binding: km.ShiftWordRight, run: move(word, buffer.DirRight, true)},
		{binding: km.Home, run: move(line, buffer.DirHome, false)},
		{binding: km.End, run: move(line, buffer.DirEnd, false)},
		{binding: km.DocStart, run: move(doc, buffer.DirHome, false)},
		{binding: km.DocEnd, run: move(doc, buffer.DirEnd, false)},
		{binding: km.PageUp, run: func() { m.movePage(buffer.DirUp) }},
		{binding: km.PageDown, run: func() { m.movePage(buffer.DirDown) }},
		{binding: km.SelectAll, run: b.SelectAll},

		{binding: km.Backspace, edits: true, run: b.DeleteBackward},
		{binding: km.Delete, edits: true, run: b.DeleteForward},
		{binding: km.Enter, edits: true, run: b.InsertNewline},
		{binding: km.Tab, edits: true, run: func() { b.InsertText("\t") }},
		{binding: km.Undo, edits: true, run: func() { b.Undo() }},
		{binding: km.Redo, edits: true, run: func() { b.Redo() }},

		{binding: km.Copy, run: m.copySelection},
		{binding: km.Cut, edits: true, run: m.cutSelection, fallback: m.copySelection},
		{binding: km.Paste, edits: true, run: m.pasteClipboard},
	}
}

func (m Model) movePage(dir buffer.MoveDir) {
	for range max(m.visibleRowCount(), 1) {
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: dir})
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, ok := m.buf.SelectedText()
	if !ok || s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, ok := m.buf.SelectedText()
	if !ok {
		return
	}
	if s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts newlines from external sources to '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
