package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// draftDelay is how long the buffer must stay unchanged before the draft
// is written.
const draftDelay = 500 * time.Millisecond

type draftState struct {
	// version and text are the buffer state last seen. Versions also move
	// with the cursor, so text decides whether a tick is needed.
	version uint64
	text    string
	// seq identifies the pending tick; older ticks are ignored.
	seq int
}

func (m Model) draftEnabled() bool { return m.opts.DraftPath != "" && m.path == "" }

// scheduleDraft starts a new draft tick when the buffer changed since the
// last one.
func (m Model) scheduleDraft(cmd tea.Cmd) (Model, tea.Cmd) {
	v := m.editor.Buffer().Version()
	if v == m.draft.version {
		return m, cmd
	}
	m.draft.version = v
	text := m.editor.Text()
	if text == m.draft.text {
		return m, cmd
	}
	m.draft.text = text
	if !m.draftEnabled() {
		return m, cmd
	}
	m.draft.seq++
	return m, tea.Batch(cmd, draftTick(m.draft.seq))
}

func (m Model) updateDraft(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftTickMsg:
		if msg.seq != m.draft.seq || !m.draftEnabled() {
			return m, nil
		}
		return m, saveDraftCmd(m.opts.DraftPath, m.editor.Text())
	case draftSavedMsg:
		if msg.err != nil {
			m.log.Error("saving draft failed", "path", m.opts.DraftPath, "error", msg.err)
		}
	}
	return m, nil
}

// dirty reports whether the buffer differs from the text last opened or
// saved.
func (m Model) dirty() bool { return m.editor.Text() != m.baseline }
