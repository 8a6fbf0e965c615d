package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/editor"
	"github.com/iw2rmb/mdflourish/format"
	"github.com/iw2rmb/mdflourish/theme"
)

const (
	toolbarHeight = 1
	footerHeight  = 1
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	return next.(Model).scheduleDraft(cmd)
}

func (m Model) handle(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.layout(), nil

	case editor.EmojiRequestMsg:
		return m.openEmojiPicker()

	case savedMsg:
		if msg.err != nil {
			m.log.Error("save failed", "error", msg.err)
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.log.Info("document saved", "path", msg.path)
		m.lastSaved = msg.at
		m.baseline = msg.text
		m.status = "Saved " + msg.path
		return m, nil

	case exportedMsg:
		if msg.err != nil {
			m.log.Error("export failed", "error", msg.err)
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.log.Info("document exported", "path", msg.path)
		m.status = "Exported " + msg.path
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.log.Error("open failed", "error", msg.err)
			m.status = "error: " + msg.err.Error()
			return m, nil
		}
		m.log.Info("document opened", "path", msg.doc.Path)
		var cmd tea.Cmd
		m.editor, cmd = m.editor.SetText(msg.doc.Text)
		m.name = msg.doc.Name
		m.path = msg.doc.Path
		m.baseline = msg.doc.Text
		m.lastSaved = time.Time{}
		m.status = "Opened " + msg.doc.Path
		return m.afterEditor(), cmd

	case themeSavedMsg:
		if msg.err != nil {
			m.log.Error("saving theme failed", "theme", msg.id, "error", msg.err)
			m.status = "error: " + msg.err.Error()
		}
		return m, nil

	case draftTickMsg, draftSavedMsg:
		return m.updateDraft(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	// Cursor blink and other input messages.
	var cmd tea.Cmd
	switch m.mode {
	case modeEmoji:
		m.emojiPicker.input, cmd = m.emojiPicker.input.Update(msg)
	case modePrompt:
		if !m.prompt.isConfirm() {
			m.prompt.input, cmd = m.prompt.input.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEmoji:
		return m.updateEmojiPicker(msg)
	case modeTheme:
		return m.updateThemePicker(msg)
	case modePrompt:
		return m.updatePrompt(msg)
	case modeToolbar:
		return m.updateToolbar(msg)
	case modeHelp:
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Help) {
			m.mode = modeEdit
		}
		return m, nil
	}

	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.draftEnabled() {
			return m, saveDraftAndQuit(m.opts.DraftPath, m.editor.Text(), m.log)
		}
		if m.dirty() {
			return m.confirm(promptConfirmQuit)
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m, saveCmd(m.opts.Dir, m.name, m.editor.Text(), m.opts.Now)
	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.opts.Dir, m.name, m.editor.Text())
	case key.Matches(msg, m.keys.Open):
		var cmd tea.Cmd
		m.prompt, cmd = newPrompt(promptOpen, "")
		m.mode = modePrompt
		return m, cmd
	case key.Matches(msg, m.keys.Rename):
		var cmd tea.Cmd
		m.prompt, cmd = newPrompt(promptRename, m.name)
		m.mode = modePrompt
		return m, cmd
	case key.Matches(msg, m.keys.New):
		if m.editor.Text() != "" && m.dirty() {
			return m.confirm(promptConfirmNew)
		}
		return m.clear()
	case key.Matches(msg, m.keys.Themes):
		m.themePicker = newThemePicker(m.theme)
		m.mode = modeTheme
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.focusMode = !m.focusMode
		return m.layout(), nil
	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		return m.layout(), nil
	case key.Matches(msg, m.keys.Toolbar):
		if !m.focusMode {
			m.mode = modeToolbar
			m.toolbarSel = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m.afterEditor(), cmd
}

func (m Model) updateToolbar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeEdit
		m.toolbarSel = -1
	case tea.KeyLeft, tea.KeyShiftTab:
		m.toolbarSel = (m.toolbarSel - 1 + len(toolItems)) % len(toolItems)
	case tea.KeyRight, tea.KeyTab:
		m.toolbarSel = (m.toolbarSel + 1) % len(toolItems)
	case tea.KeyEnter, tea.KeySpace:
		cmd := toolItems[m.toolbarSel].cmd
		m.mode = modeEdit
		m.toolbarSel = -1
		return m.applyCommand(cmd)
	}
	return m, nil
}

func (m Model) applyCommand(cmd format.Command) (tea.Model, tea.Cmd) {
	var c tea.Cmd
	m.editor, c = m.editor.ApplyFormat(cmd)
	return m.afterEditor(), c
}

func (m Model) openEmojiPicker() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.emojiPicker, cmd = newEmojiPicker(m.opts.Emoji)
	m.mode = modeEmoji
	return m, cmd
}

func (m Model) updateEmojiPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action pickerAction
	)
	m.emojiPicker, cmd, action = m.emojiPicker.update(msg)
	switch action {
	case pickerCancel:
		m.mode = modeEdit
		return m, nil
	case pickerChoose:
		m.mode = modeEdit
		e, _ := m.emojiPicker.selected()
		m.editor, cmd = m.editor.InsertEmoji(e.Char)
		return m.afterEditor(), cmd
	}
	return m, cmd
}

func (m Model) updateThemePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var action pickerAction
	m.themePicker, action = m.themePicker.update(msg)
	switch action {
	case pickerCancel:
		m.mode = modeEdit
		return m.setTheme(m.themePicker.original), nil
	case pickerChoose:
		m.mode = modeEdit
		th := m.themePicker.selected()
		m = m.setTheme(th)
		m.log.Info("theme changed", "theme", th.ID)
		return m, saveThemeCmd(m.opts.SaveTheme, th.ID)
	}
	if th := m.themePicker.selected(); th.ID != m.theme.ID {
		m = m.setTheme(th)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action pickerAction
	)
	m.prompt, cmd, action = m.prompt.update(msg)
	switch action {
	case pickerCancel:
		m.mode = modeEdit
		return m, nil
	case pickerChoose:
		m.mode = modeEdit
		v := strings.TrimSpace(m.prompt.value())
		switch m.prompt.kind {
		case promptOpen:
			if v == "" {
				return m, nil
			}
			return m, openCmd(v)
		case promptRename:
			m.name = v
			m.status = "Renamed to " + m.Name()
		case promptConfirmNew:
			return m.clear()
		case promptConfirmQuit:
			return m, tea.Quit
		}
		return m, nil
	}
	return m, cmd
}

func (m Model) confirm(kind promptKind) (tea.Model, tea.Cmd) {
	m.prompt = newConfirm(kind, m.Name())
	m.mode = modePrompt
	return m, nil
}

// clear starts a new unnamed document.
func (m Model) clear() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.SetText("")
	m.name = ""
	m.path = ""
	m.baseline = ""
	m.lastSaved = time.Time{}
	return m.afterEditor(), cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeEdit {
		return m, nil
	}
	top := 0
	if !m.focusMode {
		top = toolbarHeight
		if msg.Y == 0 {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				if cmd, ok := toolbarItemAt(msg.X); ok {
					return m.applyCommand(cmd)
				}
			}
			return m, nil
		}
	}

	left, edTop := 0, top
	if !m.focusMode {
		left = m.styles.PaneFocused.GetBorderLeftSize()
		edTop += m.styles.PaneFocused.GetBorderTopSize()
	}
	editorRight := m.editorBoxWidth()
	if m.previewVisible() && msg.X >= editorRight {
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	msg.X -= left
	msg.Y -= edTop
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m.afterEditor(), cmd
}

// afterEditor refreshes everything derived from the editor state: toolbar
// tags, preview content and preview scroll.
func (m Model) afterEditor() Model {
	m.active = m.editor.ActiveFormats()
	if m.previewVisible() {
		m.preview = m.preview.SetContent(m.editor.Text()).SyncTo(m.editor.ScrollRatio())
	}
	return m
}

func (m Model) setTheme(th theme.Theme) Model {
	m.theme = th
	m.styles = th.Styles()
	m.editor = m.editor.SetStyle(m.styles.Editor).
		SetHighlighter(editor.MarkdownHighlighter{Styles: m.styles.Markdown})
	m.preview = m.preview.SetTheme(th)
	return m.layout()
}

func (m Model) previewVisible() bool { return m.showPreview && !m.focusMode }

func (m Model) bodyHeight() int {
	h := m.height
	if !m.focusMode {
		h -= toolbarHeight + footerHeight
	}
	return max(h, 0)
}

func (m Model) editorBoxWidth() int {
	if m.previewVisible() {
		return m.width / 2
	}
	return m.width
}

func (m Model) layout() Model {
	bodyH := m.bodyHeight()
	if m.focusMode {
		m.editor = m.editor.SetSize(m.width, bodyH)
		return m.afterEditor()
	}
	fw, fh := m.styles.PaneFocused.GetFrameSize()
	ew := m.editorBoxWidth()
	m.editor = m.editor.SetSize(max(ew-fw, 0), max(bodyH-fh, 0))
	if m.previewVisible() {
		pw, ph := m.styles.Pane.GetFrameSize()
		m.preview = m.preview.SetSize(max(m.width-ew-pw, 0), max(bodyH-ph, 0))
	}
	return m.afterEditor()
}
