package app

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.focusMode && m.mode == modeEdit {
		return m.editor.View()
	}

	body := m.bodyView()
	if m.focusMode {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderToolbar(m.styles, m.width, m.active, m.toolbarSel),
		body,
		renderFooter(m.styles, m.width, m.footer()),
	)
}

func (m Model) bodyView() string {
	h := m.bodyHeight()
	if dialog := m.dialogView(); dialog != "" {
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, dialog)
	}

	editorStyle := m.styles.PaneFocused
	if m.mode == modeToolbar {
		editorStyle = m.styles.Pane
	}
	panes := []string{editorStyle.Render(m.editor.View())}
	if m.previewVisible() {
		panes = append(panes, m.styles.Pane.Render(m.preview.View()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m Model) dialogView() string {
	switch m.mode {
	case modeEmoji:
		return m.emojiPicker.view(m.styles)
	case modeTheme:
		return m.themePicker.view(m.styles)
	case modePrompt:
		return m.prompt.view(m.styles)
	case modeHelp:
		return renderCheatSheet(m.styles, m.keys, m.editorKeys, max(m.width-4, 0))
	}
	return ""
}

func (m Model) footer() footerInfo {
	return footerInfo{
		name:      m.Name(),
		text:      m.editor.Text(),
		sel:       m.editor.Buffer().FormatSelection(),
		themeName: m.theme.Name,
		lastSaved: m.lastSaved,
		status:    m.status,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
