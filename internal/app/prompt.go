package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/theme"
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptRename
	promptConfirmNew
	promptConfirmQuit
)

// prompt is a one-line text dialog, or a yes/no question for the confirm
// kinds.
type prompt struct {
	kind  promptKind
	title string
	input textinput.Model
}

func newPrompt(kind promptKind, value string) (prompt, tea.Cmd) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 255
	ti.Width = 40
	ti.SetValue(value)
	cmd := ti.Focus()

	title := "Open file (.md, .markdown, .txt)"
	if kind == promptRename {
		ti.Placeholder = "Untitled"
		title = "Document name"
	}
	return prompt{kind: kind, title: title, input: ti}, cmd
}

func newConfirm(kind promptKind, name string) prompt {
	title := "Clear the editor? Unsaved changes will be lost."
	if kind == promptConfirmQuit {
		title = "Quit without saving " + name + "?"
	}
	return prompt{kind: kind, title: title}
}

func (p prompt) isConfirm() bool {
	return p.kind == promptConfirmNew || p.kind == promptConfirmQuit
}

func (p prompt) value() string { return p.input.Value() }

func (p prompt) update(msg tea.KeyMsg) (prompt, tea.Cmd, pickerAction) {
	if p.isConfirm() {
		switch {
		case msg.Type == tea.KeyEnter, msg.String() == "y", msg.String() == "Y":
			return p, nil, pickerChoose
		case msg.Type == tea.KeyEsc, msg.String() == "n", msg.String() == "N":
			return p, nil, pickerCancel
		}
		return p, nil, pickerNone
	}
	switch msg.Type {
	case tea.KeyEsc:
		return p, nil, pickerCancel
	case tea.KeyEnter:
		return p, nil, pickerChoose
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, pickerNone
}

func (p prompt) view(st theme.Styles) string {
	if p.isConfirm() {
		return st.Dialog.Render(
			st.Title.Render(p.title) + "\n" +
				st.Muted.Render("y confirm · n cancel"),
		)
	}
	return st.Dialog.Render(
		st.Title.Render(p.title) + "\n" +
			p.input.View() + "\n" +
			st.Muted.Render("enter confirm · esc cancel"),
	)
}
