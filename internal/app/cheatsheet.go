package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/mdflourish/editor"
	"github.com/iw2rmb/mdflourish/theme"
)

var syntaxRows = [][2]string{
	{"# Heading", "heading (# to ####)"},
	{"**bold**", "bold"},
	{"*italic*", "italic"},
	{"~~text~~", "strikethrough"},
	{"`code`", "inline code"},
	{"```lang", "code block"},
	{"[text](url)", "link"},
	{"![alt](url)", "image"},
	{"- item", "list"},
	{"1. item", "ordered list"},
	{"- [ ] task", "checklist"},
	{"> quote", "quote"},
	{"---", "horizontal rule"},
	{"| a | b |", "table"},
	{"$E=mc^2$", "math (kept as text)"},
}

func renderCheatSheet(st theme.Styles, keys KeyMap, editorKeys editor.KeyMap, width int) string {
	col := 0
	for _, r := range syntaxRows {
		col = max(col, runewidth.StringWidth(r[0]))
	}
	var syntax strings.Builder
	for _, r := range syntaxRows {
		syntax.WriteString(runewidth.FillRight(r[0], col+2))
		syntax.WriteString(st.Muted.Render(r[1]))
		syntax.WriteString("\n")
	}

	formatting := make([]key.Binding, 0, len(editorKeys.FormatBindings()))
	for _, fb := range editorKeys.FormatBindings() {
		formatting = append(formatting, fb.Binding)
	}
	editing := []key.Binding{editorKeys.Undo, editorKeys.Redo, editorKeys.Copy, editorKeys.Cut, editorKeys.Paste, editorKeys.SelectAll}

	syntaxCol := strings.TrimRight(syntax.String(), "\n")
	gap := "    "

	h := help.New()
	h.Width = max(width-lipgloss.Width(syntaxCol)-len(gap), 0)
	h.Styles.FullKey = st.Title
	h.Styles.FullDesc = st.ListItem
	h.Styles.FullSeparator = st.Muted
	groups := append([][]key.Binding{formatting, editing}, keys.FullHelp()...)

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Markdown cheat sheet"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, syntaxCol, gap, h.FullHelpView(groups)),
		"",
		st.Muted.Render("esc to close"),
	)
	return st.Dialog.Render(body)
}
