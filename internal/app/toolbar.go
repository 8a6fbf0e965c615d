package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/mdflourish/format"
	"github.com/iw2rmb/mdflourish/theme"
)

type toolItem struct {
	cmd   format.Command
	label string
}

var toolItems = []toolItem{
	{format.CmdBold, "B"},
	{format.CmdItalic, "I"},
	{format.CmdStrikethrough, "S"},
	{format.CmdH1, "H1"},
	{format.CmdH2, "H2"},
	{format.CmdH3, "H3"},
	{format.CmdH4, "H4"},
	{format.CmdList, "List"},
	{format.CmdOrderedList, "1."},
	{format.CmdChecklist, "Task"},
	{format.CmdQuote, "Quote"},
	{format.CmdInlineCode, "`c`"},
	{format.CmdCodeBlock, "Code"},
	{format.CmdLink, "Link"},
	{format.CmdImage, "Image"},
	{format.CmdTable, "Table"},
	{format.CmdRule, "HR"},
	{format.CmdMath, "Math"},
	{format.CmdEmoji, "Emoji"},
}

// itemPadding is the horizontal padding of every toolbar item style.
const itemPadding = 2

func isActive(cmd format.Command, active format.Set) bool {
	tag, ok := cmd.Tag()
	return ok && active.Has(tag)
}

// renderToolbar draws one row of commands. Items whose tag is active are
// highlighted; selected < 0 means no keyboard selection.
func renderToolbar(st theme.Styles, width int, active format.Set, selected int) string {
	parts := make([]string, 0, len(toolItems))
	for i, it := range toolItems {
		style := st.ToolbarItem
		switch {
		case i == selected:
			style = st.ListSelected.Padding(0, 1)
		case isActive(it.cmd, active):
			style = st.ToolbarActive
		}
		parts = append(parts, style.Render(it.label))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return st.Toolbar.Width(width).MaxWidth(width).Render(line)
}

// toolbarItemAt maps a column of the toolbar row to its command.
func toolbarItemAt(x int) (format.Command, bool) {
	if x < 0 {
		return 0, false
	}
	pos := 0
	for _, it := range toolItems {
		w := runewidth.StringWidth(it.label) + itemPadding
		if x < pos+w {
			return it.cmd, true
		}
		pos += w
	}
	return 0, false
}
