package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/theme"
)

const themeVisibleRows = 12

// themePicker lists every theme. Moving the cursor previews a theme; esc
// restores the one that was active when the picker opened.
type themePicker struct {
	themes   []theme.Theme
	cursor   int
	original theme.Theme
}

func newThemePicker(current theme.Theme) themePicker {
	themes := theme.All()
	p := themePicker{themes: themes, original: current}
	if i := theme.Index(current.ID); i >= 0 {
		p.cursor = i
	}
	return p
}

func (p themePicker) selected() theme.Theme {
	if p.cursor < 0 || p.cursor >= len(p.themes) {
		return p.original
	}
	return p.themes[p.cursor]
}

func (p themePicker) update(msg tea.KeyMsg) (themePicker, pickerAction) {
	switch msg.Type {
	case tea.KeyEsc:
		return p, pickerCancel
	case tea.KeyEnter:
		return p, pickerChoose
	case tea.KeyUp:
		p.cursor = max(p.cursor-1, 0)
	case tea.KeyDown:
		p.cursor = min(p.cursor+1, len(p.themes)-1)
	case tea.KeyPgUp:
		p.cursor = max(p.cursor-themeVisibleRows, 0)
	case tea.KeyPgDown:
		p.cursor = min(p.cursor+themeVisibleRows, len(p.themes)-1)
	case tea.KeyHome:
		p.cursor = 0
	case tea.KeyEnd:
		p.cursor = len(p.themes) - 1
	}
	return p, pickerNone
}

func (p themePicker) view(st theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Theme"))
	b.WriteString("\n")

	start := 0
	if p.cursor >= themeVisibleRows {
		start = p.cursor - themeVisibleRows + 1
	}
	end := min(start+themeVisibleRows, len(p.themes))
	for i := start; i < end; i++ {
		th := p.themes[i]
		kind := "light"
		if th.Dark {
			kind = "dark"
		}
		line := th.Name + " " + st.Muted.Render("("+kind+")")
		if i == p.cursor {
			line = st.ListSelected.Render(th.Name + " (" + kind + ")")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render("enter apply · esc cancel"))
	return st.Dialog.Render(b.String())
}
