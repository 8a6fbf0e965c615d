package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/emoji"
	"github.com/iw2rmb/mdflourish/theme"
)

const (
	emojiResultLimit = 50
	emojiVisibleRows = 8
)

type pickerAction int

const (
	pickerNone pickerAction = iota
	pickerChoose
	pickerCancel
)

// emojiPicker searches the catalog by name and keyword. With an empty query
// it browses one category at a time.
type emojiPicker struct {
	catalog  *emoji.Catalog
	input    textinput.Model
	category int
	items    []emoji.Emoji
	cursor   int
}

func newEmojiPicker(c *emoji.Catalog) (emojiPicker, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "Search emoji..."
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Width = 30
	cmd := ti.Focus()

	p := emojiPicker{catalog: c, input: ti}
	return p.refresh(), cmd
}

func (p emojiPicker) refresh() emojiPicker {
	q := strings.TrimSpace(p.input.Value())
	switch {
	case p.catalog == nil:
		p.items = nil
	case q == "":
		cats := p.catalog.Categories()
		if len(cats) > 0 {
			p.category = (p.category%len(cats) + len(cats)) % len(cats)
			p.items = cats[p.category].Emojis
		}
	default:
		p.items = p.catalog.Find(q, emojiResultLimit)
	}
	p.cursor = clampInt(p.cursor, 0, max(len(p.items)-1, 0))
	return p
}

func (p emojiPicker) selected() (emoji.Emoji, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return emoji.Emoji{}, false
	}
	return p.items[p.cursor], true
}

func (p emojiPicker) update(msg tea.KeyMsg) (emojiPicker, tea.Cmd, pickerAction) {
	switch msg.Type {
	case tea.KeyEsc:
		return p, nil, pickerCancel
	case tea.KeyEnter:
		if _, ok := p.selected(); ok {
			return p, nil, pickerChoose
		}
		return p, nil, pickerNone
	case tea.KeyUp:
		p.cursor = max(p.cursor-1, 0)
		return p, nil, pickerNone
	case tea.KeyDown:
		p.cursor = min(p.cursor+1, max(len(p.items)-1, 0))
		return p, nil, pickerNone
	case tea.KeyTab, tea.KeyShiftTab:
		if strings.TrimSpace(p.input.Value()) != "" {
			return p, nil, pickerNone
		}
		if msg.Type == tea.KeyTab {
			p.category++
		} else {
			p.category--
		}
		p.cursor = 0
		return p.refresh(), nil, pickerNone
	}

	prev := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != prev {
		p.cursor = 0
		p = p.refresh()
	}
	return p, cmd, pickerNone
}

func (p emojiPicker) view(st theme.Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Insert emoji"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if p.catalog == nil {
		b.WriteString(st.Error.Render("emoji catalog unavailable"))
		return st.Dialog.Render(b.String())
	}
	if strings.TrimSpace(p.input.Value()) == "" {
		cats := p.catalog.Categories()
		if len(cats) > 0 {
			b.WriteString(st.Muted.Render(fmt.Sprintf("%s (%d/%d)", cats[p.category].Name, p.category+1, len(cats))))
			b.WriteString("\n")
		}
	}
	if len(p.items) == 0 {
		b.WriteString(st.Muted.Render("No emoji found"))
		b.WriteString("\n")
	}

	start := 0
	if p.cursor >= emojiVisibleRows {
		start = p.cursor - emojiVisibleRows + 1
	}
	end := min(start+emojiVisibleRows, len(p.items))
	for i := start; i < end; i++ {
		e := p.items[i]
		line := e.Char + "  " + e.Name
		if i == p.cursor {
			b.WriteString(st.ListSelected.Render(line))
		} else {
			b.WriteString(st.ListItem.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render("enter insert · tab category · esc cancel"))
	return st.Dialog.Render(b.String())
}
