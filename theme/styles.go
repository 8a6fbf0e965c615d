package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/mdflourish/editor"
)

// Styles are the lipgloss styles of every UI surface for one theme.
type Styles struct {
	Editor   editor.Style
	Markdown editor.MarkdownStyles

	App           lipgloss.Style
	Pane          lipgloss.Style
	PaneFocused   lipgloss.Style
	Toolbar       lipgloss.Style
	ToolbarItem   lipgloss.Style
	ToolbarActive lipgloss.Style
	Footer        lipgloss.Style
	Title         lipgloss.Style
	Muted         lipgloss.Style
	Dialog        lipgloss.Style
	ListItem      lipgloss.Style
	ListSelected  lipgloss.Style
	Error         lipgloss.Style
}

// Styles builds styles from the theme's palette using the default lipgloss
// renderer.
func (t Theme) Styles() Styles {
	return t.StylesFor(lipgloss.DefaultRenderer())
}

// StylesFor builds styles with r, which decides the color profile.
func (t Theme) StylesFor(r *lipgloss.Renderer) Styles {
	p := t.Palette
	bg := lipgloss.Color(p.Bg)
	fg := lipgloss.Color(p.Fg)
	primary := lipgloss.Color(p.Primary)
	border := lipgloss.Color(p.Border)
	surface := lipgloss.Color(p.Surface)
	highlight := lipgloss.Color(p.SurfaceHighlight)
	editorBg := lipgloss.Color(p.EditorBg)

	text := r.NewStyle().Foreground(fg).Background(editorBg)
	return Styles{
		Editor: editor.Style{
			Gutter:        r.NewStyle().Foreground(border).Background(editorBg),
			LineNum:       r.NewStyle().Foreground(border).Background(editorBg),
			LineNumActive: r.NewStyle().Foreground(primary).Background(editorBg).Bold(true),
			Text:          text,
			Selection:     r.NewStyle().Foreground(fg).Background(highlight),
			Cursor:        r.NewStyle().Foreground(editorBg).Background(primary),
		},
		Markdown: editor.MarkdownStyles{
			Heading:       r.NewStyle().Foreground(primary).Bold(true),
			Bold:          r.NewStyle().Bold(true),
			Italic:        r.NewStyle().Italic(true),
			Strikethrough: r.NewStyle().Strikethrough(true),
			Code:          r.NewStyle().Foreground(primary).Background(surface),
			Quote:         r.NewStyle().Foreground(border).Italic(true),
			ListMarker:    r.NewStyle().Foreground(primary),
		},

		App:           r.NewStyle().Foreground(fg).Background(bg),
		Pane:          r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border),
		PaneFocused:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary),
		Toolbar:       r.NewStyle().Foreground(fg).Background(surface),
		ToolbarItem:   r.NewStyle().Foreground(fg).Background(surface).Padding(0, 1),
		ToolbarActive: r.NewStyle().Foreground(bg).Background(primary).Bold(true).Padding(0, 1),
		Footer:        r.NewStyle().Foreground(fg).Background(surface).Padding(0, 1),
		Title:         r.NewStyle().Foreground(primary).Bold(true),
		Muted:         r.NewStyle().Foreground(border),
		Dialog:        r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
		ListItem:      r.NewStyle().Foreground(fg),
		ListSelected:  r.NewStyle().Foreground(bg).Background(primary),
		Error:         r.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
	}
}
