package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level bindings. Editing and formatting keys
// live in editor.KeyMap.
type KeyMap struct {
	Save, Open, Rename, New, Export key.Binding
	Quit                            key.Binding

	Themes, Help, Focus, Preview, Toolbar key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Rename: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rename")),
		New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new document")),
		Export: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "export html")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		Themes:  key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "themes")),
		Help:    key.NewBinding(key.WithKeys("f1", "alt+h"), key.WithHelp("f1", "cheat sheet")),
		Focus:   key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "focus mode")),
		Preview: key.NewBinding(key.WithKeys("alt+p"), key.WithHelp("alt+p", "toggle preview")),
		Toolbar: key.NewBinding(key.WithKeys("f10", "alt+m"), key.WithHelp("f10", "toolbar")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Open, k.Rename, k.New, k.Export},
		{k.Themes, k.Focus, k.Preview, k.Toolbar, k.Help, k.Quit},
	}
}
