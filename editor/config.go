package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool
	KeyMap   KeyMap

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// Highlighter styles visible lines. Nil renders plain text.
	Highlighter Highlighter

	// OnChange is called after an update that changed the text, the cursor or
	// the selection.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
