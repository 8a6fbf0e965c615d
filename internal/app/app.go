// Package app composes the editor, preview, toolbar, footer and dialogs into
// the mdflourish terminal program.
package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/document"
	"github.com/iw2rmb/mdflourish/editor"
	"github.com/iw2rmb/mdflourish/emoji"
	"github.com/iw2rmb/mdflourish/format"
	"github.com/iw2rmb/mdflourish/preview"
	"github.com/iw2rmb/mdflourish/theme"
)

// Options configures the program.
type Options struct {
	Theme theme.Theme

	// Document is the initial document. With no text and no path the
	// welcome document is shown.
	Document document.Document

	// Dir receives saved and exported files.
	Dir string

	// DraftPath keeps the unnamed buffer between runs: it is restored when
	// Document is empty and rewritten shortly after each edit. Empty
	// disables drafts.
	DraftPath string

	ShowLineNumbers bool
	HistoryLimit    int
	TabWidth        int
	NoPreview       bool

	Clipboard editor.Clipboard
	Emoji     *emoji.Catalog

	// SaveTheme persists a theme chosen in the picker. Nil skips it.
	SaveTheme func(id string) error

	Logger *slog.Logger
	Now    func() time.Time
}

type mode int

const (
	modeEdit mode = iota
	modeToolbar
	modeEmoji
	modeTheme
	modePrompt
	modeHelp
)

type Model struct {
	opts       Options
	log        *slog.Logger
	keys       KeyMap
	editorKeys editor.KeyMap

	width, height int

	theme  theme.Theme
	styles theme.Styles

	editor      editor.Model
	preview     preview.Pane
	showPreview bool
	focusMode   bool

	mode        mode
	toolbarSel  int
	emojiPicker emojiPicker
	themePicker themePicker
	prompt      prompt

	active    format.Set
	name      string
	path      string
	lastSaved time.Time
	status    string

	// baseline is the text last opened or saved; the buffer is dirty when
	// it differs.
	baseline string
	draft    draftState
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Theme.ID == "" {
		opts.Theme = theme.Default()
	}
	if opts.Emoji == nil {
		c, err := emoji.Default()
		if err != nil {
			opts.Logger.Warn("emoji catalog unavailable", "error", err)
		}
		opts.Emoji = c
	}
	log := opts.Logger

	text := opts.Document.Text
	if text == "" && opts.Document.Path == "" {
		text = initialText(opts)
	}

	st := opts.Theme.Styles()
	editorKeys := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         text,
		ShowLineNums: opts.ShowLineNumbers,
		Style:        st.Editor,
		TabWidth:     opts.TabWidth,
		HistoryLimit: opts.HistoryLimit,
		KeyMap:       editorKeys,
		Clipboard:    opts.Clipboard,
		Highlighter:  editor.MarkdownHighlighter{Styles: st.Markdown},
		OnChange: func(ev editor.ChangeEvent) {
			log.Debug("document changed",
				"version", ev.Version,
				"source", ev.Source,
				"formats", ev.Formats.String())
		},
	})

	m := Model{
		opts:        opts,
		log:         log,
		keys:        DefaultKeyMap(),
		editorKeys:  editorKeys,
		theme:       opts.Theme,
		styles:      st,
		editor:      ed,
		preview:     preview.NewPane(preview.NewRenderer(), opts.Theme),
		showPreview: !opts.NoPreview,
		toolbarSel:  -1,
		name:        opts.Document.Name,
		path:        opts.Document.Path,
		baseline:    ed.Text(),
		draft:       draftState{version: ed.Buffer().Version(), text: ed.Text()},
	}
	return m.afterEditor()
}

// initialText is the stored draft, or the welcome document when there is
// none.
func initialText(opts Options) string {
	if opts.DraftPath != "" {
		text, err := document.LoadDraft(opts.DraftPath)
		if err != nil {
			opts.Logger.Warn("draft unavailable", "path", opts.DraftPath, "error", err)
		}
		if text != "" {
			opts.Logger.Debug("draft restored", "path", opts.DraftPath)
			return text
		}
	}
	return document.DefaultContent
}

// Run starts the program on the terminal and blocks until it quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Text returns the document text.
func (m Model) Text() string { return m.editor.Text() }

// Name returns the document name, "Untitled" when unset.
func (m Model) Name() string {
	if m.name == "" {
		return document.UntitledName
	}
	return m.name
}

func (m Model) Theme() theme.Theme { return m.theme }

// ActiveFormats returns the formats highlighted in the toolbar.
func (m Model) ActiveFormats() format.Set { return m.active }
