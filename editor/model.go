package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/buffer"
	"github.com/iw2rmb/mdflourish/format"
)

// Model is a Bubble Tea component that renders and edits a markdown buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
	lastSel        buffer.Range
	lastSelOK      bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.remember()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Text returns the document text.
func (m Model) Text() string { return m.buf.Text() }

// ActiveFormats returns the formats active at the cursor or selection start.
func (m Model) ActiveFormats() format.Set { return m.buf.ActiveFormats() }

// ScrollRatio reports how far the viewport is scrolled, in [0, 1].
func (m Model) ScrollRatio() float64 { return m.viewport.ScrollPercent() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.followCursor()
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetStyle swaps the rendering style, e.g. after a theme change.
func (m Model) SetStyle(st Style) Model {
	m.cfg.Style = st
	m.rebuildContent()
	return m
}

// SetHighlighter swaps the line highlighter. Nil renders plain text.
func (m Model) SetHighlighter(h Highlighter) Model {
	m.cfg.Highlighter = h
	m.rebuildContent()
	return m
}

// SetText replaces the document, clearing undo history.
func (m Model) SetText(text string) (Model, tea.Cmd) {
	m.buf.Reset(text)
	m.xOffset = 0
	m.viewport.SetYOffset(0)
	return m.sync(nil, true)
}

// ApplyFormat runs a formatting command against the cursor or selection.
// The emoji command makes no edit; it emits an EmojiRequestMsg instead.
func (m Model) ApplyFormat(cmd format.Command) (Model, tea.Cmd) {
	if cmd.IsRequest() {
		return m, m.emojiRequest()
	}
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.buf.ApplyFormat(cmd)
	return m.sync(nil, true)
}

// InsertEmoji inserts s at the cursor, replacing any selection.
func (m Model) InsertEmoji(s string) (Model, tea.Cmd) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.buf.InsertEmoji(s)
	return m.sync(nil, true)
}

func (m Model) Undo() (Model, tea.Cmd) {
	if !m.cfg.ReadOnly {
		m.buf.Undo()
	}
	return m.sync(nil, true)
}

func (m Model) Redo() (Model, tea.Cmd) {
	if !m.cfg.ReadOnly {
		m.buf.Redo()
	}
	return m.sync(nil, true)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	follow := true
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Don't force-follow cursor on wheel; allow manual scrolling.
		follow = !tea.MouseEvent(msg).IsWheel()
	}
	return m.sync(cmd, follow)
}

func (m Model) View() string { return m.viewport.View() }

// sync re-renders after the buffer changed and notifies OnChange.
func (m Model) sync(cmd tea.Cmd, follow bool) (Model, tea.Cmd) {
	prevY, prevX := m.viewport.YOffset, m.xOffset
	changed := m.syncFromBuffer()
	if changed && follow {
		m.followCursor()
	}
	if changed || prevY != m.viewport.YOffset || prevX != m.xOffset {
		m.rebuildContent()
	}
	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return m, cmd
}

func (m *Model) syncFromBuffer() bool {
	sel, selOK := m.buf.Selection()
	if m.buf.Version() == m.lastBufVersion && m.buf.Cursor() == m.lastCursor &&
		sel == m.lastSel && selOK == m.lastSelOK {
		return false
	}
	m.remember()
	return true
}

func (m *Model) remember() {
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.lastSel, m.lastSelOK = m.buf.Selection()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.visibleRowCount()
	if h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cell := cursorCell(m.buf.LineGraphemes(cur.Row), cur.GraphemeCol, m.cfg.TabWidth)
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
}

func (m Model) visibleRowCount() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

func (m Model) contentWidth() int {
	if m.viewport.Width <= 0 {
		return 0
	}
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	if w < 1 {
		return 1
	}
	return w
}

func (m Model) emojiRequest() tea.Cmd {
	off := m.buf.FormatSelection().Start
	return func() tea.Msg { return EmojiRequestMsg{Offset: off} }
}

// EmojiRequestMsg asks the host to show an emoji picker. The host answers by
// calling InsertEmoji; Offset is the rune offset the emoji will land at.
type EmojiRequestMsg struct {
	Offset int
}
