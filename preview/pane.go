package preview

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdflourish/theme"
)

// Pane shows rendered markdown in a scrollable viewport.
type Pane struct {
	renderer *Renderer
	theme    theme.Theme
	viewport viewport.Model

	source   string
	rendered bool
	err      error
}

func NewPane(r *Renderer, th theme.Theme) Pane {
	return Pane{
		renderer: r,
		theme:    th,
		viewport: viewport.New(0, 0),
	}
}

func (p Pane) SetSize(width, height int) Pane {
	if width == p.viewport.Width && height == p.viewport.Height {
		return p
	}
	p.viewport.Width = max(width, 0)
	p.viewport.Height = max(height, 0)
	p.rendered = false
	return p.render()
}

func (p Pane) SetTheme(th theme.Theme) Pane {
	if th.ID == p.theme.ID {
		return p
	}
	p.theme = th
	p.rendered = false
	return p.render()
}

// SetContent re-renders when md differs from the current source.
func (p Pane) SetContent(md string) Pane {
	if md == p.source && p.rendered {
		return p
	}
	p.source = md
	p.rendered = false
	return p.render()
}

// SyncTo scrolls so the pane sits at ratio (0..1) of its scroll range.
func (p Pane) SyncTo(ratio float64) Pane {
	p.viewport.SetYOffset(syncOffset(ratio, p.viewport.TotalLineCount(), p.viewport.Height))
	return p
}

// Err is the last render error, if any. The pane shows the raw source then.
func (p Pane) Err() error { return p.err }

func (p Pane) YOffset() int { return p.viewport.YOffset }

func (p Pane) Update(msg tea.Msg) (Pane, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p Pane) View() string { return p.viewport.View() }

func (p Pane) render() Pane {
	if p.renderer == nil || p.viewport.Width <= 0 {
		return p
	}
	out, err := p.renderer.Render(p.source, p.viewport.Width, p.theme)
	p.err = err
	if err != nil {
		out = p.source
	}
	p.viewport.SetContent(out)
	p.rendered = true
	return p
}

// syncOffset maps a scroll ratio onto a viewport showing height of lines.
func syncOffset(ratio float64, lines, height int) int {
	maxOffset := lines - height
	if maxOffset <= 0 || math.IsNaN(ratio) {
		return 0
	}
	ratio = math.Min(math.Max(ratio, 0), 1)
	return int(math.Round(ratio * float64(maxOffset)))
}
