// Package preview renders markdown for the terminal preview pane.
package preview

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/pkg/errors"

	"github.com/iw2rmb/mdflourish/theme"
)

// Placeholder is shown when there is nothing to render.
const Placeholder = "Nothing to preview..."

type cacheKey struct {
	width int
	theme string
}

// Renderer renders markdown with glamour. Creating a glamour renderer is
// expensive, so one is kept per (width, theme).
type Renderer struct {
	mu    sync.Mutex
	cache map[cacheKey]*glamour.TermRenderer
}

func NewRenderer() *Renderer {
	return &Renderer{cache: map[cacheKey]*glamour.TermRenderer{}}
}

// Render renders md wrapped to width. Blank input renders the placeholder.
func (r *Renderer) Render(md string, width int, th theme.Theme) (string, error) {
	if strings.TrimSpace(md) == "" {
		return Placeholder, nil
	}
	tr, err := r.renderer(width, th)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return strings.Trim(out, "\n"), nil
}

func (r *Renderer) renderer(width int, th theme.Theme) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 1
	}
	key := cacheKey{width: width, theme: th.ID}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tr, ok := r.cache[key]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(StyleFor(th)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create markdown renderer")
	}
	r.cache[key] = tr
	return tr, nil
}

func (r *Renderer) cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

// StyleFor returns glamour's standard dark or light style with headings and
// links in the theme's primary color and no document margin.
func StyleFor(th theme.Theme) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if !th.Dark {
		cfg = styles.LightStyleConfig
	}

	primary := th.Palette.Primary
	bg := th.Palette.Bg
	margin := uint(0)
	cfg.Document.Margin = &margin
	cfg.Heading.Color = &primary
	cfg.H1.Color = &bg
	cfg.H1.BackgroundColor = &primary
	cfg.Link.Color = &primary
	cfg.LinkText.Color = &primary
	return cfg
}
