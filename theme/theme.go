// Package theme holds the color themes of the editor and turns them into
// lipgloss styles.
package theme

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// ErrUnknownTheme is returned by Lookup for ids not in the catalog.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// DefaultID is the theme used when none is configured.
const DefaultID = "dark"

// Palette is a theme's colors as #rrggbb hex strings.
type Palette struct {
	Bg               string
	Fg               string
	Primary          string
	Border           string
	Surface          string
	SurfaceHighlight string
	EditorBg         string
}

type Theme struct {
	ID      string
	Name    string
	Dark    bool
	Palette Palette
}

// All returns every theme in catalog order.
func All() []Theme {
	return append([]Theme(nil), catalog...)
}

// IDs returns every theme id in catalog order.
func IDs() []string {
	out := make([]string, len(catalog))
	for i, t := range catalog {
		out[i] = t.ID
	}
	return out
}

// Lookup finds a theme by id, ignoring case and surrounding space.
func Lookup(id string) (Theme, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, errors.Wrapf(ErrUnknownTheme, "%q", id)
}

// Index returns the catalog position of id, or -1.
func Index(id string) int {
	for i, t := range catalog {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Lookup(DefaultID)
	return t
}

// Auto picks the dark or light theme for the terminal behind out.
func Auto(out *termenv.Output) Theme {
	return forBackground(out.HasDarkBackground())
}

func forBackground(dark bool) Theme {
	id := "light"
	if dark {
		id = "dark"
	}
	t, _ := Lookup(id)
	return t
}

// GlamourStyle names the glamour standard style matching the theme.
func (t Theme) GlamourStyle() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}
