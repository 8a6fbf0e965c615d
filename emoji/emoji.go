// Package emoji provides the emoji catalog used by the picker: categories,
// keyword search and fuzzy search.
package emoji

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Emoji struct {
	Char     string   `yaml:"char"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

type Category struct {
	Name   string  `yaml:"category"`
	Emojis []Emoji `yaml:"emojis"`
}

// Catalog is an immutable set of emoji grouped by category.
type Catalog struct {
	categories []Category
	all        []Emoji
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(catalogYAML)
})

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return loadDefault()
}

// Parse decodes a YAML catalog. Names are lower-cased and every word of a
// name longer than two characters becomes a keyword.
func Parse(data []byte) (*Catalog, error) {
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, errors.Wrap(err, "decode emoji catalog")
	}

	c := &Catalog{categories: make([]Category, 0, len(cats))}
	for ci, cat := range cats {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, errors.Errorf("emoji catalog: category %d has no name", ci)
		}
		out := Category{Name: cat.Name, Emojis: make([]Emoji, 0, len(cat.Emojis))}
		for ei, e := range cat.Emojis {
			if e.Char == "" || strings.TrimSpace(e.Name) == "" {
				return nil, errors.Errorf("emoji catalog: %s entry %d needs char and name", cat.Name, ei)
			}
			e.Name = strings.ToLower(strings.TrimSpace(e.Name))
			e.Keywords = keywords(e.Name, e.Keywords)
			out.Emojis = append(out.Emojis, e)
			c.all = append(c.all, e)
		}
		c.categories = append(c.categories, out)
	}
	return c, nil
}

func keywords(name string, extra []string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(w string) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			return
		}
		seen[w] = true
		out = append(out, w)
	}
	for _, w := range strings.Split(name, " ") {
		if len(w) > 2 {
			add(w)
		}
	}
	for _, w := range extra {
		add(w)
	}
	return out
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// All returns every emoji in catalog order.
func (c *Catalog) All() []Emoji {
	return append([]Emoji(nil), c.all...)
}

// Len is the number of emoji in the catalog.
func (c *Catalog) Len() int { return len(c.all) }

// Lookup finds an emoji by exact name, ignoring case.
func (c *Catalog) Lookup(name string) (Emoji, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range c.all {
		if e.Name == name {
			return e, true
		}
	}
	return Emoji{}, false
}

// Search returns the emoji whose name or a keyword contains query, ignoring
// case, in catalog order. An empty query matches nothing.
func (c *Catalog) Search(query string) []Emoji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Emoji
	for _, e := range c.all {
		if e.matches(q) {
			out = append(out, e)
		}
	}
	return out
}

func (e Emoji) matches(q string) bool {
	if strings.Contains(e.Name, q) {
		return true
	}
	for _, k := range e.Keywords {
		if strings.Contains(k, q) {
			return true
		}
	}
	return false
}

// Fuzzy ranks emoji names against query by fuzzy match score, best first.
// limit <= 0 returns every match.
func (c *Catalog) Fuzzy(query string, limit int) []Emoji {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	matches := fuzzy.FindFrom(q, names(c.all))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Emoji, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.all[m.Index])
	}
	return out
}

// Find runs Search and falls back to Fuzzy when nothing contains query.
func (c *Catalog) Find(query string, limit int) []Emoji {
	out := c.Search(query)
	if len(out) == 0 {
		return c.Fuzzy(query, limit)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type names []Emoji

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }
