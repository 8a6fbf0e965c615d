// Package grapheme segments text into user-perceived characters and
// classifies them for cursor movement and rendering.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split segments text into extended grapheme clusters.
func Split(text string) []string {
	var out []string
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Join is the inverse of Split.
func Join(clusters []string) string { return strings.Join(clusters, "") }

// IsSpace reports whether cluster is whitespace only.
func IsSpace(cluster string) bool { return every(cluster, unicode.IsSpace) }

// IsDelimiter reports whether cluster is punctuation or symbols only, which
// covers the markdown markers *, #, ~, ` and |.
func IsDelimiter(cluster string) bool {
	return every(cluster, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Width is the number of terminal cells cluster occupies. A tab takes
// tabWidth cells and zero-width clusters still take one.
func Width(cluster string, tabWidth int) int {
	switch cluster {
	case "":
		return 0
	case "\t":
		return max(tabWidth, 1)
	}
	return max(runewidth.StringWidth(cluster), 1)
}

func every(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return !pred(r) }) < 0
}
