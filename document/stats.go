package document

import (
	"strings"
	"unicode/utf8"
)

// Stats summarises a document for the status bar.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Count returns word, character and line counts. Characters are runes;
// an empty document has one line.
func Count(text string) Stats {
	return Stats{
		Words: len(strings.Fields(text)),
		Chars: utf8.RuneCountInString(text),
		Lines: strings.Count(text, "\n") + 1,
	}
}

// Cursor is the caret location as shown to the user.
type Cursor struct {
	// Line and Col are 1-based; Col counts runes.
	Line     int
	Col      int
	Selected int
}

// CursorAt reports the caret location for the selection [start, end) given
// in rune offsets. Offsets are clamped to the text.
func CursorAt(text string, start, end int) Cursor {
	n := utf8.RuneCountInString(text)
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}

	line, col := 1, 1
	i := 0
	for _, r := range text {
		if i == start {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return Cursor{Line: line, Col: col, Selected: end - start}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
