package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal cell width of one grapheme cluster
// starting at visualCol. Tabs advance to the next tab stop.
func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}

// cursorCell returns the cell where the cursor at col sits on a line.
func cursorCell(line []string, col, tabWidth int) int {
	cell := 0
	for i, g := range line {
		if i >= col {
			break
		}
		cell += graphemeCellWidth(g, cell, tabWidth)
	}
	return cell
}

// graphemeColForCell returns the grapheme column that covers cell. Cells past
// the end of the line map to the line end.
func graphemeColForCell(line []string, cell, tabWidth int) int {
	at := 0
	for i, g := range line {
		w := graphemeCellWidth(g, at, tabWidth)
		if cell < at+w {
			return i
		}
		at += w
	}
	return len(line)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
