package buffer

import "unicode/utf8"

// OffsetClampMode selects how conversions treat offsets and positions that
// fall outside the document or inside a grapheme cluster.
type OffsetClampMode uint8

const (
	// OffsetError fails the conversion.
	OffsetError OffsetClampMode = iota
	// OffsetClamp clamps into the document and snaps to the start of the
	// enclosing cluster.
	OffsetClamp
)

// rowRunes is the rune length of a row without its line break.
func rowRunes(line []string) int {
	n := 0
	for _, c := range line {
		n += utf8.RuneCountInString(c)
	}
	return n
}

// RuneLen returns the document length in runes, counting each line break
// as one.
func (b *Buffer) RuneLen() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += rowRunes(line)
	}
	return n
}

// PosFromRuneOffset converts a rune offset into the text to a position.
// Format commands work in rune offsets; the buffer in clusters.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	switch n := b.RuneLen(); mode {
	case OffsetError:
		if off < 0 || off > n {
			return Pos{}, false
		}
	case OffsetClamp:
		off = clampInt(off, 0, n)
	default:
		return Pos{}, false
	}

	row := 0
	for ; row < len(b.lines)-1; row++ {
		width := rowRunes(b.lines[row])
		if off <= width {
			break
		}
		off -= width + 1
	}

	for col, c := range b.lines[row] {
		if off <= 0 {
			return Pos{Row: row, GraphemeCol: col}, true
		}
		n := utf8.RuneCountInString(c)
		if off < n {
			return Pos{Row: row, GraphemeCol: col}, mode == OffsetClamp
		}
		off -= n
	}
	return Pos{Row: row, GraphemeCol: len(b.lines[row])}, true
}

// RuneOffsetFromPos converts a position to a rune offset into the text.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch {
	case mode == OffsetError && clamped != pos, mode > OffsetClamp:
		return 0, false
	}
	return b.posToRuneOffset(clamped), true
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := pos.Row
	for _, line := range b.lines[:pos.Row] {
		off += rowRunes(line)
	}
	return off + rowRunes(b.lines[pos.Row][:pos.GraphemeCol])
}
