package buffer

// Pos addresses a grapheme cluster boundary: Row is the zero-based line,
// GraphemeCol the number of clusters before the position on that line.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range is the half-open span [Start, End). Use NormalizeRange before
// relying on Start preceding End.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces Range with Text. Text may span several lines.
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions by row, then column. It returns -1, 0 or 1.
func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		return sign(a.Row - b.Row)
	default:
		return sign(a.GraphemeCol - b.GraphemeCol)
	}
}

// NormalizeRange swaps the endpoints of a backwards range.
func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// ClampPos moves p inside a document of rowCount lines (at least one) whose
// line lengths, in graphemes, are reported by lineLen. A nil lineLen treats
// every line as empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	last := max(rowCount, 1) - 1
	p.Row = clampInt(p.Row, 0, last)

	width := 0
	if lineLen != nil {
		width = max(lineLen(p.Row), 0)
	}
	p.GraphemeCol = clampInt(p.GraphemeCol, 0, width)
	return p
}

// ClampRange applies ClampPos to both endpoints. It does not normalize.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	r.Start = ClampPos(r.Start, rowCount, lineLen)
	r.End = ClampPos(r.End, rowCount, lineLen)
	return r
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func clampInt(v, lo, hi int) int {
	if hi < lo || v < lo {
		return lo
	}
	return min(v, hi)
}
