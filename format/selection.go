package format

// Selection is a range of rune offsets into a document: [Start, End).
// Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection { return Selection{Start: pos, End: pos} }

func (s Selection) IsEmpty() bool { return s.Start == s.End }

func (s Selection) Len() int { return s.End - s.Start }

// Clamp returns s ordered and limited to [0, n].
func (s Selection) Clamp(n int) Selection {
	if n < 0 {
		n = 0
	}
	s.Start = clampInt(s.Start, 0, n)
	s.End = clampInt(s.End, 0, n)
	if s.End < s.Start {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
