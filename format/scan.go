package format

// Span is a matched delimiter pair within a line, in rune columns.
// Open is the column of the opening token; End is the column just past the
// closing token.
type Span struct {
	Open int
	End  int
}

// IsInside reports whether rel lies within a matched pair of token in line.
//
// Occurrences of token are consumed left to right without overlap and toggle
// an inside/outside state. When a closing occurrence is found, rel counts as
// inside if openIndex <= rel <= closeIndex+len(token). A line with fewer than
// two occurrences never reports true. Backslash escapes are not honoured.
func IsInside(line, token string, rel int) bool {
	return isInside([]rune(line), []rune(token), rel)
}

// Pairs returns every matched pair of token in line, in order.
func Pairs(line, token string) []Span {
	var out []Span
	scanPairs([]rune(line), []rune(token), func(sp Span) bool {
		out = append(out, sp)
		return true
	})
	return out
}

func isInside(line, token []rune, rel int) bool {
	found := false
	scanPairs(line, token, func(sp Span) bool {
		if rel >= sp.Open && rel <= sp.End {
			found = true
			return false
		}
		return true
	})
	return found
}

// scanPairs calls yield for each closed pair until yield returns false.
func scanPairs(line, token []rune, yield func(Span) bool) {
	n := len(token)
	if n == 0 || len(line) < 2*n {
		return
	}

	inside := false
	open := -1
	for i := 0; i < len(line); {
		if !hasTokenAt(line, token, i) {
			i++
			continue
		}
		if inside {
			if !yield(Span{Open: open, End: i + n}) {
				return
			}
		}
		inside = !inside
		open = i
		i += n
	}
}

func hasTokenAt(line, token []rune, i int) bool {
	if i+len(token) > len(line) {
		return false
	}
	for j, r := range token {
		if line[i+j] != r {
			return false
		}
	}
	return true
}
