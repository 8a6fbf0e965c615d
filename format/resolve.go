package format

type inlineRule struct {
	token []rune
	tag   Tag
}

var inlineRules = []inlineRule{
	{token: []rune("**"), tag: Bold},
	{token: []rune("*"), tag: Italic},
	{token: []rune("~~"), tag: Strikethrough},
	{token: []rune("`"), tag: InlineCode},
}

// LineAt returns the rune bounds [start, end) of the line containing sel.
//
// start follows the last newline before sel.Start; end is the first newline at
// or after sel.End, or the end of text. A selection spanning several lines
// yields all of them.
func LineAt(text string, sel Selection) (start, end int) {
	runes := []rune(text)
	return lineBounds(runes, sel.Clamp(len(runes)))
}

func lineBounds(runes []rune, sel Selection) (start, end int) {
	start = sel.Start
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end = sel.End
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return start, end
}

// Resolve returns the formats active at the start of sel.
//
// The result is recomputed from scratch on every call. It never fails; an
// out-of-range selection is clamped into the document first.
func Resolve(text string, sel Selection) Set {
	runes := []rune(text)
	sel = sel.Clamp(len(runes))

	start, end := lineBounds(runes, sel)
	line := runes[start:end]
	rel := sel.Start - start

	var set Set
	if tag, ok := ClassifyBlock(string(line)); ok {
		set = set.With(tag)
	}
	for _, r := range inlineRules {
		if isInside(line, r.token, rel) {
			set = set.With(r.tag)
		}
	}
	// A "**x**" run also forms naive "*" pairs.
	if set.Has(Bold) {
		set = set.Without(Italic)
	}
	return set
}
