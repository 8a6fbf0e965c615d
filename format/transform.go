package format

import "unicode/utf8"

// Edit replaces the runes [Start, End) of a document with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// ApplyTo returns text with e applied. Offsets are clamped into text.
func (e Edit) ApplyTo(text string) string {
	runes := []rune(text)
	return string(e.apply(runes))
}

func (e Edit) apply(runes []rune) []rune {
	r := Selection{Start: e.Start, End: e.End}.Clamp(len(runes))
	ins := []rune(e.Text)
	out := make([]rune, 0, len(runes)-r.Len()+len(ins))
	out = append(out, runes[:r.Start]...)
	out = append(out, ins...)
	out = append(out, runes[r.End:]...)
	return out
}

// EditFor returns the edit that cmd makes to text at sel, and the selection
// to use afterwards (in post-edit offsets).
//
// Wrap commands surround the selected text with their tokens; line-prefix
// commands insert their prefix at sel.Start without looking at an existing
// prefix, so applying one twice yields two prefixes. When nothing is selected
// the command's placeholder is inserted and selected. Insert commands (hr,
// table) replace the selection and leave the caret after the template.
//
// ok is false for request commands (emoji), which make no edit.
func EditFor(cmd Command, text string, sel Selection) (e Edit, next Selection, ok bool) {
	return editFor(cmd, []rune(text), sel)
}

func editFor(cmd Command, runes []rune, sel Selection) (Edit, Selection, bool) {
	sel = sel.Clamp(len(runes))
	if cmd >= commandCount {
		return Edit{}, sel, false
	}
	t := templates[cmd]

	switch t.kind {
	case kindRequest:
		return Edit{}, sel, false
	case kindInsert:
		e := Edit{Start: sel.Start, End: sel.End, Text: t.open}
		return e, Caret(sel.Start + utf8.RuneCountInString(t.open)), true
	}

	content := string(runes[sel.Start:sel.End])
	placeholder := content == ""
	if placeholder {
		content = t.placeholder
	}

	e := Edit{Start: sel.Start, End: sel.End, Text: t.open + content + t.close}
	if placeholder {
		from := sel.Start + utf8.RuneCountInString(t.open)
		return e, Selection{Start: from, End: from + utf8.RuneCountInString(content)}, true
	}
	return e, Caret(sel.Start + utf8.RuneCountInString(e.Text)), true
}

// Apply runs cmd against text at sel and returns the new text and selection.
// Request commands return text and the clamped selection unchanged.
func Apply(cmd Command, text string, sel Selection) (string, Selection) {
	runes := []rune(text)
	e, next, ok := editFor(cmd, runes, sel)
	if !ok {
		return text, next
	}
	return string(e.apply(runes)), next
}

// InsertAt inserts s at pos (clamped into text) and returns the new text and
// the caret just after s.
func InsertAt(text string, pos int, s string) (string, int) {
	runes := []rune(text)
	pos = clampInt(pos, 0, len(runes))
	e := Edit{Start: pos, End: pos, Text: s}
	return string(e.apply(runes)), pos + utf8.RuneCountInString(s)
}
