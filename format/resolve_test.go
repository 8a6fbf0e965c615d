package format

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		text string
		sel  Selection
		want Set
	}{
		{name: "bold suppresses italic", text: "**bold**", sel: Caret(4), want: NewSet(Bold)},
		{name: "plain", text: "plain text", sel: Caret(3), want: 0},
		{name: "plain selection", text: "plain text", sel: Selection{Start: 0, End: 10}, want: 0},
		{name: "italic", text: "an *it* word", sel: Caret(5), want: NewSet(Italic)},
		{name: "heading and bold", text: "## a **b** c", sel: Caret(7), want: NewSet(H2, Bold)},
		{name: "heading only", text: "# Title", sel: Caret(0), want: NewSet(H1)},
		{name: "second line", text: "# Title\nsome `code` here", sel: Caret(15), want: NewSet(InlineCode)},
		{name: "first line does not leak", text: "# Title\nplain", sel: Caret(10), want: 0},
		{name: "strike", text: "~~x~~", sel: Caret(2), want: NewSet(Strikethrough)},
		{name: "strike and code", text: "~~`x`~~", sel: Caret(3), want: NewSet(Strikethrough, InlineCode)},
		{name: "caret on newline", text: "**a**\nb", sel: Caret(5), want: NewSet(Bold)},
		{name: "checklist", text: "- [ ] *todo*", sel: Caret(8), want: NewSet(Checklist, Italic)},
		{name: "empty document", text: "", sel: Caret(0), want: 0},
		{name: "clamped offsets", text: "**x**", sel: Selection{Start: 99, End: -4}, want: NewSet(Bold)},
		{name: "multibyte before caret", text: "ü **ö**", sel: Caret(4), want: NewSet(Bold)},
	}

	for _, tc := range cases {
		if got := Resolve(tc.text, tc.sel); got != tc.want {
			t.Fatalf("%s: Resolve(%q, %v): got {%v}, want {%v}", tc.name, tc.text, tc.sel, got, tc.want)
		}
	}
}

func TestLineAt(t *testing.T) {
	text := "one\ntwo\nthree"
	cases := []struct {
		sel        Selection
		start, end int
	}{
		{sel: Caret(0), start: 0, end: 3},
		{sel: Caret(3), start: 0, end: 3},
		{sel: Caret(4), start: 4, end: 7},
		{sel: Caret(13), start: 8, end: 13},
		{sel: Selection{Start: 1, End: 5}, start: 0, end: 7},
	}
	for _, tc := range cases {
		start, end := LineAt(text, tc.sel)
		if start != tc.start || end != tc.end {
			t.Fatalf("LineAt(%v): got [%d, %d), want [%d, %d)", tc.sel, start, end, tc.start, tc.end)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet(Italic, H2, Bold)
	if got, want := s.String(), "h2,bold,italic"; got != want {
		t.Fatalf("string: got %q, want %q", got, want)
	}
	if got := s.Len(); got != 3 {
		t.Fatalf("len: got %d, want 3", got)
	}
	s = s.Without(Bold)
	if s.Has(Bold) || !s.Has(Italic) {
		t.Fatalf("without: got {%v}", s)
	}
	if !Set(0).IsEmpty() || Set(0).Tags() != nil {
		t.Fatalf("empty set must report empty")
	}
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag(" Inline-Code ")
	if err != nil || tag != InlineCode {
		t.Fatalf("ParseTag: got (%v, %v), want inline-code", tag, err)
	}
	if _, err := ParseTag("h5"); err == nil {
		t.Fatalf("ParseTag(h5): expected error")
	}
}

func FuzzResolve(f *testing.F) {
	f.Add("**bold** and *it*", 3, 9)
	f.Add("# h\n`c`", 5, 5)
	f.Add("", 0, 0)
	f.Fuzz(func(t *testing.T, text string, start, end int) {
		got := Resolve(text, Selection{Start: start, End: end})
		if got.Has(Bold) && got.Has(Italic) {
			t.Fatalf("bold and italic reported together for %q", text)
		}
		if got.Len() > len(inlineRules) {
			t.Fatalf("too many tags: {%v}", got)
		}
	})
}
