package format

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestApply_Text(t *testing.T) {
	cases := []struct {
		cmd  Command
		text string
		sel  Selection
		want string
	}{
		{cmd: CmdBold, text: "", sel: Caret(0), want: "**Bold**"},
		{cmd: CmdBold, text: "hello world", sel: Selection{Start: 0, End: 5}, want: "**hello** world"},
		{cmd: CmdItalic, text: "a b", sel: Selection{Start: 2, End: 3}, want: "a *b*"},
		{cmd: CmdStrikethrough, text: "", sel: Caret(0), want: "~~Strikethrough~~"},
		{cmd: CmdH1, text: "", sel: Caret(0), want: "# Heading 1"},
		{cmd: CmdH4, text: "title", sel: Selection{Start: 0, End: 5}, want: "#### title"},
		{cmd: CmdList, text: "", sel: Caret(0), want: "- List item"},
		{cmd: CmdOrderedList, text: "x\n", sel: Caret(2), want: "x\n1. List item"},
		{cmd: CmdChecklist, text: "", sel: Caret(0), want: "- [ ] Task"},
		{cmd: CmdLink, text: "see docs", sel: Selection{Start: 4, End: 8}, want: "see [docs](url)"},
		{cmd: CmdLink, text: "", sel: Caret(0), want: "[Link text](url)"},
		{cmd: CmdImage, text: "", sel: Caret(0), want: "![Alt text](url)"},
		{cmd: CmdQuote, text: "", sel: Caret(0), want: "> Quote"},
		{cmd: CmdRule, text: "ab", sel: Caret(1), want: "a\n---\nb"},
		{cmd: CmdRule, text: "abc", sel: Selection{Start: 1, End: 2}, want: "a\n---\nc"},
		{cmd: CmdTable, text: "", sel: Caret(0), want: "| Header 1 | Header 2 |\n| :--- | :--- |\n| Cell 1 | Cell 2 |"},
		{cmd: CmdCodeBlock, text: "", sel: Caret(0), want: "```\nCode\n```"},
		{cmd: CmdInlineCode, text: "run x", sel: Selection{Start: 4, End: 5}, want: "run `x`"},
		{cmd: CmdMath, text: "", sel: Caret(0), want: "$E=mc^2$"},
		{cmd: CmdBold, text: "çava", sel: Selection{Start: 0, End: 2}, want: "**ça**va"},
		{cmd: CmdBold, text: "ab", sel: Selection{Start: 5, End: 9}, want: "ab**Bold**"},
		{cmd: CmdEmoji, text: "keep", sel: Caret(2), want: "keep"},
	}

	for _, tc := range cases {
		got, _ := Apply(tc.cmd, tc.text, tc.sel)
		if got != tc.want {
			t.Fatalf("Apply(%v, %q, %v): got %q, want %q", tc.cmd, tc.text, tc.sel, got, tc.want)
		}
	}
}

func TestApply_LinePrefixIsNotIdempotent(t *testing.T) {
	// The first h1 selects its placeholder; a second h1 prefixes that
	// selection again instead of replacing the existing marker.
	text, sel := Apply(CmdH1, "", Caret(0))
	if sel != (Selection{Start: 2, End: 11}) {
		t.Fatalf("first h1 selection: got %v, want placeholder selected", sel)
	}
	text, _ = Apply(CmdH1, text, sel)
	if want := "# # Heading 1"; text != want {
		t.Fatalf("h1 twice: got %q, want %q", text, want)
	}

	// At a caret before an existing heading the prefix and placeholder are
	// inserted in front of it.
	text, _ = Apply(CmdH1, "# Title", Caret(0))
	if want := "# Heading 1# Title"; text != want {
		t.Fatalf("h1 before heading: got %q, want %q", text, want)
	}
}

func TestApply_Selection(t *testing.T) {
	_, sel := Apply(CmdBold, "", Caret(0))
	if want := (Selection{Start: 2, End: 6}); sel != want {
		t.Fatalf("placeholder selection: got %v, want %v", sel, want)
	}

	_, sel = Apply(CmdBold, "hello world", Selection{Start: 0, End: 5})
	if want := Caret(9); sel != want {
		t.Fatalf("wrapped selection caret: got %v, want %v", sel, want)
	}

	_, sel = Apply(CmdRule, "ab", Caret(1))
	if want := Caret(6); sel != want {
		t.Fatalf("hr caret: got %v, want %v", sel, want)
	}

	_, sel = Apply(CmdEmoji, "ab", Selection{Start: 2, End: 0})
	if want := (Selection{Start: 0, End: 2}); sel != want {
		t.Fatalf("request selection: got %v, want %v", sel, want)
	}
}

func TestApply_RoundTripsWithResolve(t *testing.T) {
	for _, cmd := range Commands() {
		tag, ok := cmd.Tag()
		if !ok {
			continue
		}
		text, sel := Apply(cmd, "", Caret(0))
		if got := Resolve(text, sel); !got.Has(tag) {
			t.Fatalf("%v: Resolve(%q, %v): got {%v}, want %v", cmd, text, sel, got, tag)
		}
	}
}

func TestEditFor(t *testing.T) {
	e, _, ok := EditFor(CmdItalic, "one two", Selection{Start: 4, End: 7})
	if !ok {
		t.Fatalf("EditFor(italic): expected an edit")
	}
	if want := (Edit{Start: 4, End: 7, Text: "*two*"}); e != want {
		t.Fatalf("edit: got %+v, want %+v", e, want)
	}
	if got := e.ApplyTo("one two"); got != "one *two*" {
		t.Fatalf("ApplyTo: got %q", got)
	}

	if _, _, ok := EditFor(CmdEmoji, "x", Caret(0)); ok {
		t.Fatalf("EditFor(emoji): expected no edit")
	}
}

func TestInsertAt(t *testing.T) {
	cases := []struct {
		text  string
		pos   int
		emoji string
		want  string
	}{
		{text: "ab", pos: 1, emoji: "😀", want: "a😀b"},
		{text: "", pos: 0, emoji: "👍🏽", want: "👍🏽"},
		{text: "ü", pos: 1, emoji: "🎉", want: "ü🎉"},
		{text: "ab", pos: 10, emoji: "✅", want: "ab✅"},
	}

	for _, tc := range cases {
		got, caret := InsertAt(tc.text, tc.pos, tc.emoji)
		if got != tc.want {
			t.Fatalf("InsertAt(%q, %d, %q): got %q, want %q", tc.text, tc.pos, tc.emoji, got, tc.want)
		}
		n, e := utf8.RuneCountInString(tc.text), utf8.RuneCountInString(tc.emoji)
		if utf8.RuneCountInString(got) != n+e {
			t.Fatalf("InsertAt(%q): length not additive", tc.text)
		}
		pos := tc.pos
		if pos > n {
			pos = n
		}
		if caret != pos+e {
			t.Fatalf("InsertAt(%q, %d): caret got %d, want %d", tc.text, tc.pos, caret, pos+e)
		}
	}
}

func TestParseCommand(t *testing.T) {
	for _, cmd := range Commands() {
		got, err := ParseCommand(cmd.String())
		if err != nil || got != cmd {
			t.Fatalf("ParseCommand(%q): got (%v, %v), want %v", cmd.String(), got, err, cmd)
		}
	}
	if got, err := ParseCommand("EMOJI-REQUEST"); err != nil || got != CmdEmoji {
		t.Fatalf("ParseCommand(emoji-request): got (%v, %v)", got, err)
	}
	if _, err := ParseCommand("underline"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("ParseCommand(underline): got %v, want ErrUnknownCommand", err)
	}
}
