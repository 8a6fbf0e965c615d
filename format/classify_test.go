package format

import "testing"

func TestClassifyBlock(t *testing.T) {
	cases := []struct {
		line string
		want Tag
		ok   bool
	}{
		{line: "#### x", want: H4, ok: true},
		{line: "### x", want: H3, ok: true},
		{line: "## x", want: H2, ok: true},
		{line: "# x", want: H1, ok: true},
		{line: "x", ok: false},
		{line: "#x", ok: false},
		{line: "##### x", ok: false},
		{line: " # x", ok: false},
		{line: "- [ ] task", want: Checklist, ok: true},
		{line: "- [x] done", want: Checklist, ok: true},
		{line: "- item", want: List, ok: true},
		{line: "* item", want: List, ok: true},
		{line: "12. item", want: OrderedList, ok: true},
		{line: "1.item", ok: false},
		{line: "> quoted", want: Quote, ok: true},
		{line: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := ClassifyBlock(tc.line)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("ClassifyBlock(%q): got (%v, %v), want (%v, %v)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassifyBlock_H4NotMistakenForH1(t *testing.T) {
	got, ok := ClassifyBlock("#### x")
	if !ok || got == H1 {
		t.Fatalf("ClassifyBlock(%q): got (%v, %v), want h4", "#### x", got, ok)
	}
}
