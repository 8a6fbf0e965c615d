package buffer

import (
	"testing"

	"github.com/iw2rmb/mdflourish/format"
)

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.DeleteBackward() // no-op at BOF
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutation")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})
	v := b.Version()

	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Source, ChangeSourceLocal; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
	if ch.VersionBefore != v || ch.VersionAfter != v+1 {
		t.Fatalf("versions=%d..%d, want %d..%d", ch.VersionBefore, ch.VersionAfter, v, v+1)
	}
	if got, want := ch.CursorAfter, (Pos{GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after=%v, want %v", got, want)
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	e := ch.AppliedEdits[0]
	if e.InsertText != "X" || e.DeletedText != "" {
		t.Fatalf("applied edit=%+v", e)
	}
}

func TestBuffer_Change_Sources(t *testing.T) {
	b := New("x", Options{})

	b.ApplyFormat(format.CmdBold)
	c, _ := b.LastChange()
	if c.Source != ChangeSourceFormat {
		t.Fatalf("format source=%v", c.Source)
	}
	if !c.SelectionAfter.Active {
		t.Fatalf("format change must report the placeholder selection")
	}

	b.Undo()
	c, _ = b.LastChange()
	if c.Source != ChangeSourceHistory {
		t.Fatalf("undo source=%v", c.Source)
	}
	if got := ChangeSourceHistory.String(); got != "history" {
		t.Fatalf("string=%q", got)
	}

	b.Reset("new doc")
	c, _ = b.LastChange()
	if c.Source != ChangeSourceLoad {
		t.Fatalf("reset source=%v", c.Source)
	}
}

func TestBuffer_LastChange_ReturnsCopy(t *testing.T) {
	b := New("ab", Options{})
	b.InsertText("X")

	ch1, _ := b.LastChange()
	ch1.AppliedEdits[0].InsertText = "mutated"
	ch2, _ := b.LastChange()
	if ch2.AppliedEdits[0].InsertText != "X" {
		t.Fatalf("LastChange must return a copy")
	}
}
