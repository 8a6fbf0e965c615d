package buffer

import (
	"slices"
	"strings"
)

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	// ChangeSourceLocal is typing, deletion and paste.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceFormat is a formatting command or emoji insertion.
	ChangeSourceFormat
	// ChangeSourceHistory is undo or redo.
	ChangeSourceHistory
	// ChangeSourceLoad is a whole-document replacement (new or opened file).
	ChangeSourceLoad
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceFormat:
		return "format"
	case ChangeSourceHistory:
		return "history"
	case ChangeSourceLoad:
		return "load"
	default:
		return "unknown"
	}
}

// SelectionState is a normalized selection snapshot. Range is zero when
// Active is false.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one replacement within a Change, in coordinates before
// and after the edit.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records one mutation of the buffer text together with the cursor
// and selection around it.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns a copy of the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if b.lastChange == nil {
		return Change{}, false
	}
	out := *b.lastChange
	out.AppliedEdits = slices.Clone(out.AppliedEdits)
	return out, true
}

func (b *Buffer) selectionState() SelectionState {
	if r, ok := b.Selection(); ok {
		return SelectionState{Active: true, Range: r}
	}
	return SelectionState{}
}

// beginChange captures the "before" half of a Change.
func (b *Buffer) beginChange(source ChangeSource) *Change {
	return &Change{
		Source:          source,
		VersionBefore:   b.version,
		CursorBefore:    b.cursor,
		SelectionBefore: b.selectionState(),
	}
}

func (c *Change) addAppliedEdit(edit AppliedEdit) {
	edit.RangeBefore = NormalizeRange(edit.RangeBefore)
	edit.RangeAfter = NormalizeRange(edit.RangeAfter)
	c.AppliedEdits = append(c.AppliedEdits, edit)
}

// commitChange fills in the "after" half and publishes c, unless the
// version did not move.
func (b *Buffer) commitChange(c *Change) {
	if b.version == c.VersionBefore {
		return
	}
	c.VersionAfter = b.version
	c.CursorAfter = b.cursor
	c.SelectionAfter = b.selectionState()
	b.lastChange = c
}

// diffEdit describes the change from before to after as one replacement
// covering only the clusters between their common prefix and suffix.
func diffEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	a, b := clusterStream(before), clusterStream(after)

	head := 0
	for head < len(a) && head < len(b) && a[head] == b[head] {
		head++
	}
	tail := 0
	for tail < len(a)-head && tail < len(b)-head && a[len(a)-1-tail] == b[len(b)-1-tail] {
		tail++
	}

	start := streamPos(a, head)
	return AppliedEdit{
		RangeBefore: Range{Start: start, End: streamPos(a, len(a)-tail)},
		RangeAfter:  Range{Start: start, End: streamPos(b, len(b)-tail)},
		InsertText:  strings.Join(b[head:len(b)-tail], ""),
		DeletedText: strings.Join(a[head:len(a)-tail], ""),
	}, true
}

// clusterStream flattens text into grapheme clusters with "\n" separators.
func clusterStream(text string) []string {
	var out []string
	for i, line := range splitLines(text) {
		if i > 0 {
			out = append(out, "\n")
		}
		out = append(out, line...)
	}
	return out
}

func streamPos(stream []string, n int) Pos {
	var p Pos
	for _, c := range stream[:n] {
		if c == "\n" {
			p.Row++
			p.GraphemeCol = 0
			continue
		}
		p.GraphemeCol++
	}
	return p
}
