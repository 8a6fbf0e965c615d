package buffer

import (
	"strings"

	"github.com/iw2rmb/mdflourish/internal/grapheme"
)

// InsertText types s at the cursor. An active selection is replaced.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replace(b.selectionOrCaret(), s, ChangeSourceLocal)
}

// InsertNewline splits the line at the cursor.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the selection, or the cluster before the cursor.
// At a line start it joins the line with the previous one.
func (b *Buffer) DeleteBackward() { b.deleteToward(DirLeft) }

// DeleteForward removes the selection, or the cluster after the cursor.
func (b *Buffer) DeleteForward() { b.deleteToward(DirRight) }

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "", ChangeSourceLocal)
	}
}

func (b *Buffer) deleteToward(dir MoveDir) {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	other := b.moveGrapheme(b.cursor, dir)
	b.replace(Range{Start: other, End: b.cursor}, "", ChangeSourceLocal)
}

func (b *Buffer) selectionOrCaret() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Range{Start: b.cursor, End: b.cursor}
}

// replace applies one edit as a single undoable change. It reports whether
// the document changed.
func (b *Buffer) replace(r Range, text string, source ChangeSource) bool {
	prev := b.checkpoint()
	change := b.beginChange(source)

	applied, ok := b.splice(r, text)
	if !ok {
		return false
	}

	b.cursor = applied.RangeAfter.End
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

// splice swaps the clusters in r for text. The rows touched by the edit
// are re-segmented as a whole, so an inserted combining mark joins the
// cluster before it.
func (b *Buffer) splice(r Range, text string) (AppliedEdit, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return AppliedEdit{}, false
	}

	head := grapheme.Join(b.lines[r.Start.Row][:r.Start.GraphemeCol])
	tail := grapheme.Join(b.lines[r.End.Row][r.End.GraphemeCol:])
	middle := splitLines(head + text + tail)

	lines := make([][]string, 0, len(b.lines)+len(middle))
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, middle...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines

	typed := splitLines(head + text)
	end := Pos{
		Row:         r.Start.Row + len(typed) - 1,
		GraphemeCol: len(typed[len(typed)-1]),
	}
	end = b.clampPos(end)

	return AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: end},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
