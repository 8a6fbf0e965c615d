package buffer

import "github.com/iw2rmb/mdflourish/format"

// FormatSelection returns the cursor or active selection as rune offsets.
func (b *Buffer) FormatSelection() format.Selection {
	r, ok := b.Selection()
	if !ok {
		off := b.posToRuneOffset(b.cursor)
		return format.Caret(off)
	}
	return format.Selection{
		Start: b.posToRuneOffset(r.Start),
		End:   b.posToRuneOffset(r.End),
	}
}

// ActiveFormats resolves the formats active at the cursor or selection start.
func (b *Buffer) ActiveFormats() format.Set {
	return format.Resolve(b.Text(), b.FormatSelection())
}

// ApplyFormat runs cmd against the current selection as one undoable change.
// Afterwards an inserted placeholder is selected; otherwise the cursor sits
// after the inserted text. It reports whether the document changed; request
// commands (emoji) never change it.
func (b *Buffer) ApplyFormat(cmd format.Command) bool {
	e, next, ok := format.EditFor(cmd, b.Text(), b.FormatSelection())
	if !ok {
		return false
	}

	start, okStart := b.PosFromRuneOffset(e.Start, OffsetError)
	end, okEnd := b.PosFromRuneOffset(e.End, OffsetError)
	if !okStart || !okEnd {
		return false
	}

	prev := b.checkpoint()
	change := b.beginChange(ChangeSourceFormat)
	applied, changed := b.splice(Range{Start: start, End: end}, e.Text)
	if !changed {
		return false
	}

	b.cursor = applied.RangeAfter.End
	b.sel = selectionState{}
	b.selectOffsets(next)

	b.version++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}

// InsertEmoji inserts s at the cursor, replacing any selection, and leaves the
// cursor after it.
func (b *Buffer) InsertEmoji(s string) bool {
	if s == "" {
		return false
	}
	return b.replace(b.selectionOrCaret(), s, ChangeSourceFormat)
}

func (b *Buffer) selectOffsets(sel format.Selection) {
	from, okFrom := b.PosFromRuneOffset(sel.Start, OffsetClamp)
	to, okTo := b.PosFromRuneOffset(sel.End, OffsetClamp)
	if !okFrom || !okTo {
		return
	}
	b.cursor = to
	if from != to {
		b.sel = selectionState{active: true, anchor: from, end: to}
	}
}
