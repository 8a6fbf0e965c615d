package buffer

// checkpoint is a whole-document state that undo and redo travel between.
// Format commands rewrite arbitrary spans, so storing text is simpler than
// inverting each edit.
type checkpoint struct {
	text   string
	cursor Pos
	sel    selectionState
}

type history struct {
	past   []checkpoint
	future []checkpoint
}

func (b *Buffer) checkpoint() checkpoint {
	return checkpoint{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

// rewind loads c into the buffer. Positions are re-clamped since they were
// recorded against the same text, but a collapsed selection is dropped.
func (b *Buffer) rewind(c checkpoint) {
	b.lines = splitLines(c.text)
	b.cursor = b.clampPos(c.cursor)
	b.sel = selectionState{}
	if !c.sel.active {
		return
	}
	anchor, end := b.clampPos(c.sel.anchor), b.clampPos(c.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

// remember pushes c onto the undo stack, keeping at most HistoryLimit
// entries. A non-positive limit disables history.
func (b *Buffer) remember(c checkpoint) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.past = append(b.hist.past, c)
	if over := len(b.hist.past) - limit; over > 0 {
		b.hist.past = append(b.hist.past[:0], b.hist.past[over:]...)
	}
}

// recordUndo is called with the state before a user edit.
func (b *Buffer) recordUndo(prev checkpoint) {
	b.remember(prev)
	b.hist.future = b.hist.future[:0]
}

func (b *Buffer) CanUndo() bool { return len(b.hist.past) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.future) > 0 }

// Undo restores the state before the last edit. It reports false when there
// is nothing to undo.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.past, func(cur checkpoint) {
		b.hist.future = append(b.hist.future, cur)
	})
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.future, b.remember)
}

// travel pops the newest checkpoint from stack, hands the current state to
// keep and loads the popped one as a history change.
func (b *Buffer) travel(stack *[]checkpoint, keep func(checkpoint)) bool {
	n := len(*stack)
	if n == 0 {
		return false
	}
	target := (*stack)[n-1]
	*stack = (*stack)[:n-1]

	cur := b.checkpoint()
	change := b.beginChange(ChangeSourceHistory)
	keep(cur)

	b.rewind(target)
	b.version++
	if edit, ok := diffEdit(cur.text, target.text); ok {
		change.addAppliedEdit(edit)
	}
	b.commitChange(change)
	return true
}
