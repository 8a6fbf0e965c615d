package buffer

import "github.com/iw2rmb/mdflourish/internal/grapheme"

// MoveUnit is the step size of a cursor movement.
type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

// MoveDir is the direction of a cursor movement. DirHome and DirEnd mean
// line edges, or document edges for MoveDoc.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

// Move describes one cursor movement. With Extend the selection grows from
// its anchor; without it the selection is dropped.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.step(from, m))

	var sel selectionState
	switch r, hasSel := b.Selection(); {
	case m.Extend:
		anchor := from
		if hasSel {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	case hasSel && m.Unit == MoveGrapheme && m.Dir == DirLeft:
		to = r.Start
	case hasSel && m.Unit == MoveGrapheme && m.Dir == DirRight:
		to = r.End
	}

	if to == from && selectionStateEqual(b.sel, sel) {
		return
	}
	b.cursor, b.sel = to, sel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	return a == b || (!a.active && !b.active)
}

func (b *Buffer) step(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(m.Dir, p)
	}
	return p
}

func (b *Buffer) lineEnd(row int) Pos {
	return Pos{Row: row, GraphemeCol: len(b.lines[row])}
}

func (b *Buffer) docEnd() Pos { return b.lineEnd(len(b.lines) - 1) }

// moveGrapheme steps one cluster left or right, crossing line breaks.
func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		switch {
		case p.GraphemeCol > 0:
			p.GraphemeCol--
		case p.Row > 0:
			p = b.lineEnd(p.Row - 1)
		}
		return p
	case DirRight:
		switch {
		case p.GraphemeCol < len(b.lines[p.Row]):
			p.GraphemeCol++
		case p.Row < len(b.lines)-1:
			p = Pos{Row: p.Row + 1}
		}
		return p
	}
	return b.moveLine(p, dir)
}

// moveWord jumps to the next word boundary on the line. At a line edge it
// crosses to the neighbouring line.
func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.GraphemeCol == 0 && p.Row > 0 {
			return b.lineEnd(p.Row - 1)
		}
		p.GraphemeCol = prevWordBoundary(line, p.GraphemeCol)
		return p
	case DirRight:
		if p.GraphemeCol == len(line) && p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
		p.GraphemeCol = nextWordBoundary(line, p.GraphemeCol)
		return p
	}
	return b.moveLine(p, dir)
}

// moveLine goes to line edges or to the adjacent row, keeping the column
// where the row is long enough. Up on the first row goes to the document
// start and down on the last row to its end.
func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return b.lineEnd(p.Row)
	case DirUp, DirDown:
		row := p.Row - 1
		if dir == DirDown {
			row = p.Row + 1
		}
		switch {
		case row < 0:
			return Pos{}
		case row >= len(b.lines):
			return b.docEnd()
		}
		return Pos{Row: row, GraphemeCol: min(p.GraphemeCol, len(b.lines[row]))}
	}
	return p
}

func (b *Buffer) moveDoc(dir MoveDir, p Pos) Pos {
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	case DirEnd, DirDown, DirRight:
		return b.docEnd()
	}
	return p
}

type clusterClass uint8

const (
	classSpace clusterClass = iota
	classPunct
	classWord
)

func classOf(cluster string) clusterClass {
	switch {
	case grapheme.IsSpace(cluster):
		return classSpace
	case grapheme.IsDelimiter(cluster):
		return classPunct
	}
	return classWord
}

// Word stops skip whitespace and then one run of a single class. Markdown
// delimiters are punctuation, so "**bold**" has three stops.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && classOf(line[i-1]) == classSpace {
		i--
	}
	if i > 0 {
		c := classOf(line[i-1])
		for i > 0 && classOf(line[i-1]) == c {
			i--
		}
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && classOf(line[i]) == classSpace {
		i++
	}
	if i < len(line) {
		c := classOf(line[i])
		for i < len(line) && classOf(line[i]) == c {
			i++
		}
	}
	return i
}
