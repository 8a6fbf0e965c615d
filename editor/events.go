package editor

import (
	"github.com/iw2rmb/mdflourish/buffer"
	"github.com/iw2rmb/mdflourish/format"
)

// ChangeEvent describes the document after a text change.
type ChangeEvent struct {
	Version   uint64
	Source    buffer.ChangeSource
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Formats active at the cursor or selection start.
	Formats format.Set

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Formats: b.ActiveFormats(),
		Text:    b.Text(),
	}
	if ch, ok := b.LastChange(); ok {
		ev.Source = ch.Source
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
