// Package buffer implements the document model behind the markdown editor.
//
// Coordinates are 0-based (Row, GraphemeCol): a row is a logical line and a
// column counts grapheme clusters within it. Ranges are half-open selections
// in document coordinates: [Start, End).
//
// The formatting engine works on rune offsets into the whole text; the
// conversion helpers in this package translate between the two, and
// ActiveFormats/ApplyFormat run the engine against the buffer's own cursor
// and selection.
package buffer
