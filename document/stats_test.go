package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	assert.Equal(t, Stats{Words: 0, Chars: 0, Lines: 1}, Count(""))
	assert.Equal(t, Stats{Words: 0, Chars: 3, Lines: 1}, Count("   "))
	assert.Equal(t, Stats{Words: 3, Chars: 13, Lines: 2}, Count("one two\nthree"))
	assert.Equal(t, Stats{Words: 1, Chars: 2, Lines: 1}, Count("h\u00e9"))
}

func TestCursorAt(t *testing.T) {
	text := "one\ntwo\nthree"
	tests := []struct {
		name       string
		start, end int
		want       Cursor
	}{
		{"start", 0, 0, Cursor{Line: 1, Col: 1}},
		{"end of first line", 3, 3, Cursor{Line: 1, Col: 4}},
		{"second line", 5, 5, Cursor{Line: 2, Col: 2}},
		{"selection", 4, 7, Cursor{Line: 2, Col: 1, Selected: 3}},
		{"reversed", 7, 4, Cursor{Line: 2, Col: 1, Selected: 3}},
		{"clamped", -5, 99, Cursor{Line: 1, Col: 1, Selected: 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CursorAt(text, tt.start, tt.end))
		})
	}
}
