package buffer

import "testing"

func TestBuffer_RuneLen(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"ab\ncd", 5},
		{"e\u0301", 2},
		{"\n", 1},
	}
	for _, tt := range tests {
		if got := New(tt.text, Options{}).RuneLen(); got != tt.want {
			t.Fatalf("RuneLen(%q)=%d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestBuffer_PosFromRuneOffset(t *testing.T) {
	b := New("ab\ncd", Options{})

	tests := []struct {
		off  int
		want Pos
	}{
		{0, Pos{}},
		{2, Pos{GraphemeCol: 2}},
		{3, Pos{Row: 1}},
		{5, Pos{Row: 1, GraphemeCol: 2}},
	}
	for _, tt := range tests {
		got, ok := b.PosFromRuneOffset(tt.off, OffsetError)
		if !ok || got != tt.want {
			t.Fatalf("PosFromRuneOffset(%d)=%v,%v, want %v", tt.off, got, ok, tt.want)
		}
		back, ok := b.RuneOffsetFromPos(got, OffsetError)
		if !ok || back != tt.off {
			t.Fatalf("RuneOffsetFromPos(%v)=%d,%v, want %d", got, back, ok, tt.off)
		}
	}
}

func TestBuffer_PosFromRuneOffset_OutOfRange(t *testing.T) {
	b := New("ab", Options{})

	if _, ok := b.PosFromRuneOffset(-1, OffsetError); ok {
		t.Fatalf("expected error mode to reject -1")
	}
	if _, ok := b.PosFromRuneOffset(3, OffsetError); ok {
		t.Fatalf("expected error mode to reject 3")
	}
	if got, ok := b.PosFromRuneOffset(99, OffsetClamp); !ok || got != (Pos{GraphemeCol: 2}) {
		t.Fatalf("clamp(99)=%v,%v", got, ok)
	}
	if got, ok := b.PosFromRuneOffset(-5, OffsetClamp); !ok || got != (Pos{}) {
		t.Fatalf("clamp(-5)=%v,%v", got, ok)
	}
}

func TestBuffer_PosFromRuneOffset_MidCluster(t *testing.T) {
	// "e" + combining acute is one grapheme of two runes.
	b := New("xe\u0301y", Options{})

	if _, ok := b.PosFromRuneOffset(2, OffsetError); ok {
		t.Fatalf("expected error mode to reject a mid-cluster offset")
	}
	got, ok := b.PosFromRuneOffset(2, OffsetClamp)
	if !ok || got != (Pos{GraphemeCol: 1}) {
		t.Fatalf("clamp mid-cluster=%v,%v, want col 1", got, ok)
	}
	got, ok = b.PosFromRuneOffset(3, OffsetError)
	if !ok || got != (Pos{GraphemeCol: 2}) {
		t.Fatalf("after cluster=%v,%v, want col 2", got, ok)
	}
}

func TestBuffer_RuneOffsetFromPos_Clamp(t *testing.T) {
	b := New("ab\ncd", Options{})

	if _, ok := b.RuneOffsetFromPos(Pos{Row: 5}, OffsetError); ok {
		t.Fatalf("expected error mode to reject row 5")
	}
	got, ok := b.RuneOffsetFromPos(Pos{Row: 0, GraphemeCol: 10}, OffsetClamp)
	if !ok || got != 2 {
		t.Fatalf("clamp=%d,%v, want 2", got, ok)
	}
}
