package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		mode  WrapMode
		width int
		want  [][2]int
	}{
		{name: "word", line: "hello world", mode: WrapWord, width: 8, want: [][2]int{{0, 6}, {6, 11}}},
		{name: "rune", line: "hello world", mode: WrapRune, width: 8, want: [][2]int{{0, 8}, {8, 11}}},
		{name: "none", line: "hello world", mode: WrapNone, width: 8, want: [][2]int{{0, 11}}},
		{name: "fits", line: "hello", mode: WrapWord, width: 8, want: [][2]int{{0, 5}}},
		{name: "empty", line: "", mode: WrapWord, width: 8, want: [][2]int{{0, 0}}},
		{name: "long word breaks mid-word", line: "abcdefghij", mode: WrapWord, width: 4, want: [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		{name: "wide runes", line: "日本語", mode: WrapRune, width: 4, want: [][2]int{{0, 2}, {2, 3}}},
		{name: "zero width disables wrapping", line: "hello world", mode: WrapWord, width: 0, want: [][2]int{{0, 11}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine([]rune(tt.line), tt.mode, tt.width, 4)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("wrapLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestRuneCells_TabsAdvanceToStop(t *testing.T) {
	if got := runeCells('\t', 0, 4); got != 4 {
		t.Fatalf("tab at 0: got %d, want 4", got)
	}
	if got := runeCells('\t', 1, 4); got != 3 {
		t.Fatalf("tab at 1: got %d, want 3", got)
	}
	if got := runeCells('x', 0, 4); got != 1 {
		t.Fatalf("ascii: got %d, want 1", got)
	}
	if got := runeCells('日', 0, 4); got != 2 {
		t.Fatalf("wide: got %d, want 2", got)
	}
}

func TestLayout_VisualRowFor(t *testing.T) {
	m := New(Config{Text: "hello world\nx"})
	m, _ = m.SetSize(8, 5)

	layout := m.ensureLayout()
	if got := len(layout.rows); got != 3 {
		t.Fatalf("visual rows: got %d, want 3", got)
	}
	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{0, 6, 1},
		{0, 11, 1},
		{1, 0, 2},
	}
	for _, c := range cases {
		if got := layout.visualRowFor(posOf(c.row, c.col)); got != c.want {
			t.Fatalf("visualRowFor(%d,%d): got %d, want %d", c.row, c.col, got, c.want)
		}
	}
}
