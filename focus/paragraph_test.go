package focus

import (
	"strings"
	"testing"
)

func TestLocate_ThreeParagraphsIndependentOfColumn(t *testing.T) {
	paras := []string{
		"first line one\nfirst line two",
		"second only",
		"third a\nthird b\nthird c",
	}
	text := strings.Join(paras, "\n\n")
	doc := NewTextDocument(text)

	off := 0
	for k, p := range paras {
		want := Span{Start: off, End: off + len([]rune(p))}
		for cur := want.Start; cur <= want.End; cur++ {
			if got := Locate(doc, cur); got != want {
				t.Fatalf("paragraph %d, cursor %d: got %+v, want %+v", k, cur, got, want)
			}
		}
		off = want.End + 2
	}
}

func TestLocate_NoBlankLinesCoversDocument(t *testing.T) {
	doc := NewTextDocument("alpha\nbeta\ngamma")
	want := Span{Start: 0, End: doc.Len()}
	for cur := 0; cur <= doc.Len(); cur++ {
		if got := Locate(doc, cur); got != want {
			t.Fatalf("cursor %d: got %+v, want %+v", cur, got, want)
		}
	}
}

func TestLocate_SingleLineAndIsolatedLine(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		want   Span
	}{
		{name: "single line", text: "hello", cursor: 2, want: Span{Start: 0, End: 5}},
		{name: "isolated middle line", text: "a\n\nmid\n\nz", cursor: 4, want: Span{Start: 3, End: 6}},
		{name: "whitespace-only neighbours are blank", text: "a\n  \nmid\n\t\nz", cursor: 6, want: Span{Start: 5, End: 8}},
		{name: "cursor clamped past end", text: "ab\n\ncd", cursor: 99, want: Span{Start: 4, End: 6}},
		{name: "cursor clamped before start", text: "ab\n\ncd", cursor: -5, want: Span{Start: 0, End: 2}},
	}

	for _, tc := range cases {
		got := Locate(NewTextDocument(tc.text), tc.cursor)
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

// A cursor on a blank line seeds the scan from that line and does not grow
// into the neighbouring paragraphs.
func TestLocate_CursorOnBlankLine(t *testing.T) {
	doc := NewTextDocument("abc\n\ndef\n   \nghi")

	if got, want := Locate(doc, 4), (Span{Start: 4, End: 4}); got != want {
		t.Fatalf("empty line: got %+v, want %+v", got, want)
	}
	if !Locate(doc, 4).Empty() {
		t.Fatalf("empty line span must be empty")
	}

	if got, want := Locate(doc, 10), (Span{Start: 9, End: 12}); got != want {
		t.Fatalf("whitespace line: got %+v, want %+v", got, want)
	}
}

func TestLocate_EmptyDocument(t *testing.T) {
	if got := Locate(NewTextDocument(""), 0); got != (Span{}) {
		t.Fatalf("empty doc: got %+v, want zero span", got)
	}
	if got := Locate(nil, 3); got != (Span{}) {
		t.Fatalf("nil doc: got %+v, want zero span", got)
	}
}

func TestTextDocument_LineAt(t *testing.T) {
	doc := NewTextDocument("ab\n\nçd")
	if got, want := doc.Len(), 6; got != want {
		t.Fatalf("len: got %d, want %d", got, want)
	}

	cases := []struct {
		off  int
		want Line
	}{
		{off: 0, want: Line{Number: 1, From: 0, To: 2, Text: "ab"}},
		{off: 2, want: Line{Number: 1, From: 0, To: 2, Text: "ab"}},
		{off: 3, want: Line{Number: 2, From: 3, To: 3, Text: ""}},
		{off: 4, want: Line{Number: 3, From: 4, To: 6, Text: "çd"}},
		{off: 6, want: Line{Number: 3, From: 4, To: 6, Text: "çd"}},
		{off: 42, want: Line{Number: 3, From: 4, To: 6, Text: "çd"}},
	}
	for _, tc := range cases {
		if got := doc.LineAt(tc.off); got != tc.want {
			t.Fatalf("LineAt(%d): got %+v, want %+v", tc.off, got, tc.want)
		}
	}
}
