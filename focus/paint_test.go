package focus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ranges(decs []Decoration) []Range {
	if len(decs) == 0 {
		return nil
	}
	out := make([]Range, 0, len(decs))
	for _, d := range decs {
		out = append(out, d.Range)
	}
	return out
}

func TestPaint_DimsBeforeAndAfterParagraph(t *testing.T) {
	st := DefaultSettings().DimStyle()
	got := Paint(Span{Start: 40, End: 60}, 100, []Range{{From: 0, To: 100}}, st)

	want := []Range{{From: 0, To: 40}, {From: 60, To: 100}}
	if diff := cmp.Diff(want, ranges(got)); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
	for i, d := range got {
		if d.Style != st {
			t.Fatalf("decoration %d style: got %+v, want %+v", i, d.Style, st)
		}
	}
}

func TestPaint_ClipsToVisibleRanges(t *testing.T) {
	st := DefaultSettings().DimStyle()
	cases := []struct {
		name    string
		span    Span
		docLen  int
		visible []Range
		want    []Range
	}{
		{
			name:    "paragraph covers whole window",
			span:    Span{Start: 10, End: 90},
			docLen:  200,
			visible: []Range{{From: 20, To: 80}},
			want:    nil,
		},
		{
			name:    "paragraph at document start",
			span:    Span{Start: 0, End: 5},
			docLen:  20,
			visible: []Range{{From: 0, To: 20}},
			want:    []Range{{From: 5, To: 20}},
		},
		{
			name:    "paragraph at document end",
			span:    Span{Start: 12, End: 20},
			docLen:  20,
			visible: []Range{{From: 0, To: 20}},
			want:    []Range{{From: 0, To: 12}},
		},
		{
			name:    "window entirely above paragraph",
			span:    Span{Start: 50, End: 60},
			docLen:  100,
			visible: []Range{{From: 0, To: 30}},
			want:    []Range{{From: 0, To: 30}},
		},
		{
			name:    "multiple windows, merged and sorted",
			span:    Span{Start: 40, End: 60},
			docLen:  100,
			visible: []Range{{From: 70, To: 90}, {From: 10, To: 30}, {From: 25, To: 45}},
			want:    []Range{{From: 10, To: 40}, {From: 70, To: 90}},
		},
		{
			name:    "empty and out-of-document windows dropped",
			span:    Span{Start: 4, End: 6},
			docLen:  10,
			visible: []Range{{From: 3, To: 3}, {From: 8, To: 50}, {From: -10, To: -1}},
			want:    []Range{{From: 8, To: 10}},
		},
		{
			name:    "no visible ranges",
			span:    Span{Start: 4, End: 6},
			docLen:  10,
			visible: nil,
			want:    nil,
		},
	}

	for _, tc := range cases {
		got := ranges(Paint(tc.span, tc.docLen, tc.visible, st))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: ranges mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestBuild_DisabledProducesNothing(t *testing.T) {
	doc := NewTextDocument("a\n\nb\n\nc")
	s := DefaultSettings()
	s.Enabled = false
	if got := Build(doc, 3, []Range{{From: 0, To: doc.Len()}}, s); got != nil {
		t.Fatalf("disabled build: got %v, want nil", got)
	}
}

func TestBuild_EnabledDimsOtherParagraphs(t *testing.T) {
	doc := NewTextDocument("a\n\nb\n\nc")
	s := DefaultSettings()
	s.Enabled = true

	got := ranges(Build(doc, 3, []Range{{From: 0, To: doc.Len()}}, s))
	want := []Range{{From: 0, To: 3}, {From: 4, To: 7}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranges mismatch (-want +got):\n%s", diff)
	}
}
