package focus

import "sort"

// Range is a half-open offset range [From, To).
type Range struct {
	From int
	To   int
}

// Empty reports whether r covers no offsets.
func (r Range) Empty() bool { return r.To <= r.From }

// Decoration marks [From, To) as dimmed with Style.
type Decoration struct {
	Range
	Style DimStyle
}

// Paint returns dim decorations for the visible text outside span.
//
// Every visible range is clipped to the part before span.Start and the part
// after span.End. Degenerate pieces are dropped, so a paragraph that covers
// the whole visible window yields no decorations. The result is sorted by
// offset and never overlaps.
func Paint(span Span, docLen int, visible []Range, st DimStyle) []Decoration {
	vis := mergeRanges(visible, docLen)
	if len(vis) == 0 {
		return nil
	}

	var out []Decoration
	if span.Start > 0 {
		for _, r := range vis {
			from := maxInt(r.From, 0)
			to := minInt(r.To, span.Start)
			if to > from {
				out = append(out, Decoration{Range: Range{From: from, To: to}, Style: st})
			}
		}
	}
	if span.End < docLen {
		for _, r := range vis {
			from := maxInt(r.From, span.End)
			to := minInt(r.To, docLen)
			if to > from {
				out = append(out, Decoration{Range: Range{From: from, To: to}, Style: st})
			}
		}
	}
	return out
}

// Build locates the paragraph around cursor and paints the visible text
// outside it. It returns nil when focus mode is disabled.
func Build(doc Document, cursor int, visible []Range, s Settings) []Decoration {
	if !s.Enabled || doc == nil {
		return nil
	}
	span := Locate(doc, cursor)
	return Paint(span, doc.Len(), visible, s.DimStyle())
}

// mergeRanges clamps ranges to [0, docLen], drops empty ones and merges
// overlapping or touching neighbours.
func mergeRanges(in []Range, docLen int) []Range {
	if len(in) == 0 {
		return nil
	}
	rs := make([]Range, 0, len(in))
	for _, r := range in {
		from := clampInt(r.From, 0, docLen)
		to := clampInt(r.To, 0, docLen)
		if to <= from {
			continue
		}
		rs = append(rs, Range{From: from, To: to})
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].From != rs[j].From {
			return rs[i].From < rs[j].From
		}
		return rs[i].To < rs[j].To
	})

	merged := make([]Range, 0, len(rs))
	for _, r := range rs {
		if n := len(merged); n > 0 && r.From <= merged[n-1].To {
			merged[n-1].To = maxInt(merged[n-1].To, r.To)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
