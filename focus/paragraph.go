package focus

// Span is a closed paragraph range [Start, End] in document offsets.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span has zero width.
func (s Span) Empty() bool { return s.End <= s.Start }

// Locate returns the paragraph around cursor.
//
// Walking up from the cursor line, the paragraph starts at the first line whose
// previous line is missing or blank. Walking down, it ends at the first line
// whose next line is missing or blank. The scan works per line, so the result
// does not depend on the cursor column.
//
// When the cursor line is itself blank the scan stops right away and the span
// is that line alone: zero width for an empty line, the whitespace run for a
// whitespace-only one.
func Locate(doc Document, cursor int) Span {
	if doc == nil {
		return Span{}
	}
	cursor = clampInt(cursor, 0, doc.Len())
	seed := doc.LineAt(cursor)
	if seed.Blank() {
		return Span{Start: seed.From, End: seed.To}
	}

	first := seed
	for first.From > 0 {
		prev := doc.LineAt(first.From - 1)
		if prev.Blank() || prev.Number >= first.Number {
			break
		}
		first = prev
	}

	last := seed
	for last.To < doc.Len() {
		next := doc.LineAt(last.To + 1)
		if next.Blank() || next.Number <= last.Number {
			break
		}
		last = next
	}

	return Span{Start: first.From, End: last.To}
}
