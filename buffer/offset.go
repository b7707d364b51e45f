package buffer

import "sort"

// Len returns the document length in runes, line breaks included.
func (b *Buffer) Len() int {
	starts := b.lineStarts()
	last := len(b.lines) - 1
	return starts[last] + len(b.lines[last])
}

// OffsetFromPos converts p (clamped into the document) to a rune offset.
func (b *Buffer) OffsetFromPos(p Pos) int {
	p = b.clampPos(p)
	return b.lineStarts()[p.Row] + p.Col
}

// PosFromOffset converts a rune offset (clamped to [0, Len()]) to a Pos.
// The offset of a line break maps to the end of its line.
func (b *Buffer) PosFromOffset(off int) Pos {
	row := b.rowAt(off)
	col := clampInt(off-b.lineStarts()[row], 0, len(b.lines[row]))
	return Pos{Row: row, Col: col}
}

// CursorOffset returns the cursor as a rune offset.
func (b *Buffer) CursorOffset() int { return b.OffsetFromPos(b.cursor) }

// LineAt returns the line containing off (clamped to [0, Len()]).
func (b *Buffer) LineAt(off int) Line {
	return b.Line(b.rowAt(off))
}

// Line returns row (clamped) with its offsets.
func (b *Buffer) Line(row int) Line {
	row = clampInt(row, 0, len(b.lines)-1)
	from := b.lineStarts()[row]
	return Line{
		Row:  row,
		From: from,
		To:   from + len(b.lines[row]),
		Text: string(b.lines[row]),
	}
}

func (b *Buffer) rowAt(off int) int {
	starts := b.lineStarts()
	off = clampInt(off, 0, b.Len())
	row := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	return clampInt(row, 0, len(b.lines)-1)
}

func (b *Buffer) lineStarts() []int {
	if b.startsValid && len(b.starts) == len(b.lines) {
		return b.starts
	}
	starts := b.starts[:0]
	off := 0
	for _, line := range b.lines {
		starts = append(starts, off)
		off += len(line) + 1
	}
	b.starts = starts
	b.startsValid = true
	return starts
}
