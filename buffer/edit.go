package buffer

import "strings"

// InsertText inserts s at the cursor, replacing the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1, Col: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		line := b.lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(line[from:to]))
		if row < r.End.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}

// edit replaces r with text, records history and moves the cursor to the end
// of the inserted text. No-op edits leave versions untouched.
func (b *Buffer) edit(r Range, text string) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		if b.sel.active {
			b.ClearSelection()
		}
		return
	}
	if b.TextInRange(r) == text {
		return
	}

	prev := b.snapshot()

	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]
	parts := strings.Split(text, "\n")

	repl := make([][]rune, 0, len(parts))
	for i, p := range parts {
		var line []rune
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, []rune(p)...)
		repl = append(repl, line)
	}
	last := len(repl) - 1
	cursor := Pos{Row: r.Start.Row + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)

	b.lines = out
	b.cursor = cursor
	b.sel = selectionState{}
	b.textChanged()
	b.recordUndo(prev)
}
