package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds document text, cursor and selection.
//
// Version moves on every effective change (text, cursor or selection);
// TextVersion moves only when the text changes.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	// line start offsets, rebuilt lazily per textVersion
	starts      []int
	startsValid bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string { return joinLines(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines (at least 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineText returns the text of row, or "" when row is out of range.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// SetText replaces the whole document. The cursor is clamped and the
// selection cleared. The replacement is undoable.
func (b *Buffer) SetText(text string) {
	if text == b.Text() {
		return
	}
	prev := b.snapshot()
	b.lines = splitLines(text)
	b.cursor = b.clampPos(b.cursor)
	b.sel = selectionState{}
	b.textChanged()
	b.recordUndo(prev)
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection as anchor (Start) and head (End),
// without normalizing the order.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r; the cursor moves to r.End. An empty r clears the
// selection.
func (b *Buffer) SetSelection(r Range) {
	anchor := b.clampPos(r.Start)
	end := b.clampPos(r.End)

	next := selectionState{active: true, anchor: anchor, end: end}
	if anchor == end {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == end {
		return
	}
	b.sel = next
	b.cursor = end
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) textChanged() {
	b.version++
	b.textVersion++
	b.startsValid = false
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

func joinLines(lines [][]rune) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}
