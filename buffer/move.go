package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveParagraph
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel
	next := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && prevSel == nextSel {
		return
	}
	b.cursor = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveParagraph:
		return b.moveParagraph(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveRune(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, Col: len(b.lines[row-1])}
		}
		return p
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: col + 1}
		}
		if row < lastRow {
			return Pos{Row: row + 1, Col: 0}
		}
		return p
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return b.moveRune(p, DirLeft)
		}
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		if p.Col == len(line) {
			return b.moveRune(p, DirRight)
		}
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	switch dir {
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return Pos{Row: 0, Col: 0}
		}
		return Pos{Row: row - 1, Col: minInt(col, len(b.lines[row-1]))}
	case DirDown:
		last := len(b.lines) - 1
		if row == last {
			return Pos{Row: last, Col: len(b.lines[last])}
		}
		return Pos{Row: row + 1, Col: minInt(col, len(b.lines[row+1]))}
	default:
		return p
	}
}

// moveParagraph jumps to the previous/next blank line, or the document edge.
func (b *Buffer) moveParagraph(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirUp, DirLeft:
		row := p.Row - 1
		for row > 0 && !blankRunes(b.lines[row]) {
			row--
		}
		if row < 0 {
			row = 0
		}
		return Pos{Row: row, Col: 0}
	case DirDown, DirRight:
		last := len(b.lines) - 1
		row := p.Row + 1
		for row < last && !blankRunes(b.lines[row]) {
			row++
		}
		if row >= last {
			return Pos{Row: last, Col: len(b.lines[last])}
		}
		return Pos{Row: row, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	last := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp, DirLeft:
		return Pos{}
	case DirEnd, DirDown, DirRight:
		return Pos{Row: last, Col: len(b.lines[last])}
	default:
		return p
	}
}

// Word boundaries: skip whitespace, then skip non-whitespace, within one line.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && unicode.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && unicode.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !unicode.IsSpace(line[i]) {
		i++
	}
	return i
}

func blankRunes(line []rune) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
