package focus

import (
	"sort"
	"strings"
)

// Line is one logical document line.
//
// From and To are rune offsets; To is the offset just before the line break
// (or the document end), so an empty line has From == To.
type Line struct {
	Number int // 1-based
	From   int
	To     int
	Text   string
}

// Blank reports whether the line is empty after trimming whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Document is the read access Locate needs from a host document.
type Document interface {
	// LineAt returns the line containing offset. Offsets are clamped to
	// [0, Len()].
	LineAt(offset int) Line
	// Len returns the document length in runes.
	Len() int
}

// TextDocument is an immutable Document over a plain string.
type TextDocument struct {
	lines  []string
	starts []int
	length int
}

// NewTextDocument splits text on '\n' into a Document.
func NewTextDocument(text string) *TextDocument {
	parts := strings.Split(text, "\n")
	d := &TextDocument{
		lines:  parts,
		starts: make([]int, len(parts)),
	}
	off := 0
	for i, p := range parts {
		d.starts[i] = off
		off += len([]rune(p))
		if i < len(parts)-1 {
			off++
		}
	}
	d.length = off
	return d
}

func (d *TextDocument) Len() int { return d.length }

func (d *TextDocument) LineAt(offset int) Line {
	offset = clampInt(offset, 0, d.length)
	// Last line whose start is <= offset.
	i := sort.Search(len(d.starts), func(i int) bool { return d.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	from := d.starts[i]
	return Line{
		Number: i + 1,
		From:   from,
		To:     from + len([]rune(d.lines[i])),
		Text:   d.lines[i],
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
