package editor

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/focusmode/buffer"
)

// visualRow is one rendered row: runes [startCol, endCol) of a logical row.
type visualRow struct {
	row      int
	startCol int
	endCol   int
	first    bool // first visual row of its logical row
}

type layoutKey struct {
	textVersion uint64
	width       int
	wrap        WrapMode
	tabWidth    int
}

type layoutCache struct {
	valid bool
	key   layoutKey
	rows  []visualRow
	// firstRow[r] is the index in rows of logical row r's first segment.
	firstRow []int
}

func (m *Model) ensureLayout() *layoutCache {
	key := layoutKey{
		textVersion: m.buf.TextVersion(),
		width:       m.contentWidth(),
		wrap:        m.cfg.WrapMode,
		tabWidth:    m.tabWidth(),
	}
	if m.layout.valid && m.layout.key == key {
		return &m.layout
	}

	n := m.buf.LineCount()
	rows := make([]visualRow, 0, n)
	first := make([]int, n)
	for r := 0; r < n; r++ {
		first[r] = len(rows)
		line := []rune(m.buf.LineText(r))
		for i, seg := range wrapLine(line, key.wrap, key.width, key.tabWidth) {
			rows = append(rows, visualRow{row: r, startCol: seg[0], endCol: seg[1], first: i == 0})
		}
	}
	m.layout = layoutCache{valid: true, key: key, rows: rows, firstRow: first}
	return &m.layout
}

// visualRowFor returns the index of the visual row that holds p.
func (l *layoutCache) visualRowFor(p buffer.Pos) int {
	if len(l.rows) == 0 {
		return 0
	}
	if p.Row < 0 || p.Row >= len(l.firstRow) {
		return 0
	}
	i := l.firstRow[p.Row]
	for i+1 < len(l.rows) && l.rows[i+1].row == p.Row && l.rows[i+1].startCol <= p.Col {
		i++
	}
	return i
}

// wrapLine splits line into [start, end) rune column segments that fit in
// width cells. It always returns at least one segment.
func wrapLine(line []rune, mode WrapMode, width, tabWidth int) [][2]int {
	if mode == WrapNone || width <= 0 || len(line) == 0 {
		return [][2]int{{0, len(line)}}
	}

	var segs [][2]int
	for start := 0; start < len(line); {
		used := 0
		end := start
		for end < len(line) {
			w := maxInt(runeCells(line[end], used, tabWidth), 1)
			if used > 0 && used+w > width {
				break
			}
			used += w
			end++
		}

		if mode == WrapWord && end < len(line) {
			if br := lastWordBreak(line, start, end); br > start {
				end = br
			}
		}
		segs = append(segs, [2]int{start, end})
		start = end
	}
	return segs
}

// lastWordBreak returns the column after the last whitespace run in
// [start, end), or start when there is none.
func lastWordBreak(line []rune, start, end int) int {
	br := start
	for i := start; i < end; {
		if !unicode.IsSpace(line[i]) {
			i++
			continue
		}
		j := i + 1
		for j < end && unicode.IsSpace(line[j]) {
			j++
		}
		br = j
		i = j
	}
	return br
}

// runeCells is the terminal cell width of r drawn at cell offset at.
func runeCells(r rune, at, tabWidth int) int {
	if r == '\t' {
		return tabAdvance(at, tabWidth)
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = uniseg.StringWidth(string(r))
	}
	if w < 0 {
		w = 0
	}
	return w
}

func tabAdvance(at, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - at%tabWidth
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
