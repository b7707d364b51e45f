package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/focusmode/buffer"
)

const defaultInk = "#d0d0d0"

type runKind int

const (
	runText runKind = iota
	runSelection
	runCursor
	runDim
)

// runStyle identifies a stretch of runes drawn with one lipgloss style.
type runStyle struct {
	kind  runKind
	color string // runDim only
}

// renderContent renders one line per visual row. Rows outside the viewport
// are left empty; the viewport never shows them.
func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	layout := m.ensureLayout()
	h := m.visibleRowCount()
	if len(layout.rows) == 0 {
		return ""
	}

	ink := m.inkColor()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(m.buf.LineCount())
	}

	start := clampInt(m.top, 0, len(layout.rows))
	end := len(layout.rows)
	if h > 0 {
		end = minInt(start+h, len(layout.rows))
	}

	out := make([]string, len(layout.rows))
	for i := start; i < end; i++ {
		vr := layout.rows[i]
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(vr, digits, cursor))
		}
		sb.WriteString(m.renderRow(vr, cursor, sel, selOK, ink))
		out[i] = sb.String()
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderGutter(vr visualRow, digits int, cursor buffer.Pos) string {
	if !vr.first {
		return m.cfg.Style.Gutter.Render(strings.Repeat(" ", digits+1))
	}
	st := m.cfg.Style.LineNum
	if m.focused && vr.row == cursor.Row {
		st = m.cfg.Style.LineNumActive
	}
	return st.Render(fmt.Sprintf("%*d ", digits, vr.row+1))
}

func (m *Model) renderRow(vr visualRow, cursor buffer.Pos, sel buffer.Range, selOK bool, ink colorful.Color) string {
	line := []rune(m.buf.LineText(vr.row))
	rowFrom := m.buf.Line(vr.row).From
	tw := m.tabWidth()

	left, right := 0, -1
	if m.cfg.WrapMode == WrapNone {
		left = maxInt(m.xOffset, 0)
		if w := m.contentWidth(); w > 0 {
			right = left + w
		}
	}

	var (
		sb    strings.Builder
		run   strings.Builder
		cur   runStyle
		open  bool
		cells int
	)
	flush := func() {
		if open && run.Len() > 0 {
			sb.WriteString(m.styleFor(cur).Render(run.String()))
		}
		run.Reset()
		open = false
	}
	emit := func(st runStyle, s string) {
		if open && st != cur {
			flush()
		}
		cur, open = st, true
		run.WriteString(s)
	}

	for col := vr.startCol; col < vr.endCol; col++ {
		r := line[col]
		w := runeCells(r, cells, tw)
		x := cells
		cells += w
		if right >= 0 && x >= right {
			break
		}
		if x+w <= left {
			continue
		}

		text := string(r)
		if r == '\t' || x < left || (right >= 0 && x+w > right) {
			// Tabs and clipped wide runes are drawn as blanks.
			vis := minInt(x+w, rightOr(right, x+w)) - maxInt(x, left)
			text = strings.Repeat(" ", maxInt(vis, 0))
		}
		if text == "" {
			continue
		}

		pos := buffer.Pos{Row: vr.row, Col: col}
		emit(m.classify(pos, rowFrom+col, cursor, sel, selOK, ink), text)
	}

	atLineEnd := vr.endCol == len(line)
	if m.focused && cursor.Row == vr.row && cursor.Col == vr.endCol && atLineEnd &&
		(right < 0 || cells < right) {
		emit(runStyle{kind: runCursor}, " ")
	}
	flush()
	return sb.String()
}

func rightOr(right, fallback int) int {
	if right < 0 {
		return fallback
	}
	return right
}

func (m *Model) classify(p buffer.Pos, off int, cursor buffer.Pos, sel buffer.Range, selOK bool, ink colorful.Color) runStyle {
	if m.focused && p == cursor {
		return runStyle{kind: runCursor}
	}
	if selOK && buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0 {
		return runStyle{kind: runSelection}
	}
	if st, ok := m.dimAt(off, m.decorations); ok && st.Alpha > 0 {
		return runStyle{kind: runDim, color: st.Over(ink).Hex()}
	}
	return runStyle{kind: runText}
}

func (m *Model) styleFor(st runStyle) lipgloss.Style {
	switch st.kind {
	case runCursor:
		return m.cfg.Style.Cursor
	case runSelection:
		return m.cfg.Style.Selection
	case runDim:
		return m.cfg.Style.Text.Foreground(lipgloss.Color(st.color))
	default:
		return m.cfg.Style.Text
	}
}

func (m *Model) inkColor() colorful.Color {
	if c, err := colorful.Hex(m.cfg.Style.Ink); err == nil {
		return c
	}
	c, _ := colorful.Hex(defaultInk)
	return c
}
