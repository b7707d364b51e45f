package editor

import "github.com/iw2rmb/focusmode/focus"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopVisualRow is the visual row index rendered at viewport screen row 0.
	TopVisualRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// LeftCellOffset is the horizontal cell offset in WrapNone mode.
	LeftCellOffset int
	// Width is the content width in cells, gutter excluded.
	Width    int
	WrapMode WrapMode
}

func (m Model) ViewportState() ViewportState {
	left := 0
	if m.cfg.WrapMode == WrapNone {
		left = maxInt(m.xOffset, 0)
	}
	return ViewportState{
		TopVisualRow:   maxInt(m.top, 0),
		VisibleRows:    m.visibleRowCount(),
		LeftCellOffset: left,
		Width:          m.contentWidth(),
		WrapMode:       m.cfg.WrapMode,
	}
}

// VisibleRanges returns the document offsets currently rendered, as one
// contiguous range from the first to the last visible visual row.
func (m Model) VisibleRanges() []focus.Range {
	return (&m).visibleRanges()
}

func (m *Model) visibleRanges() []focus.Range {
	if m.buf == nil {
		return nil
	}
	h := m.visibleRowCount()
	layout := m.ensureLayout()
	if h <= 0 || len(layout.rows) == 0 {
		return nil
	}
	first := clampInt(m.top, 0, len(layout.rows)-1)
	last := clampInt(first+h-1, first, len(layout.rows)-1)

	top, bottom := layout.rows[first], layout.rows[last]
	from := m.buf.Line(top.row).From + top.startCol
	to := m.buf.Line(bottom.row).From + bottom.endCol
	return []focus.Range{{From: from, To: to}}
}

func (m Model) visibleRowCount() int {
	return maxInt(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth()
	return maxInt(w, 0)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func gutterDigits(lines int) int {
	d := 1
	for lines >= 10 {
		lines /= 10
		d++
	}
	return d
}
