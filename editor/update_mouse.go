package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/focusmode/buffer"
)

const wheelCells = 4

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Action == tea.MouseActionPress {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			m.viewport, cmd = m.viewport.Update(msg)
			m.top = m.viewport.YOffset
			return m, cmd
		case tea.MouseButtonWheelLeft:
			if m.cfg.WrapMode == WrapNone {
				m.xOffset = maxInt(m.xOffset-wheelCells, 0)
			}
			return m, nil
		case tea.MouseButtonWheelRight:
			if m.cfg.WrapMode == WrapNone {
				m.xOffset += wheelCells
			}
			return m, nil
		}
	}

	if !m.focused || m.buf == nil {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if r, ok := m.buf.SelectionRaw(); ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
			if anchor == p {
				m.buf.SetCursor(p)
			}
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p := m.screenToDocPos(x, y)
		if p == m.mouseAnchor {
			m.buf.SetCursor(p)
		} else {
			m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})
		}

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}

// screenToDocPos maps a viewport cell to the nearest document position.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	layout := m.ensureLayout()
	if len(layout.rows) == 0 {
		return buffer.Pos{}
	}
	vr := layout.rows[clampInt(m.top+y, 0, len(layout.rows)-1)]
	line := []rune(m.buf.LineText(vr.row))

	target := x - m.gutterWidth()
	if m.cfg.WrapMode == WrapNone {
		target += maxInt(m.xOffset, 0)
	}
	if target < 0 {
		return buffer.Pos{Row: vr.row, Col: vr.startCol}
	}

	cells := 0
	for col := vr.startCol; col < vr.endCol; col++ {
		w := runeCells(line[col], cells, m.tabWidth())
		if target < cells+w {
			return buffer.Pos{Row: vr.row, Col: col}
		}
		cells += w
	}
	end := vr.endCol
	if end < len(line) && end > vr.startCol {
		// A wrapped segment's end column belongs to the next visual row.
		end--
	}
	return buffer.Pos{Row: vr.row, Col: end}
}
