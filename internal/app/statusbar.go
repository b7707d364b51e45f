package app

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
	"github.com/iw2rmb/focusmode/internal/grapheme"
)

// StatusLabel is the status bar text for a focus state.
func StatusLabel(st focus.State) string {
	if st == focus.Enabled {
		return "Focus Mode: ON"
	}
	return "Focus Mode: OFF"
}

type statusStyles struct {
	Bar   lipgloss.Style
	On    lipgloss.Style
	Off   lipgloss.Style
	File  lipgloss.Style
	Msg   lipgloss.Style
	Error lipgloss.Style
	Pos   lipgloss.Style
}

func defaultStatusStyles() statusStyles {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252"))
	return statusStyles{
		Bar:   bar,
		On:    bar.Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true).Padding(0, 1),
		Off:   bar.Foreground(lipgloss.Color("245")).Padding(0, 1),
		File:  bar.Padding(0, 1),
		Msg:   bar.Foreground(lipgloss.Color("114")).Padding(0, 1),
		Error: bar.Foreground(lipgloss.Color("203")).Padding(0, 1),
		Pos:   bar.Foreground(lipgloss.Color("245")).Padding(0, 1),
	}
}

// statusLine is one transient status bar message.
type statusLine struct {
	id    int
	text  string
	isErr bool
}

type statusBar struct {
	styles statusStyles
	msg    statusLine
}

func (b statusBar) labelWidth(st focus.State) int {
	return lipgloss.Width(b.label(st))
}

func (b statusBar) label(st focus.State) string {
	if st == focus.Enabled {
		return b.styles.On.Render(StatusLabel(st))
	}
	return b.styles.Off.Render(StatusLabel(st))
}

// view renders the bar. line is the cursor line; the column is counted in
// grapheme clusters.
func (b statusBar) view(width int, st focus.State, path string, modified bool, cur buffer.Pos, line string) string {
	left := b.label(st)

	name := "[scratch]"
	if path != "" {
		name = filepath.Base(path)
	}
	if modified {
		name += " [+]"
	}
	mid := b.styles.File.Render(name)
	if b.msg.text != "" {
		if b.msg.isErr {
			mid = b.styles.Error.Render(b.msg.text)
		} else {
			mid = b.styles.Msg.Render(b.msg.text)
		}
	}

	right := b.styles.Pos.Render(fmt.Sprintf("Ln %d, Col %d", cur.Row+1, grapheme.Column(line, cur.Col)+1))

	gap := width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	fill := b.styles.Bar.Render(fmt.Sprintf("%*s", gap, ""))
	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, mid, fill, right)
	if width > 0 {
		bar = lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}
