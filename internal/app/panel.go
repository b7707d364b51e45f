package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/focusmode/focus"
)

type panelField int

const (
	fieldEnabled panelField = iota
	fieldOpacity
	fieldSpeed
	fieldColor
	fieldPresets
	fieldCount
)

const sliderCells = 20

// panel is the settings panel. It edits the application's settings in
// place and reports whether they changed.
type panel struct {
	keys   panelKeyMap
	field  panelField
	preset int
	color  textinput.Model
	styles panelStyles
}

type panelStyles struct {
	Box      lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Hint     lipgloss.Style
}

func defaultPanelStyles() panelStyles {
	return panelStyles{
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Width(22),
		Selected: lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("212")).Bold(true),
		Value:    lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func newPanel(s focus.Settings) panel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 7
	ti.Width = 8
	ti.Placeholder = focus.DefaultSettings().DimColor
	ti.SetValue(s.DimColor)

	return panel{
		keys:   defaultPanelKeyMap(),
		color:  ti,
		styles: defaultPanelStyles(),
	}
}

// sync refreshes the color field after settings changed elsewhere.
func (p panel) sync(s focus.Settings) panel {
	if p.field != fieldColor || !focus.ValidColor(p.color.Value()) {
		p.color.SetValue(s.DimColor)
	}
	return p
}

func (p panel) focusField(f panelField, s focus.Settings) panel {
	f = (f + fieldCount) % fieldCount
	if p.field == fieldColor && f != fieldColor {
		p.color.Blur()
		p.color.SetValue(s.DimColor)
	}
	if f == fieldColor {
		p.color.CursorEnd()
		p.color.Focus()
	}
	p.field = f
	return p
}

// update applies msg to the panel and to s. changed reports whether s was
// mutated.
func (p panel) update(msg tea.KeyMsg, s *focus.Settings) (next panel, changed bool, cmd tea.Cmd) {
	before := *s

	switch {
	case key.Matches(msg, p.keys.Next):
		return p.focusField(p.field+1, *s), false, nil
	case key.Matches(msg, p.keys.Prev):
		return p.focusField(p.field-1, *s), false, nil
	}

	switch p.field {
	case fieldEnabled:
		if key.Matches(msg, p.keys.Apply, p.keys.Increase, p.keys.Decrease) {
			s.Enabled = !s.Enabled
		}

	case fieldOpacity:
		switch {
		case key.Matches(msg, p.keys.Increase):
			s.SetDimOpacity(s.DimOpacity + focus.OpacityStep)
		case key.Matches(msg, p.keys.Decrease):
			s.SetDimOpacity(s.DimOpacity - focus.OpacityStep)
		}

	case fieldSpeed:
		switch {
		case key.Matches(msg, p.keys.Increase):
			s.SetFadeSpeed(s.FadeSpeed + focus.FadeSpeedStep)
		case key.Matches(msg, p.keys.Decrease):
			s.SetFadeSpeed(s.FadeSpeed - focus.FadeSpeedStep)
		}

	case fieldColor:
		if msg.Type == tea.KeyEnter {
			if !s.SetDimColor(strings.TrimSpace(p.color.Value())) {
				p.color.SetValue(s.DimColor)
			}
			break
		}
		p.color, cmd = p.color.Update(msg)
		// Applied as soon as the text is a valid color; anything else is
		// ignored until it becomes one.
		s.SetDimColor(strings.TrimSpace(p.color.Value()))

	case fieldPresets:
		presets := focus.Presets()
		switch {
		case key.Matches(msg, p.keys.Increase):
			p.preset = (p.preset + 1) % len(presets)
		case key.Matches(msg, p.keys.Decrease):
			p.preset = (p.preset - 1 + len(presets)) % len(presets)
		case key.Matches(msg, p.keys.Apply):
			s.SetDimColor(presets[p.preset].Color)
			p.color.SetValue(s.DimColor)
		}
	}

	return p, *s != before, cmd
}

func (p panel) view(s focus.Settings) string {
	st := p.styles
	label := func(f panelField, text string) string {
		if f == p.field {
			return st.Selected.Render("› " + text)
		}
		return st.Label.Render("  " + text)
	}

	enabled := "[ ]"
	if s.Enabled {
		enabled = "[x]"
	}

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(s.DimColor)).Render("   ")

	var presets []string
	for i, pr := range focus.Presets() {
		name := pr.Name
		if pr.Color == s.DimColor {
			name = "●" + name
		}
		if i == p.preset && p.field == fieldPresets {
			name = "[" + name + "]"
		} else {
			name = " " + name + " "
		}
		presets = append(presets, name)
	}

	rows := []string{
		st.Title.Render("Focus Mode Settings"),
		"",
		label(fieldEnabled, "Enable focus mode") + st.Value.Render(enabled),
		label(fieldOpacity, "Dim opacity") + st.Value.Render(fmt.Sprintf("%s %3d%%", slider(s.DimOpacity, focus.MaxOpacity), s.DimOpacity)),
		label(fieldSpeed, "Fade speed") + st.Value.Render(fmt.Sprintf("%s %4dms", slider(s.FadeSpeed, focus.MaxFadeSpeed), s.FadeSpeed)),
		label(fieldColor, "Dim color") + p.color.View() + " " + swatch,
		label(fieldPresets, "Presets") + st.Value.Render(strings.Join(presets, "")),
		"",
		st.Hint.Render("↑/↓ select · ←/→ adjust · enter apply · esc close"),
	}
	return st.Box.Render(strings.Join(rows, "\n"))
}

func slider(v, max int) string {
	filled := 0
	if max > 0 {
		filled = v * sliderCells / max
	}
	filled = clampInt(filled, 0, sliderCells)
	return strings.Repeat("█", filled) + strings.Repeat("░", sliderCells-filled)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
