package app

import (
	"strings"
	"testing"

	"github.com/iw2rmb/focusmode/focus"
)

func typeInto(t *testing.T, p panel, s *focus.Settings, text string) (panel, bool) {
	t.Helper()
	any := false
	for _, r := range text {
		var changed bool
		p, changed, _ = p.update(keyMsg(string(r)), s)
		any = any || changed
	}
	return p, any
}

func TestPanel_OpacitySliderStepsAndClamps(t *testing.T) {
	s := focus.DefaultSettings()
	p := newPanel(s).focusField(fieldOpacity, s)

	var changed bool
	for i := 0; i < 3; i++ {
		p, changed, _ = p.update(keyMsg("right"), &s)
	}
	if !changed || s.DimOpacity != 65 {
		t.Fatalf("opacity after 3 steps: got %d (changed=%v), want 65", s.DimOpacity, changed)
	}

	s.DimOpacity = 100
	p, changed, _ = p.update(keyMsg("right"), &s)
	if changed || s.DimOpacity != 100 {
		t.Fatalf("opacity above max: got %d (changed=%v)", s.DimOpacity, changed)
	}

	s.DimOpacity = 3
	_, _, _ = p.update(keyMsg("left"), &s)
	if s.DimOpacity != 0 {
		t.Fatalf("opacity below min: got %d, want 0", s.DimOpacity)
	}
}

func TestPanel_FadeSpeedSlider(t *testing.T) {
	s := focus.DefaultSettings()
	p := newPanel(s).focusField(fieldSpeed, s)

	p, changed, _ := p.update(keyMsg("right"), &s)
	if !changed || s.FadeSpeed != 250 {
		t.Fatalf("speed: got %d, want 250", s.FadeSpeed)
	}

	s.FadeSpeed = 0
	_, changed, _ = p.update(keyMsg("left"), &s)
	if changed || s.FadeSpeed != 0 {
		t.Fatalf("speed below min: got %d (changed=%v)", s.FadeSpeed, changed)
	}
}

func TestPanel_ColorInputAppliesOnlyValidColors(t *testing.T) {
	s := focus.DefaultSettings()
	p := newPanel(s).focusField(fieldColor, s)
	p.color.SetValue("")

	p, changed := typeInto(t, p, &s, "red")
	if changed || s.DimColor != "#000000" {
		t.Fatalf("invalid color applied: %q (changed=%v)", s.DimColor, changed)
	}
	p, _, _ = p.update(keyMsg("enter"), &s)
	if got := p.color.Value(); got != "#000000" {
		t.Fatalf("input after rejected enter: got %q, want %q", got, "#000000")
	}

	p.color.SetValue("")
	p, changed = typeInto(t, p, &s, "#12345")
	if changed || s.DimColor != "#000000" {
		t.Fatalf("short color applied: %q", s.DimColor)
	}
	_, changed = typeInto(t, p, &s, "6")
	if !changed || s.DimColor != "#123456" {
		t.Fatalf("valid color: got %q (changed=%v), want %q", s.DimColor, changed, "#123456")
	}
}

func TestPanel_Presets(t *testing.T) {
	s := focus.DefaultSettings()
	p := newPanel(s).focusField(fieldPresets, s)

	p, changed, _ := p.update(keyMsg("right"), &s)
	if changed {
		t.Fatalf("moving between presets must not change settings")
	}
	p, changed, _ = p.update(keyMsg("enter"), &s)
	if !changed || s.DimColor != "#333333" {
		t.Fatalf("preset: got %q, want %q", s.DimColor, "#333333")
	}
	if got := p.color.Value(); got != "#333333" {
		t.Fatalf("color input after preset: got %q", got)
	}

	p, _, _ = p.update(keyMsg("left"), &s)
	p, _, _ = p.update(keyMsg("left"), &s)
	_, _, _ = p.update(keyMsg("enter"), &s)
	if s.DimColor != "#999999" {
		t.Fatalf("wrapped preset: got %q, want %q", s.DimColor, "#999999")
	}
}

func TestPanel_EnabledToggleAndNavigation(t *testing.T) {
	s := focus.DefaultSettings()
	p := newPanel(s)

	p, changed, _ := p.update(keyMsg(" "), &s)
	if !changed || !s.Enabled {
		t.Fatalf("space should enable focus mode")
	}

	p, _, _ = p.update(keyMsg("up"), &s)
	if p.field != fieldPresets {
		t.Fatalf("up from first field: got %v, want presets", p.field)
	}
	p, _, _ = p.update(keyMsg("down"), &s)
	if p.field != fieldEnabled {
		t.Fatalf("down from last field: got %v, want enabled", p.field)
	}
}

func TestPanel_View(t *testing.T) {
	s := focus.Settings{Enabled: true, DimOpacity: 50, FadeSpeed: 200, DimColor: "#666666"}
	view := stripANSI(newPanel(s).view(s))

	for _, want := range []string{
		"Focus Mode Settings",
		"Enable focus mode",
		"[x]",
		" 50%",
		" 200ms",
		"#666666",
		"●Medium Gray",
		"Light Gray",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("panel view missing %q:\n%s", want, view)
		}
	}
}

func TestSlider(t *testing.T) {
	if got := slider(50, 100); got != strings.Repeat("█", 10)+strings.Repeat("░", 10) {
		t.Fatalf("slider(50,100): got %q", got)
	}
	if got := slider(0, 1000); got != strings.Repeat("░", 20) {
		t.Fatalf("slider(0,1000): got %q", got)
	}
}
