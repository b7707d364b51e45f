package app

import (
	"strings"
	"testing"

	"github.com/iw2rmb/focusmode/buffer"
	"github.com/iw2rmb/focusmode/focus"
)

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(focus.Enabled); got != "Focus Mode: ON" {
		t.Fatalf("enabled label: got %q", got)
	}
	if got := StatusLabel(focus.Disabled); got != "Focus Mode: OFF" {
		t.Fatalf("disabled label: got %q", got)
	}
}

func TestStatusBarView(t *testing.T) {
	b := statusBar{styles: defaultStatusStyles()}

	got := stripANSI(b.view(80, focus.Disabled, "", false, buffer.Pos{}, ""))
	for _, want := range []string{"Focus Mode: OFF", "[scratch]", "Ln 1, Col 1"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}

	got = stripANSI(b.view(80, focus.Enabled, "/tmp/notes.md", true, buffer.Pos{Row: 2, Col: 3}, "e\u0301te"))
	for _, want := range []string{"Focus Mode: ON", "notes.md [+]", "Ln 3, Col 3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("status %q missing %q", got, want)
		}
	}
}

func TestStatusBarView_MessageReplacesFileName(t *testing.T) {
	b := statusBar{styles: defaultStatusStyles()}
	b.msg.text = "saved"

	got := stripANSI(b.view(80, focus.Disabled, "notes.md", false, buffer.Pos{}, ""))
	if !strings.Contains(got, "saved") || strings.Contains(got, "notes.md") {
		t.Fatalf("status with message: %q", got)
	}
}
