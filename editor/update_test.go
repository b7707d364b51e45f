package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdate_TypingAndReadOnly(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.SetSize(10, 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Buffer().Text(); got != "xab" {
		t.Fatalf("after typing: got %q, want %q", got, "xab")
	}

	ro := New(Config{Text: "ab", ReadOnly: true})
	ro, _ = ro.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	ro, _ = ro.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := ro.Buffer().Text(); got != "ab" {
		t.Fatalf("read-only edit: got %q, want %q", got, "ab")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("blurred edit: got %q, want %q", got, "ab")
	}
}

func TestUpdate_PasteInsertsLiteralText(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb"), Paste: true})
	if got := m.Buffer().Text(); got != "a\nb" {
		t.Fatalf("paste: got %q, want %q", got, "a\nb")
	}
}

func TestUpdate_TabAndEnter(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Buffer().Text(); got != "\t\n" {
		t.Fatalf("tab+enter: got %q", got)
	}
}

func TestUpdate_ParagraphMotion(t *testing.T) {
	m := New(Config{Text: "a\nb\n\nc\nd"})
	m, _ = m.SetSize(10, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	if got := m.Buffer().Cursor(); got != posOf(2, 0) {
		t.Fatalf("paragraph down: got %+v, want %+v", got, posOf(2, 0))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	if got := m.Buffer().Cursor(); got != posOf(0, 0) {
		t.Fatalf("paragraph up: got %+v, want %+v", got, posOf(0, 0))
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: "ab"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("undo: got %q", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Buffer().Text(); got != "xab" {
		t.Fatalf("redo: got %q", got)
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	cb := &fakeClipboard{}
	m := New(Config{Text: "hello", Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cb.text != "he" {
		t.Fatalf("copy: got %q, want %q", cb.text, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Buffer().Text(); got != "llo" {
		t.Fatalf("cut: got %q, want %q", got, "llo")
	}

	cb.text = "X\r\nY"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Buffer().Text(); got != "X\nYllo" {
		t.Fatalf("paste: got %q, want %q", got, "X\nYllo")
	}
}

func TestUpdate_MouseClickPlacesCursor(t *testing.T) {
	m := New(Config{Text: "abc\ndef", ShowLineNums: true})
	m, _ = m.SetSize(10, 2)

	// Gutter is "1 ", so x=3 is the second rune.
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := m.Buffer().Cursor(); got != posOf(1, 1) {
		t.Fatalf("click: got %+v, want %+v", got, posOf(1, 1))
	}

	m, _ = m.Update(tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	r, ok := m.Buffer().Selection()
	if !ok || r.Start != posOf(1, 1) || r.End != posOf(1, 3) {
		t.Fatalf("drag selection: got %+v (ok=%v)", r, ok)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionMotion})
	if got := m.Buffer().Cursor(); got != posOf(1, 3) {
		t.Fatalf("motion after release moved cursor to %+v", got)
	}
}

func TestUpdate_MouseWheelScrolls(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m, _ = m.SetSize(10, 3)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.ViewportState().TopVisualRow; got != 3 {
		t.Fatalf("top after wheel: got %d, want 3", got)
	}
	if got := m.Buffer().Cursor(); got != posOf(0, 0) {
		t.Fatalf("wheel must not move the cursor, got %+v", got)
	}
	if got := plainLines(m.View())[0]; got != "3" {
		t.Fatalf("first visible row: got %q, want %q", got, "3")
	}
}
