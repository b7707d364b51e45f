package app

import "testing"

func TestSystemClipboard_RoundTrip(t *testing.T) {
	if !ClipboardSupported() {
		t.Skip("no clipboard utility on this system")
	}
	var cb SystemClipboard
	if err := cb.WriteText("focusmode clipboard test"); err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}
	got, err := cb.ReadText()
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "focusmode clipboard test" {
		t.Fatalf("ReadText: got %q", got)
	}
}
