package focus

import (
	"testing"
	"time"
)

func TestSettings_DimStyleResolvesColorAndAlpha(t *testing.T) {
	s := Settings{DimOpacity: 50, DimColor: "#000000", FadeSpeed: 200}
	st := s.DimStyle()

	r, g, b := st.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("rgb: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
	if st.Alpha != 0.5 {
		t.Fatalf("alpha: got %v, want %v", st.Alpha, 0.5)
	}
	if st.Transition != 200*time.Millisecond {
		t.Fatalf("transition: got %v, want %v", st.Transition, 200*time.Millisecond)
	}
}

func TestSettings_DimStyleMixedCaseHex(t *testing.T) {
	s := Settings{DimOpacity: 100, DimColor: "#1a2B3c"}
	r, g, b := s.DimStyle().RGB()
	if r != 0x1a || g != 0x2b || b != 0x3c {
		t.Fatalf("rgb: got (%d,%d,%d), want (26,43,60)", r, g, b)
	}
}

func TestSettings_SetDimColorRejectsInvalid(t *testing.T) {
	cases := []string{"red", "#12345", "#1234567", "123456", "#12345g", "", " #123456"}
	for _, in := range cases {
		s := DefaultSettings()
		s.DimColor = "#333333"
		if s.SetDimColor(in) {
			t.Fatalf("SetDimColor(%q): accepted, want rejected", in)
		}
		if s.DimColor != "#333333" {
			t.Fatalf("SetDimColor(%q): color changed to %q", in, s.DimColor)
		}
	}

	s := DefaultSettings()
	if !s.SetDimColor("#AbCdEf") {
		t.Fatalf("SetDimColor(#AbCdEf): rejected, want accepted")
	}
	if s.DimColor != "#AbCdEf" {
		t.Fatalf("color: got %q, want %q", s.DimColor, "#AbCdEf")
	}
}

func TestSettings_ClampAndNormalize(t *testing.T) {
	s := Settings{DimOpacity: 250, FadeSpeed: -3, DimColor: "blue"}
	n := s.Normalize()
	want := Settings{DimOpacity: 100, FadeSpeed: 0, DimColor: "#000000"}
	if n != want {
		t.Fatalf("normalize: got %+v, want %+v", n, want)
	}

	s = DefaultSettings()
	s.SetDimOpacity(-1)
	s.SetFadeSpeed(5000)
	if s.DimOpacity != 0 || s.FadeSpeed != 1000 {
		t.Fatalf("clamp: got opacity=%d speed=%d, want 0 and 1000", s.DimOpacity, s.FadeSpeed)
	}
}

func TestSettings_InvalidColorFallsBackInStyle(t *testing.T) {
	s := Settings{DimOpacity: 20, DimColor: "nope"}
	r, g, b := s.DimStyle().RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("rgb: got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}

func TestPresets_AreValidColors(t *testing.T) {
	ps := Presets()
	if len(ps) != 4 {
		t.Fatalf("presets: got %d, want 4", len(ps))
	}
	for _, p := range ps {
		if !ValidColor(p.Color) {
			t.Fatalf("preset %q has invalid color %q", p.Name, p.Color)
		}
	}
	ps[0].Color = "mutated"
	if Presets()[0].Color != "#000000" {
		t.Fatalf("Presets must return a copy")
	}
}

func TestDimStyle_OverBlendsTowardDimColor(t *testing.T) {
	st := Settings{DimOpacity: 50, DimColor: "#000000"}.DimStyle()
	white := Settings{DimColor: "#ffffff"}.DimStyle().Color

	r, g, b := st.Over(white).RGB255()
	// Halfway between white and black.
	if r < 126 || r > 128 || g != r || b != r {
		t.Fatalf("blend: got (%d,%d,%d), want mid gray", r, g, b)
	}

	if got := st.Faded(0).Alpha; got != 0 {
		t.Fatalf("faded(0) alpha: got %v, want 0", got)
	}
	if got := st.Faded(2).Alpha; got != 0.5 {
		t.Fatalf("faded(2) alpha: got %v, want 0.5", got)
	}
}
