package focus

import (
	"regexp"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var hexColorRE = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Settings limits, matching the settings panel sliders.
const (
	MinOpacity  = 0
	MaxOpacity  = 100
	OpacityStep = 5

	MinFadeSpeed  = 0
	MaxFadeSpeed  = 1000
	FadeSpeedStep = 50
)

// Settings is the persisted focus mode configuration.
type Settings struct {
	Enabled bool `json:"enabled"`
	// DimOpacity is the alpha of the dim color in percent.
	DimOpacity int `json:"dimOpacity"`
	// FadeSpeed is the fade transition duration in milliseconds.
	FadeSpeed int    `json:"fadeSpeed"`
	DimColor  string `json:"dimColor"`
}

func DefaultSettings() Settings {
	return Settings{
		Enabled:    false,
		DimOpacity: 50,
		FadeSpeed:  200,
		DimColor:   "#000000",
	}
}

// Preset is a named dim color offered by the settings panel.
type Preset struct {
	Name  string
	Color string
}

var presets = []Preset{
	{Name: "Black", Color: "#000000"},
	{Name: "Dark Gray", Color: "#333333"},
	{Name: "Medium Gray", Color: "#666666"},
	{Name: "Light Gray", Color: "#999999"},
}

// Presets returns the built-in dim color presets.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// ValidColor reports whether s is a #RRGGBB hex color.
func ValidColor(s string) bool {
	return hexColorRE.MatchString(s)
}

// SetDimColor stores c if it is a valid #RRGGBB color and reports whether it
// did. Invalid input leaves the current color in place.
func (s *Settings) SetDimColor(c string) bool {
	if !ValidColor(c) {
		return false
	}
	s.DimColor = c
	return true
}

// SetDimOpacity stores v clamped to [MinOpacity, MaxOpacity].
func (s *Settings) SetDimOpacity(v int) {
	s.DimOpacity = clampInt(v, MinOpacity, MaxOpacity)
}

// SetFadeSpeed stores v clamped to [MinFadeSpeed, MaxFadeSpeed].
func (s *Settings) SetFadeSpeed(v int) {
	s.FadeSpeed = clampInt(v, MinFadeSpeed, MaxFadeSpeed)
}

// Normalize clamps numeric fields and replaces an invalid color with the
// default one.
func (s Settings) Normalize() Settings {
	s.SetDimOpacity(s.DimOpacity)
	s.SetFadeSpeed(s.FadeSpeed)
	if !ValidColor(s.DimColor) {
		s.DimColor = DefaultSettings().DimColor
	}
	return s
}

// DimStyle resolves the configured color, opacity and speed.
func (s Settings) DimStyle() DimStyle {
	c, err := colorful.Hex(s.DimColor)
	if err != nil || !ValidColor(s.DimColor) {
		c, _ = colorful.Hex(DefaultSettings().DimColor)
	}
	return DimStyle{
		Color:      c,
		Alpha:      float64(clampInt(s.DimOpacity, MinOpacity, MaxOpacity)) / 100,
		Transition: time.Duration(clampInt(s.FadeSpeed, MinFadeSpeed, MaxFadeSpeed)) * time.Millisecond,
	}
}
