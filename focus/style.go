package focus

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DimStyle is the resolved look of a dim decoration.
type DimStyle struct {
	Color      colorful.Color
	Alpha      float64 // 0..1
	Transition time.Duration
}

// RGB returns the dim color as 8-bit channels.
func (s DimStyle) RGB() (r, g, b uint8) {
	return s.Color.Clamped().RGB255()
}

// Over returns the color a viewer sees when the dim color is laid over base
// with Alpha, for renderers without an alpha channel.
func (s DimStyle) Over(base colorful.Color) colorful.Color {
	return base.BlendRgb(s.Color, clampFloat(s.Alpha, 0, 1)).Clamped()
}

// Faded returns s with its alpha scaled by progress (0..1), used while a fade
// transition is running.
func (s DimStyle) Faded(progress float64) DimStyle {
	s.Alpha *= clampFloat(progress, 0, 1)
	return s
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
