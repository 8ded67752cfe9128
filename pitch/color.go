package pitch

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/theory/names"
)

// Color returns a display colour for the pitch class. Hues follow the circle
// of fifths, so C is red and each fifth up turns the hue by 30 degrees.
func (pc PitchClass) Color() colorful.Color {
	fifths := names.Mod(pc.semitones*7, 12)
	return colorful.Hsv(float64(fifths)*30, 1, 1)
}

// Color returns the colour of the pitch's pitch class.
func (p Pitch) Color() colorful.Color {
	return p.PitchClass().Color()
}
