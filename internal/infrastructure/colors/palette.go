// Package colors derives command display colours from HSL hue lists.
package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette turns hues into colours at a fixed saturation and lightness.
type Palette struct {
	Saturation float64
	Lightness  float64
}

// NewPalette creates a palette. Both values are clamped to [0, 1].
func NewPalette(saturation, lightness float64) Palette {
	return Palette{
		Saturation: clamp01(saturation),
		Lightness:  clamp01(lightness),
	}
}

// FromHue returns the hex colour of hue. Hues outside [0, 360) wrap around.
func (p Palette) FromHue(hue float64) string {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsl(hue, p.Saturation, p.Lightness).Hex()
}

// Neutral returns the grey used for commands without hues.
func (p Palette) Neutral() string {
	return colorful.Hsl(0, 0, p.Lightness).Hex()
}

// Derive returns the display colour for hues and, when there is more than
// one hue, the full gradient. No hues yield the neutral grey.
func (p Palette) Derive(hues []float64) (color string, gradient []string) {
	switch len(hues) {
	case 0:
		return p.Neutral(), nil
	case 1:
		return p.FromHue(hues[0]), nil
	}

	gradient = make([]string, len(hues))
	for i, h := range hues {
		gradient[i] = p.FromHue(h)
	}
	return gradient[0], gradient
}

// TextOn returns black or white, whichever reads better on the hex
// background. Unparsable input gets white.
func TextOn(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#ffffff"
	}
	_, _, l := c.Hsl()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
