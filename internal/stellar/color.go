package stellar

import (
	"fmt"
	"math"
)

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Temperature range over which the blackbody color fit is valid.
const (
	minColorTemperature = 1000
	maxColorTemperature = 40000
)

// ColorForTemperature approximates the visual color of a blackbody at the
// given temperature in Kelvin, using Tanner Helland's piecewise log/power
// fit to the Planckian locus. Temperatures outside 1000-40000 K are clamped
// to the fit range. Pure data mapping; rendering is the caller's concern.
func ColorForTemperature(temperature float64) RGB {
	t := temperature
	if t < minColorTemperature {
		t = minColorTemperature
	} else if t > maxColorTemperature {
		t = maxColorTemperature
	}
	t /= 100

	var r, g, b float64

	if t <= 66 {
		r = 255
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
	}

	if t <= 66 {
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}

	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}

	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// clampChannel rounds and clamps a float channel to 0-255.
func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
