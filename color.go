package chromakey

import (
	"gonum.org/v1/gonum/spatial/r3"

	kcolor "github.com/gogpu/chromakey/internal/color"
)

// Color is an opaque RGB colour with components in [0, 1].
type Color struct {
	R, G, B float32
}

// RGBA is a colour with alpha. Components are in [0, 1] and, unless a
// function says otherwise, not premultiplied.
type RGBA struct {
	R, G, B, A float32
}

// Common colours.
var (
	Black   = Color{0, 0, 0}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Magenta = Color{1, 0, 1}
)

// RGB255 creates a colour from 0-255 components, the unit used at the
// platform configuration boundary.
func RGB255(r, g, b float64) Color {
	return Color{
		R: float32(clamp01(r / 255)),
		G: float32(clamp01(g / 255)),
		B: float32(clamp01(b / 255)),
	}
}

// Hex parses "#RGB" or "#RRGGBB" (the leading '#' is optional).
// It reports false for any other input.
func Hex(hex string) (Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3:
		ok := parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if !ok {
			return Color{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		ok := parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if !ok {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}, true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Hue returns the HSV hue of c as a fraction in [0, 1). Greys return 0.
func (c Color) Hue() float64 {
	return kcolor.Hue(float64(c.R), float64(c.G), float64(c.B))
}

// Opaque returns c with alpha 1.
func (c Color) Opaque() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

func (c Color) vec() r3.Vec {
	return r3.Vec{X: float64(c.R), Y: float64(c.G), Z: float64(c.B)}
}

// HueColor returns the fully saturated colour at hue h.
func HueColor(h float64) Color {
	r, g, b := kcolor.FromHue(h)
	return Color{R: float32(r), G: float32(g), B: float32(b)}
}

// RGB drops the alpha channel.
func (c RGBA) RGB() Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// Premultiply returns a premultiplied colour.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
