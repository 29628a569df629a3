// Package color provides the colour-space maths behind chroma keying:
// hue extraction for the colour cube and distance metrics for the
// distance keyer.
package color

// Hue returns the HSV hue of an RGB colour as a fraction of a full turn
// in [0, 1). Components are expected in [0, 1].
//
// Achromatic colours (max == min, including black and every grey) have no
// defined hue and map to 0.
func Hue(r, g, b float64) float64 {
	hi := max(r, g, b)
	lo := min(r, g, b)
	delta := hi - lo
	if delta <= 0 {
		return 0
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / delta
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	h /= 6
	if h >= 1 {
		h -= 1
	}
	return h
}

// FromHue returns the fully saturated, full-value colour at hue h.
// h is taken modulo 1.
func FromHue(h float64) (r, g, b float64) {
	h -= float64(int(h))
	if h < 0 {
		h++
	}

	sector := h * 6
	i := int(sector)
	f := sector - float64(i)

	switch i {
	case 0:
		return 1, f, 0
	case 1:
		return 1 - f, 1, 0
	case 2:
		return 0, 1, f
	case 3:
		return 0, 1 - f, 1
	case 4:
		return f, 0, 1
	default:
		return 1, 0, 1 - f
	}
}
