// Package image provides the geometric resampling used to fit a
// background image to a frame: axis-aligned transforms and smooth
// samplers over float RGBA buffers, plus decoding of background assets.
package image

import "math"

// Transform is an axis-aligned affine map without rotation or shear:
//
//	x' = SX*x + TX
//	y' = SY*y + TY
//
// Uniform scaling followed by a shift is all that fitting a background
// needs.
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Translate returns a shift by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{SX: 1, SY: 1, TX: tx, TY: ty}
}

// Scale returns a scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Transform {
	return Transform{SX: sx, SY: sy}
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		SX: next.SX * t.SX,
		SY: next.SY * t.SY,
		TX: next.SX*t.TX + next.TX,
		TY: next.SY*t.TY + next.TY,
	}
}

// Invert returns the inverse transform. It reports false when the scale
// is too close to zero to invert (|SX*SY| < 1e-10).
func (t Transform) Invert() (Transform, bool) {
	if math.Abs(t.SX*t.SY) < 1e-10 {
		return Transform{}, false
	}
	return Transform{
		SX: 1 / t.SX,
		SY: 1 / t.SY,
		TX: -t.TX / t.SX,
		TY: -t.TY / t.SY,
	}, true
}

// Apply maps (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.SX*x + t.TX, t.SY*y + t.TY
}
