package color

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// MaxRGBDistance is the largest Euclidean distance between two colours in
// the unit RGB cube (black to white).
var MaxRGBDistance = math.Sqrt(3)

// RGBDistance returns the Euclidean distance between two colours in the
// unit RGB cube.
func RGBDistance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// BT.601 luma weights and chroma scale factors, as used by the GPUImage
// chroma-key blend shader.
const (
	lumaR = 0.2989
	lumaG = 0.5866
	lumaB = 0.1145

	crScale = 0.7132
	cbScale = 0.5647
)

// Chroma projects an RGB colour onto the (Cr, Cb) plane, discarding luma.
// Shadows and highlights of the same screen colour land close together.
func Chroma(c r3.Vec) r2.Vec {
	y := lumaR*c.X + lumaG*c.Y + lumaB*c.Z
	return r2.Vec{
		X: crScale * (c.X - y),
		Y: cbScale * (c.Z - y),
	}
}

// ChromaDistance returns the distance between two colours on the (Cr, Cb)
// plane. Opposite hues (red and cyan) sit just over 1 apart; the result
// never exceeds √2.
func ChromaDistance(a, b r3.Vec) float64 {
	return r2.Norm(r2.Sub(Chroma(a), Chroma(b)))
}
