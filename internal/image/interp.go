package image

import "math"

// View is a read/write window over a packed RGBA float32 buffer:
// 4 samples per pixel, rows of Width pixels, no padding.
type View struct {
	Pix    []float32
	Width  int
	Height int
}

func (v View) at(x, y int) (r, g, b, a float32) {
	i := (y*v.Width + x) * 4
	p := v.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// InterpolationMode selects the resampling filter. Both modes are smooth;
// nearest-neighbour is deliberately absent because a fitted background is
// shown on screen.
type InterpolationMode uint8

const (
	// InterpBilinear interpolates linearly between the 4 nearest pixels.
	InterpBilinear InterpolationMode = iota

	// InterpBicubic uses Catmull-Rom weights over a 4x4 neighbourhood.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Sample returns the colour of src at continuous pixel coordinates (x, y),
// where pixel (i, j) covers [i, i+1) x [j, j+1) and its centre is at
// (i+0.5, j+0.5). Points outside the image return ok == false.
// Neighbours beyond the edge are clamped to it.
func Sample(src View, x, y float64, mode InterpolationMode) (px [4]float32, ok bool) {
	if x < 0 || y < 0 || x >= float64(src.Width) || y >= float64(src.Height) {
		return px, false
	}
	if mode == InterpBicubic {
		return sampleBicubic(src, x-0.5, y-0.5), true
	}
	return sampleBilinear(src, x-0.5, y-0.5), true
}

func sampleBilinear(src View, fx, fy float64) [4]float32 {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - float64(x0))
	ty := float32(fy - float64(y0))

	x1 := clamp(x0+1, 0, src.Width-1)
	y1 := clamp(y0+1, 0, src.Height-1)
	x0 = clamp(x0, 0, src.Width-1)
	y0 = clamp(y0, 0, src.Height-1)

	r00, g00, b00, a00 := src.at(x0, y0)
	r10, g10, b10, a10 := src.at(x1, y0)
	r01, g01, b01, a01 := src.at(x0, y1)
	r11, g11, b11, a11 := src.at(x1, y1)

	return [4]float32{
		lerp2D(r00, r10, r01, r11, tx, ty),
		lerp2D(g00, g10, g01, g11, tx, ty),
		lerp2D(b00, b10, b01, b11, tx, ty),
		lerp2D(a00, a10, a01, a11, tx, ty),
	}
}

func sampleBicubic(src View, fx, fy float64) [4]float32 {
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	wx := [4]float64{cubicWeight(tx + 1), cubicWeight(tx), cubicWeight(tx - 1), cubicWeight(tx - 2)}
	wy := [4]float64{cubicWeight(ty + 1), cubicWeight(ty), cubicWeight(ty - 1), cubicWeight(ty - 2)}

	var sum [4]float64
	for j := range 4 {
		py := clamp(y+j-1, 0, src.Height-1)
		for i := range 4 {
			px := clamp(x+i-1, 0, src.Width-1)
			w := wx[i] * wy[j]
			r, g, b, a := src.at(px, py)
			sum[0] += float64(r) * w
			sum[1] += float64(g) * w
			sum[2] += float64(b) * w
			sum[3] += float64(a) * w
		}
	}

	// Catmull-Rom overshoots near hard edges.
	return [4]float32{
		float32(clampFloat(sum[0], 0, 1)),
		float32(clampFloat(sum[1], 0, 1)),
		float32(clampFloat(sum[2], 0, 1)),
		float32(clampFloat(sum[3], 0, 1)),
	}
}

// Warp fills rows [y0, y1) of dst by sampling src at inv applied to each
// destination pixel centre. Pixels that map outside src become
// transparent black.
func Warp(dst, src View, inv Transform, mode InterpolationMode, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := dst.Pix[y*dst.Width*4 : (y+1)*dst.Width*4]
		for x := range dst.Width {
			sx, sy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			px, _ := Sample(src, sx, sy, mode)
			copy(row[x*4:x*4+4], px[:])
		}
	}
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}

// cubicWeight computes the Catmull-Rom weight for distance t
// (Mitchell-Netravali with B=0, C=0.5).
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}
