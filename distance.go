package chromakey

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gogpu/chromakey/internal/blend"
	kcolor "github.com/gogpu/chromakey/internal/color"
	"github.com/gogpu/chromakey/internal/parallel"
)

// smoothingEpsilon keeps the keyness ramp finite when smoothing is zero.
const smoothingEpsilon = 1e-6

// Metric selects how the distance keyer measures colour similarity.
type Metric uint8

const (
	// MetricRGB is the Euclidean distance in the unit RGB cube, in
	// [0, √3]. Threshold and smoothing are multiplied by √3, so a
	// threshold of 1 keys out every colour.
	MetricRGB Metric = iota

	// MetricChroma is the distance on the (Cr, Cb) plane, ignoring luma,
	// as computed by the GPUImage chroma-key blend shader. Threshold and
	// smoothing are used unscaled.
	MetricChroma
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "RGB"
	case MetricChroma:
		return "Chroma"
	default:
		return "Unknown"
	}
}

// Scale returns the factor that maps threshold and smoothing parameters
// onto the metric's distance range.
func (m Metric) Scale() float64 {
	if m == MetricChroma {
		return 1
	}
	return kcolor.MaxRGBDistance
}

// Distance measures a against b.
func (m Metric) Distance(a, b Color) float64 {
	if m == MetricChroma {
		return kcolor.ChromaDistance(a.vec(), b.vec())
	}
	return kcolor.RGBDistance(a.vec(), b.vec())
}

// Ramp shapes the transition between keyed-out and retained pixels.
type Ramp uint8

const (
	// RampLinear rises linearly from threshold to threshold+smoothing.
	RampLinear Ramp = iota

	// RampSmoothstep applies a Hermite curve over the same interval.
	RampSmoothstep
)

// String returns the ramp name.
func (r Ramp) String() string {
	switch r {
	case RampLinear:
		return "Linear"
	case RampSmoothstep:
		return "Smoothstep"
	default:
		return "Unknown"
	}
}

// Keyness maps a distance d to the fraction of foreground retained:
// 0 for d <= threshold, 1 for d >= threshold+smoothing, rising
// monotonically and continuously in between. All arguments share the
// metric's units.
func Keyness(d, threshold, smoothing float64, ramp Ramp) float32 {
	k := blend.Clamp01(float32((d - threshold) / max(smoothing, smoothingEpsilon)))
	if ramp == RampSmoothstep {
		return blend.Smoothstep(k)
	}
	return k
}

// DistanceKeyer keys and composites in a single pass: each output pixel
// is fg*k + bg*(1-k), where k is the Keyness of the pixel's distance from
// the target colour. It never produces an intermediate keyed frame.
type DistanceKeyer struct {
	Metric Metric
	Ramp   Ramp

	target    Color
	threshold float64
	smoothing float64
	prepared  bool
	refreshes int
}

// NewDistanceKeyer creates a keyer using the RGB metric and a linear ramp.
func NewDistanceKeyer() *DistanceKeyer {
	return &DistanceKeyer{}
}

// Kind implements Keyer.
func (k *DistanceKeyer) Kind() KeyerKind {
	return KeyerDistance
}

// Prepare refreshes the target colour and the scaled threshold and
// smoothing from p when they differ from the current ones.
func (k *DistanceKeyer) Prepare(p Params) {
	scale := k.Metric.Scale()
	threshold := float64(p.Threshold) * scale
	smoothing := float64(p.Smoothing) * scale
	if k.prepared && k.target == p.TargetColor && k.threshold == threshold && k.smoothing == smoothing {
		return
	}

	k.target = p.TargetColor
	k.threshold = threshold
	k.smoothing = smoothing
	k.prepared = true
	k.refreshes++
}

// Refreshes returns how many times Prepare changed the keyer's target.
func (k *DistanceKeyer) Refreshes() int {
	return k.refreshes
}

// Apply implements Keyer.
func (k *DistanceKeyer) Apply(fg, bg *Frame, p Params) (*Frame, error) {
	if fg.Size() != bg.Size() {
		return nil, mismatch(fg, bg)
	}
	k.Prepare(p)

	metric, ramp := k.Metric, k.Ramp
	target := k.target.vec()
	threshold, smoothing := k.threshold, k.smoothing
	out := NewFrame(fg.width, fg.height)

	parallel.Rows(nil, fg.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := fg.row(y)
			back := bg.row(y)
			res := out.row(y)
			for i := 0; i < len(src); i += 4 {
				c := r3.Vec{X: float64(src[i]), Y: float64(src[i+1]), Z: float64(src[i+2])}

				var d float64
				if metric == MetricChroma {
					d = kcolor.ChromaDistance(c, target)
				} else {
					d = kcolor.RGBDistance(c, target)
				}
				a := Keyness(d, threshold, smoothing, ramp)

				res[i] = blend.Lerp(back[i], src[i], a)
				res[i+1] = blend.Lerp(back[i+1], src[i+1], a)
				res[i+2] = blend.Lerp(back[i+2], src[i+2], a)
				res[i+3] = 1
			}
		}
	})

	return out, nil
}
