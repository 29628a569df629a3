package chromakey

// Defaults used when no update has set a field.
const (
	DefaultThreshold float32 = 0.4
	DefaultSmoothing float32 = 0.1
)

// DefaultHueRange covers the greens of a typical studio screen.
var DefaultHueRange = HueRange{Low: 0.25, High: 0.45}

// HueRange is an inclusive range of hue fractions. A hue h is keyed out
// when Low <= h <= High. Ranges with Low > High match nothing; wrapping
// ranges across red are not supported.
type HueRange struct {
	Low, High float64
}

// Contains reports whether h lies in the range, bounds included.
func (r HueRange) Contains(h float64) bool {
	return h >= r.Low && h <= r.High
}

// Point is a 2D point in frame coordinates.
type Point struct {
	X, Y float64
}

// MaskBounds is the quadrilateral region of interest supplied by the
// host application. It is stored and merged with the other parameters
// but no keyer reads it.
type MaskBounds [4]Point

// Params is the complete set of keying parameters bound to a pipeline.
// Params is a value: Merge returns a new one and never mutates its input.
type Params struct {
	// BackgroundPath locates the background asset. Empty means none.
	BackgroundPath string

	// TargetColor is the screen colour removed by the distance keyer.
	TargetColor Color

	// Threshold in [0, 1]: distances up to Threshold (scaled to the
	// metric's range) are fully keyed out.
	Threshold float32

	// Smoothing in [0, 1]: width of the ramp above Threshold over which
	// the foreground fades back in.
	Smoothing float32

	// HueRange selects the hues removed by the colour-cube keyer.
	HueRange HueRange

	// MaskBounds is nil until the host supplies one.
	MaskBounds *MaskBounds
}

// DefaultParams returns the parameters used before any update arrives.
func DefaultParams() Params {
	return Params{
		TargetColor: Green,
		Threshold:   DefaultThreshold,
		Smoothing:   DefaultSmoothing,
		HueRange:    DefaultHueRange,
	}
}

// Opt is an optional value. The zero Opt is absent, which is distinct
// from present-with-zero-value.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns the value if present, otherwise fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Update is a partial set of parameters. Absent fields leave the current
// value untouched when merged. An explicit empty BackgroundPath clears the
// background.
type Update struct {
	BackgroundPath Opt[string]
	TargetColor    Opt[Color]
	Threshold      Opt[float32]
	Smoothing      Opt[float32]
	HueRange       Opt[HueRange]
	MaskBounds     Opt[MaskBounds]
}

// IsEmpty reports whether the update carries no fields.
func (u Update) IsEmpty() bool {
	return !u.BackgroundPath.IsSet() &&
		!u.TargetColor.IsSet() &&
		!u.Threshold.IsSet() &&
		!u.Smoothing.IsSet() &&
		!u.HueRange.IsSet() &&
		!u.MaskBounds.IsSet()
}

// Merge returns cur with every field present in u overwritten.
func Merge(cur Params, u Update) Params {
	next := cur
	next.BackgroundPath = u.BackgroundPath.Or(cur.BackgroundPath)
	next.TargetColor = u.TargetColor.Or(cur.TargetColor)
	next.Threshold = u.Threshold.Or(cur.Threshold)
	next.Smoothing = u.Smoothing.Or(cur.Smoothing)
	next.HueRange = u.HueRange.Or(cur.HueRange)
	if m, ok := u.MaskBounds.Get(); ok {
		next.MaskBounds = &m
	}
	return next
}

// Changes lists which dependent state a move from old to new invalidates.
type Changes struct {
	Background bool // re-load and re-fit the background
	HueRange   bool // rebuild the colour cube
	Distance   bool // refresh the distance keyer's target
	Mask       bool // stored only
}

// Diff compares two parameter sets field by field.
func Diff(old, next Params) Changes {
	return Changes{
		Background: old.BackgroundPath != next.BackgroundPath,
		HueRange:   old.HueRange != next.HueRange,
		Distance: old.TargetColor != next.TargetColor ||
			old.Threshold != next.Threshold ||
			old.Smoothing != next.Smoothing,
		Mask: !maskEqual(old.MaskBounds, next.MaskBounds),
	}
}

func maskEqual(a, b *MaskBounds) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
