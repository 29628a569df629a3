package chromakey

import (
	"fmt"

	"golang.org/x/text/cases"
)

// KeyerKind selects the per-pixel keying algorithm.
type KeyerKind int

const (
	// KeyerCube quantises each pixel into a hue-keyed colour cube and
	// composites the result over the background.
	KeyerCube KeyerKind = iota

	// KeyerDistance blends by distance from the target colour in one pass.
	KeyerDistance

	// KeyerPassThrough leaves the foreground untouched. It is useful for
	// checking the capture path without keying.
	KeyerPassThrough
)

// String returns the keyer name.
func (k KeyerKind) String() string {
	switch k {
	case KeyerCube:
		return "Cube"
	case KeyerDistance:
		return "Distance"
	case KeyerPassThrough:
		return "PassThrough"
	default:
		return "Unknown"
	}
}

// ParseKeyerKind parses a keyer name case-insensitively. Besides the
// String forms it accepts "colorcube", "hue", "chroma", "blend" and
// "none".
func ParseKeyerKind(name string) (KeyerKind, error) {
	switch cases.Fold().String(name) {
	case "cube", "colorcube", "hue":
		return KeyerCube, nil
	case "distance", "chroma", "blend":
		return KeyerDistance, nil
	case "passthrough", "none":
		return KeyerPassThrough, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyer, name)
	}
}

// Keyer removes the screen colour from a foreground and composites the
// remainder over a background of the same size.
//
// Implementations are not safe for concurrent use; per-pixel work inside
// Apply is parallelised internally.
type Keyer interface {
	// Kind reports which algorithm the keyer implements.
	Kind() KeyerKind

	// Prepare rebuilds any state derived from p. It is cheap when the
	// relevant fields have not changed.
	Prepare(p Params)

	// Apply returns the composited frame. It fails with
	// ErrDimensionMismatch when fg and bg differ in size.
	Apply(fg, bg *Frame, p Params) (*Frame, error)
}

// NewKeyer returns a fresh keyer of the given kind.
func NewKeyer(kind KeyerKind) (Keyer, error) {
	switch kind {
	case KeyerCube:
		return NewCubeKeyer(), nil
	case KeyerDistance:
		return NewDistanceKeyer(), nil
	case KeyerPassThrough:
		return PassThroughKeyer{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyer, int(kind))
	}
}

// PassThroughKeyer returns the foreground with alpha forced opaque.
type PassThroughKeyer struct{}

// Kind implements Keyer.
func (PassThroughKeyer) Kind() KeyerKind { return KeyerPassThrough }

// Prepare implements Keyer.
func (PassThroughKeyer) Prepare(Params) {}

// Apply implements Keyer.
func (PassThroughKeyer) Apply(fg, bg *Frame, _ Params) (*Frame, error) {
	if fg.Size() != bg.Size() {
		return nil, mismatch(fg, bg)
	}
	out := fg.Clone()
	for i := 3; i < len(out.pix); i += 4 {
		out.pix[i] = 1
	}
	return out, nil
}
