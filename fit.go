package chromakey

import (
	"fmt"

	kimage "github.com/gogpu/chromakey/internal/image"
	"github.com/gogpu/chromakey/internal/parallel"
)

// Interpolation selects the resampling filter used by Fit.
type Interpolation = kimage.InterpolationMode

// Resampling filters. Both are smooth; the fitted background is visible
// in the output, unlike the deliberately hard colour-cube lookup.
const (
	InterpBilinear = kimage.InterpBilinear
	InterpBicubic  = kimage.InterpBicubic
)

// FitOptions tunes Fit. The zero value uses bilinear resampling.
type FitOptions struct {
	Interpolation Interpolation
}

// FitGeometry returns the uniform scale and the horizontal shift Fit
// applies to a src-sized image. The scale matches heights; offset is how
// far the scaled image's left edge lies left of the target's, positive
// when the scaled image is wider than the target.
func FitGeometry(src, target Size) (scale, offset float64) {
	scale = float64(target.Height) / float64(src.Height)
	scaledWidth := float64(src.Width) * scale
	offset = (scaledWidth - float64(target.Width)) / 2
	return scale, offset
}

// Fit resizes bg to exactly target with bilinear resampling.
// See FitWith.
func Fit(bg *Frame, target Size) (*Frame, error) {
	return FitWith(bg, target, FitOptions{})
}

// FitWith scales bg uniformly so its height equals target.Height,
// centres it horizontally on the target, and crops it to exactly
// target's size at the origin.
//
// A background narrower than the target after scaling is centred
// without stretching; the uncovered columns on either side stay
// transparent black. A background already of target's size is returned
// as an unmodified copy.
func FitWith(bg *Frame, target Size, opts FitOptions) (*Frame, error) {
	if target.Empty() {
		return NewFrame(0, 0), nil
	}
	if bg.Size().Empty() {
		return nil, fmt.Errorf("%w: cannot fit %v background to %v", ErrEmptyFrame, bg.Size(), target)
	}
	if bg.Size() == target {
		return bg.Clone(), nil
	}

	scale, offset := FitGeometry(bg.Size(), target)
	forward := kimage.Scale(scale, scale).Then(kimage.Translate(-offset, 0))
	inverse, ok := forward.Invert()
	if !ok {
		// Scales below ~1e-5 fail the determinant check.
		return nil, fmt.Errorf("%w: degenerate scale %g for %v background", ErrEmptyFrame, scale, bg.Size())
	}

	out := NewFrame(target.Width, target.Height)
	src, dst := bg.view(), out.view()
	parallel.Rows(nil, target.Height, func(y0, y1 int) {
		kimage.Warp(dst, src, inverse, opts.Interpolation, y0, y1)
	})

	return out, nil
}
