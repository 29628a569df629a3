package chromakey

import (
	"fmt"

	"github.com/gogpu/chromakey/internal/blend"
	"github.com/gogpu/chromakey/internal/parallel"
)

func mismatch(fg, bg *Frame) error {
	return fmt.Errorf("%w: foreground %v, background %v", ErrDimensionMismatch, fg.Size(), bg.Size())
}

// Composite lays keyed over bg with the source-over operator:
//
//	out.rgb = keyed.rgb*keyed.a + bg.rgb*(1-keyed.a)
//
// keyed holds straight (non-premultiplied) colour. The output is fully
// opaque. bg must already have keyed's size; run it through Fit first.
func Composite(keyed, bg *Frame) (*Frame, error) {
	if keyed.Size() != bg.Size() {
		return nil, mismatch(keyed, bg)
	}
	return composite(keyed, bg, blend.SourceOver), nil
}

// CompositePremul is Composite for a premultiplied keyed frame, such as
// the output of CubeTable.Apply:
//
//	out.rgb = keyed.rgb + bg.rgb*(1-keyed.a)
func CompositePremul(keyed, bg *Frame) (*Frame, error) {
	if keyed.Size() != bg.Size() {
		return nil, mismatch(keyed, bg)
	}
	return compositePremul(keyed, bg), nil
}

func compositePremul(keyed, bg *Frame) *Frame {
	return composite(keyed, bg, blend.SourceOverPremul)
}

type overFunc func(sr, sg, sb, sa, dr, dg, db float32) (r, g, b float32)

func composite(keyed, bg *Frame, over overFunc) *Frame {
	out := NewFrame(keyed.width, keyed.height)

	parallel.Rows(nil, keyed.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := keyed.row(y)
			dst := bg.row(y)
			res := out.row(y)
			for i := 0; i < len(src); i += 4 {
				res[i], res[i+1], res[i+2] = over(
					src[i], src[i+1], src[i+2], src[i+3],
					dst[i], dst[i+1], dst[i+2],
				)
				res[i+3] = 1
			}
		}
	})

	return out
}
