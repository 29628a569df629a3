package chromakey

import (
	"math"

	kcolor "github.com/gogpu/chromakey/internal/color"
	"github.com/gogpu/chromakey/internal/parallel"
)

// CubeSize is the resolution N of the colour cube along each axis.
const CubeSize = 64

// CubeTable is a precomputed chroma-key lookup table over the RGB cube.
//
// Entry (r, g, b) for r, g, b in [0, CubeSize) represents the colour
// (r, g, b)/(CubeSize-1). It stores that colour premultiplied by an alpha
// of 0 when the colour's hue falls in the table's HueRange and 1
// otherwise. Entries are laid out with blue outermost and red innermost.
//
// A CubeTable is immutable after BuildCube returns.
type CubeTable struct {
	hues HueRange
	data []float32 // CubeSize³ * 4
}

// BuildCube computes the table for a hue range. The work is O(CubeSize³)
// and deterministic: equal ranges produce bit-identical tables.
func BuildCube(hues HueRange) *CubeTable {
	const n = CubeSize
	data := make([]float32, n*n*n*4)

	parallel.Rows(nil, n, func(z0, z1 int) {
		for z := z0; z < z1; z++ {
			blue := float64(z) / (n - 1)
			for y := range n {
				green := float64(y) / (n - 1)
				for x := range n {
					red := float64(x) / (n - 1)

					alpha := 1.0
					if hues.Contains(kcolor.Hue(red, green, blue)) {
						alpha = 0
					}

					i := cubeIndex(x, y, z) * 4
					data[i+0] = float32(red * alpha)
					data[i+1] = float32(green * alpha)
					data[i+2] = float32(blue * alpha)
					data[i+3] = float32(alpha)
				}
			}
		}
	})

	return &CubeTable{hues: hues, data: data}
}

func cubeIndex(r, g, b int) int {
	return (b*CubeSize+g)*CubeSize + r
}

// quantize maps a channel value to the nearest grid index.
func quantize(v float32) int {
	i := int(math.Round(float64(v) * (CubeSize - 1)))
	if i < 0 {
		return 0
	}
	if i > CubeSize-1 {
		return CubeSize - 1
	}
	return i
}

// HueRange returns the range the table was built for.
func (t *CubeTable) HueRange() HueRange {
	return t.hues
}

// Data returns the raw premultiplied entries. It must be treated as read
// only.
func (t *CubeTable) Data() []float32 {
	return t.data
}

// Entry returns the premultiplied entry at grid cell (r, g, b).
func (t *CubeTable) Entry(r, g, b int) RGBA {
	i := cubeIndex(r, g, b) * 4
	return RGBA{R: t.data[i], G: t.data[i+1], B: t.data[i+2], A: t.data[i+3]}
}

// Lookup returns the premultiplied entry for the grid cell nearest to c.
// There is no interpolation between cells, so hue boundaries stay hard.
func (t *CubeTable) Lookup(c Color) RGBA {
	return t.Entry(quantize(c.R), quantize(c.G), quantize(c.B))
}

// Apply replaces every pixel of fg with its table entry, producing a
// premultiplied keyed frame. The input alpha is ignored.
func (t *CubeTable) Apply(fg *Frame) *Frame {
	out := NewFrame(fg.width, fg.height)

	parallel.Rows(nil, fg.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			src := fg.row(y)
			dst := out.row(y)
			for i := 0; i < len(src); i += 4 {
				j := cubeIndex(quantize(src[i]), quantize(src[i+1]), quantize(src[i+2])) * 4
				copy(dst[i:i+4], t.data[j:j+4])
			}
		}
	})

	return out
}

// CubeKeyer keys with a CubeTable and composites the premultiplied result
// over the background. The table is rebuilt only when the hue range
// changes.
type CubeKeyer struct {
	table  *CubeTable
	builds int
}

// NewCubeKeyer creates a keyer with no table; the first Prepare or Apply
// builds one.
func NewCubeKeyer() *CubeKeyer {
	return &CubeKeyer{}
}

// Kind implements Keyer.
func (k *CubeKeyer) Kind() KeyerKind {
	return KeyerCube
}

// Prepare builds the table for p.HueRange unless the current table
// already matches it.
func (k *CubeKeyer) Prepare(p Params) {
	if k.table != nil && k.table.hues == p.HueRange {
		return
	}
	Logger().Debug("chromakey: building colour cube",
		"low", p.HueRange.Low, "high", p.HueRange.High, "size", CubeSize)
	k.table = BuildCube(p.HueRange)
	k.builds++
}

// Table returns the current table, or nil before the first Prepare.
func (k *CubeKeyer) Table() *CubeTable {
	return k.table
}

// Builds returns how many tables the keyer has built.
func (k *CubeKeyer) Builds() int {
	return k.builds
}

// Apply implements Keyer.
func (k *CubeKeyer) Apply(fg, bg *Frame, p Params) (*Frame, error) {
	if fg.Size() != bg.Size() {
		return nil, mismatch(fg, bg)
	}
	k.Prepare(p)
	return compositePremul(k.table.Apply(fg), bg), nil
}
