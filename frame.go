package chromakey

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	kimage "github.com/gogpu/chromakey/internal/image"
)

// Size is a frame size in pixels.
type Size struct {
	Width, Height int
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Frame is a rectangular grid of RGBA pixels with float32 channels in
// [0, 1], stored row-major with 4 samples per pixel.
//
// Frames passed to keyers, compositors and the fitter are read only;
// every operation returns a newly allocated Frame and keeps no reference
// to its inputs.
//
// Frame implements image.Image so results can be handed straight to the
// standard encoders.
type Frame struct {
	width  int
	height int
	pix    []float32
}

// NewFrame creates a transparent black frame. Negative dimensions are
// treated as zero.
func NewFrame(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

// NewFrameFromPix wraps an existing RGBA sample buffer without copying.
// The caller must not modify pix while the frame is in use.
func NewFrameFromPix(width, height int, pix []float32) (*Frame, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d samples", ErrInvalidPixels, width, height, len(pix))
	}
	return &Frame{width: width, height: height, pix: pix}, nil
}

// SolidFrame creates a frame of the given size filled with c.
func SolidFrame(size Size, c RGBA) *Frame {
	f := NewFrame(size.Width, size.Height)
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = c.A
	}
	return f
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Size returns the frame dimensions.
func (f *Frame) Size() Size {
	return Size{Width: f.width, Height: f.height}
}

// Pix returns the raw samples. It must be treated as read only.
func (f *Frame) Pix() []float32 {
	return f.pix
}

// Pixel returns the colour at (x, y). Out-of-range coordinates return
// transparent black.
func (f *Frame) Pixel(x, y int) RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGBA{}
	}
	i := (y*f.width + x) * 4
	return RGBA{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2], A: f.pix[i+3]}
}

// SetPixel sets the colour at (x, y). It is meant for building a frame
// before handing it to an operation. Out-of-range coordinates are ignored.
func (f *Frame) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i+0] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = c.A
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]float32, len(f.pix))
	copy(pix, f.pix)
	return &Frame{width: f.width, height: f.height, pix: pix}
}

func (f *Frame) view() kimage.View {
	return kimage.View{Pix: f.pix, Width: f.width, Height: f.height}
}

// row returns the samples of row y.
func (f *Frame) row(y int) []float32 {
	return f.pix[y*f.width*4 : (y+1)*f.width*4]
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.NRGBA64Model
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	c := f.Pixel(x, y)
	return color.NRGBA64{
		R: to16(c.R),
		G: to16(c.G),
		B: to16(c.B),
		A: to16(c.A),
	}
}

func to16(v float32) uint16 {
	return uint16(clamp01(float64(v))*65535 + 0.5)
}

// FromImage converts any image to a frame. Colours are un-premultiplied
// and normalised to [0, 1].
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA64)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}

	f := NewFrame(b.Dx(), b.Dy())
	for y := range f.height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+f.width*8]
		dst := f.row(y)
		for i := range f.width * 4 {
			v := uint16(src[i*2])<<8 | uint16(src[i*2+1])
			dst[i] = float32(v) / 65535
		}
	}
	return f
}

// ToNRGBA converts the frame to an 8-bit image for encoding.
func (f *Frame) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for y := range f.height {
		src := f.row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+f.width*4]
		for i, v := range src {
			dst[i] = uint8(clamp01(float64(v))*255 + 0.5)
		}
	}
	return img
}
