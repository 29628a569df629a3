package chromakey

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	kcolor "github.com/gogpu/chromakey/internal/color"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{-0.2, 0},
		{0, 0},
		{10.4 / 63, 10},
		{10.6 / 63, 11},
		{1, 63},
		{1.5, 63},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCubeLayout(t *testing.T) {
	table := BuildCube(DefaultHueRange)
	if len(table.Data()) != CubeSize*CubeSize*CubeSize*4 {
		t.Fatalf("len(Data) = %d", len(table.Data()))
	}

	// Red is innermost: entry (1, 0, 0) directly follows entry (0, 0, 0).
	red := table.Data()[4:8]
	want := []float32{1.0 / 63, 0, 0, 1}
	if diff := cmp.Diff(want, red, cmpopts.EquateApprox(0, 1e-7)); diff != "" {
		t.Errorf("entry (1, 0, 0) mismatch (-want +got):\n%s", diff)
	}
	if e := table.Entry(0, 0, CubeSize-1); e != (RGBA{B: 1, A: 1}) {
		t.Errorf("Entry(0, 0, 63) = %v, want opaque blue", e)
	}
}

func TestCubeKeysHueRange(t *testing.T) {
	hues := HueRange{Low: 0.25, High: 0.45}
	table := BuildCube(hues)
	const margin = 0.01

	for i := range 100 {
		h := float64(i) / 100
		c := HueColor(h)
		e := table.Lookup(c)

		switch {
		case h >= hues.Low+margin && h <= hues.High-margin:
			if e != (RGBA{}) {
				t.Errorf("hue %.2f: entry %v, want transparent black", h, e)
			}
		case h <= hues.Low-margin || h >= hues.High+margin:
			if e.A != 1 {
				t.Errorf("hue %.2f: alpha %v, want 1", h, e.A)
			}
			for _, d := range []float32{e.R - c.R, e.G - c.G, e.B - c.B} {
				if math.Abs(float64(d)) > 1.0/63 {
					t.Errorf("hue %.2f: entry %v too far from %v", h, e, c)
				}
			}
		}
	}
}

func TestCubeBoundsInclusive(t *testing.T) {
	// Both bounds are the exact hues of grid cells.
	low := kcolor.Hue(0, 1, 0)
	high := kcolor.Hue(0, 1, 20.0/63)
	table := BuildCube(HueRange{Low: low, High: high})

	if e := table.Entry(0, 63, 0); e.A != 0 {
		t.Errorf("low bound cell alpha = %v, want 0", e.A)
	}
	if e := table.Entry(0, 63, 20); e.A != 0 {
		t.Errorf("high bound cell alpha = %v, want 0", e.A)
	}
	if e := table.Entry(0, 63, 21); e.A != 1 {
		t.Errorf("cell past high bound alpha = %v, want 1", e.A)
	}
	if e := table.Entry(1, 63, 0); e.A != 1 {
		t.Errorf("cell below low bound alpha = %v, want 1", e.A)
	}
}

func TestCubeGreyIsHueZero(t *testing.T) {
	grey := Color{0.5, 0.5, 0.5}

	if e := BuildCube(HueRange{Low: 0, High: 0.05}).Lookup(grey); e.A != 0 {
		t.Errorf("grey with range [0, 0.05]: alpha %v, want 0", e.A)
	}
	if e := BuildCube(DefaultHueRange).Lookup(grey); e.A != 1 {
		t.Errorf("grey with default range: alpha %v, want 1", e.A)
	}
}

func TestBuildCubeDeterministic(t *testing.T) {
	a := BuildCube(DefaultHueRange).Data()
	b := BuildCube(DefaultHueRange).Data()
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCubeTableApply(t *testing.T) {
	fg := NewFrame(2, 1)
	fg.SetPixel(0, 0, Green.Opaque())
	fg.SetPixel(1, 0, RGBA{R: 1, A: 0.2}) // input alpha is ignored

	keyed := BuildCube(DefaultHueRange).Apply(fg)
	if got := keyed.Pixel(0, 0); got != (RGBA{}) {
		t.Errorf("green = %v, want transparent black", got)
	}
	if got := keyed.Pixel(1, 0); got != Red.Opaque() {
		t.Errorf("red = %v, want opaque red", got)
	}
}

func TestCubeKeyerRebuilds(t *testing.T) {
	k := NewCubeKeyer()
	if k.Table() != nil {
		t.Fatal("new keyer should have no table")
	}

	p := DefaultParams()
	k.Prepare(p)
	k.Prepare(p)
	if k.Builds() != 1 {
		t.Errorf("Builds() = %d after repeated Prepare, want 1", k.Builds())
	}

	p.Threshold = 0.9
	p.TargetColor = Blue
	k.Prepare(p)
	if k.Builds() != 1 {
		t.Errorf("Builds() = %d after non-hue change, want 1", k.Builds())
	}

	p.HueRange = HueRange{Low: 0.5, High: 0.7}
	k.Prepare(p)
	if k.Builds() != 2 {
		t.Errorf("Builds() = %d after hue change, want 2", k.Builds())
	}
	if k.Table().HueRange() != p.HueRange {
		t.Errorf("table range = %v, want %v", k.Table().HueRange(), p.HueRange)
	}
}

func TestCubeKeyerApply(t *testing.T) {
	size := Size{Width: 4, Height: 4}
	fg := SolidFrame(size, Green.Opaque())
	fg.SetPixel(3, 3, Blue.Opaque())
	bg := SolidFrame(size, Red.Opaque())

	out, err := NewCubeKeyer().Apply(fg, bg, DefaultParams())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := out.Pixel(0, 0); got != Red.Opaque() {
		t.Errorf("keyed pixel = %v, want background red", got)
	}
	if got := out.Pixel(3, 3); got != Blue.Opaque() {
		t.Errorf("retained pixel = %v, want foreground blue", got)
	}

	if _, err := NewCubeKeyer().Apply(fg, NewFrame(2, 2), DefaultParams()); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("mismatch error = %v, want ErrDimensionMismatch", err)
	}
}

func BenchmarkBuildCube(b *testing.B) {
	for b.Loop() {
		BuildCube(DefaultHueRange)
	}
}

func BenchmarkCubeKeyer720p(b *testing.B) {
	size := Size{Width: 1280, Height: 720}
	fg := SolidFrame(size, RGBA{R: 0.1, G: 0.8, B: 0.2, A: 1})
	bg := SolidFrame(size, Red.Opaque())
	k := NewCubeKeyer()
	p := DefaultParams()
	k.Prepare(p)

	for b.Loop() {
		_, _ = k.Apply(fg, bg, p)
	}
}
