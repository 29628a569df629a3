package chromakey

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpt(t *testing.T) {
	var zero Opt[float32]
	if zero.IsSet() {
		t.Error("zero Opt should be absent")
	}
	if got := zero.Or(0.7); got != 0.7 {
		t.Errorf("absent Or(0.7) = %v", got)
	}

	// Present with the zero value is distinct from absent.
	z := Some[float32](0)
	if v, ok := z.Get(); !ok || v != 0 {
		t.Errorf("Some(0).Get() = %v, %v", v, ok)
	}
	if got := z.Or(0.7); got != 0 {
		t.Errorf("Some(0).Or(0.7) = %v, want 0", got)
	}
	if None[string]().IsSet() {
		t.Error("None should be absent")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultParams()
	base.BackgroundPath = "beach.png"

	mask := MaskBounds{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	tests := []struct {
		name   string
		update Update
		want   func(p Params) Params
	}{
		{
			name:   "empty update",
			update: Update{},
			want:   func(p Params) Params { return p },
		},
		{
			name:   "threshold only",
			update: Update{Threshold: Some[float32](0.2)},
			want: func(p Params) Params {
				p.Threshold = 0.2
				return p
			},
		},
		{
			name:   "zero smoothing is applied",
			update: Update{Smoothing: Some[float32](0)},
			want: func(p Params) Params {
				p.Smoothing = 0
				return p
			},
		},
		{
			name:   "explicit empty path clears background",
			update: Update{BackgroundPath: Some("")},
			want: func(p Params) Params {
				p.BackgroundPath = ""
				return p
			},
		},
		{
			name: "several fields",
			update: Update{
				TargetColor: Some(Blue),
				HueRange:    Some(HueRange{Low: 0.55, High: 0.7}),
				MaskBounds:  Some(mask),
			},
			want: func(p Params) Params {
				p.TargetColor = Blue
				p.HueRange = HueRange{Low: 0.55, High: 0.7}
				p.MaskBounds = &mask
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := base
			got := Merge(base, tt.update)
			if diff := cmp.Diff(tt.want(base), got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, base); diff != "" {
				t.Errorf("Merge() mutated its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	base := DefaultParams()
	mask := MaskBounds{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	same := mask

	tests := []struct {
		name   string
		update Update
		want   Changes
	}{
		{"nothing", Update{}, Changes{}},
		{"threshold", Update{Threshold: Some[float32](0.3)}, Changes{Distance: true}},
		{"same threshold", Update{Threshold: Some(DefaultThreshold)}, Changes{}},
		{"colour", Update{TargetColor: Some(Blue)}, Changes{Distance: true}},
		{"hue range", Update{HueRange: Some(HueRange{Low: 0.3, High: 0.45})}, Changes{HueRange: true}},
		{"background", Update{BackgroundPath: Some("a.png")}, Changes{Background: true}},
		{"mask", Update{MaskBounds: Some(mask)}, Changes{Mask: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(base, Merge(base, tt.update))
			if got != tt.want {
				t.Errorf("Diff() = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("equal masks at different addresses", func(t *testing.T) {
		a, b := base, base
		a.MaskBounds = &mask
		b.MaskBounds = &same
		if Diff(a, b).Mask {
			t.Error("equal masks reported as changed")
		}
	})
}

func TestHueRangeContains(t *testing.T) {
	r := HueRange{Low: 0.25, High: 0.45}
	for _, h := range []float64{0.25, 0.3, 0.45} {
		if !r.Contains(h) {
			t.Errorf("Contains(%v) = false", h)
		}
	}
	for _, h := range []float64{0, 0.2499, 0.4501, 1} {
		if r.Contains(h) {
			t.Errorf("Contains(%v) = true", h)
		}
	}
	if (HueRange{Low: 0.5, High: 0.4}).Contains(0.45) {
		t.Error("inverted range should match nothing")
	}
}
