package chromakey

import (
	"math"

	"golang.org/x/text/cases"
)

// Configuration keys understood by ParseUpdate, after case folding.
// Aliases cover the names used by the iOS and Android hosts.
const (
	keyBackgroundPath  = "backgroundpath"
	keyBackgroundImage = "backgroundimage"
	keyColour          = "colour"
	keyColor           = "color"
	keyHueRange        = "huerange"
	keySensitivity     = "sensitivity"
	keyThreshold       = "threshold"
	keySmoothing       = "smoothing"
	keyPolygon         = "polygon"
	keyMaskBounds      = "maskbounds"
)

// ParseUpdate builds an Update from a loosely typed configuration record,
// such as a decoded JSON or YAML object or a platform method-channel map.
//
// Keys are matched case-insensitively. Recognised fields:
//
//	backgroundPath  string                       (alias backGroundImage)
//	colour          [r, g, b] in 0-255, or "#rrggbb" (alias color)
//	hueRange        [low, high] hue fractions
//	sensitivity     number in [0, 1]             (alias threshold)
//	smoothing       number in [0, 1]
//	polygon         [[x, y] x 4]                 (alias maskBounds)
//
// A field with the wrong type or shape is dropped on its own and the rest
// of the record is still applied. Threshold and smoothing are clamped to
// [0, 1].
func ParseUpdate(fields map[string]any) Update {
	var u Update
	fold := cases.Fold()
	log := Logger()

	for rawKey, v := range fields {
		key := fold.String(rawKey)
		ok := true

		switch key {
		case keyBackgroundPath, keyBackgroundImage:
			var s string
			if s, ok = v.(string); ok {
				u.BackgroundPath = Some(s)
			}
		case keyColour, keyColor:
			var c Color
			if c, ok = parseColour(v); ok {
				u.TargetColor = Some(c)
			}
		case keyHueRange:
			var r HueRange
			if r, ok = parseHueRange(v); ok {
				u.HueRange = Some(r)
			}
		case keySensitivity, keyThreshold:
			var f float64
			if f, ok = toFloat(v); ok {
				u.Threshold = Some(float32(clamp01(f)))
			}
		case keySmoothing:
			var f float64
			if f, ok = toFloat(v); ok {
				u.Smoothing = Some(float32(clamp01(f)))
			}
		case keyPolygon, keyMaskBounds:
			var m MaskBounds
			if m, ok = parseMaskBounds(v); ok {
				u.MaskBounds = Some(m)
			}
		default:
			log.Debug("chromakey: ignoring unknown parameter", "key", rawKey)
			continue
		}

		if !ok {
			log.Debug("chromakey: dropping malformed parameter", "key", rawKey, "value", v)
		}
	}

	return u
}

func parseColour(v any) (Color, bool) {
	if s, ok := v.(string); ok {
		return Hex(s)
	}
	rgb, ok := toFloats(v)
	if !ok || len(rgb) != 3 {
		return Color{}, false
	}
	return RGB255(rgb[0], rgb[1], rgb[2]), true
}

func parseHueRange(v any) (HueRange, bool) {
	lh, ok := toFloats(v)
	if !ok || len(lh) != 2 {
		return HueRange{}, false
	}
	return HueRange{Low: lh[0], High: lh[1]}, true
}

func parseMaskBounds(v any) (MaskBounds, bool) {
	var m MaskBounds

	var points []any
	switch pts := v.(type) {
	case []any:
		points = pts
	case [][]float64:
		for _, p := range pts {
			points = append(points, p)
		}
	default:
		return m, false
	}
	if len(points) != len(m) {
		return m, false
	}

	for i, p := range points {
		xy, ok := toFloats(p)
		if !ok || len(xy) != 2 {
			return m, false
		}
		m[i] = Point{X: xy[0], Y: xy[1]}
	}
	return m, true
}

func toFloats(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		for _, f := range s {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, false
			}
		}
		return s, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint8:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
