package blend

// Lerp interpolates from a (t = 0) to b (t = 1).
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoothstep is the Hermite ramp 3t²-2t³ of t clamped to [0, 1].
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
