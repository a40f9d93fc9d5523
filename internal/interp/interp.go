package interp

// Lerp performs linear interpolation between a and b
func Lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}

// Clamp limits v to the [lo, hi] range
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Span calculates the normalized position (0.0 to 1.0) of t between t0 and t1
func Span(t, t0, t1 float64) float64 {
	delta := t1 - t0
	if delta == 0 {
		delta = 0.001 // Avoid division by zero
	}
	return (t - t0) / delta
}
