package vmath

// EaseInOutQuad maps linear progress p in [0, 1] to quadratic ease-in-out
// Input outside the range is clamped
func EaseInOutQuad(p float64) float64 {
	p = Clamp01(p)
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// Progress returns elapsed/duration clamped to [0, 1]
// A non-positive duration is complete immediately
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}
