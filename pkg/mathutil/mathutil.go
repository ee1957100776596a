// Package mathutil carries the numeric guards the policy and accounting
// math lean on.
package mathutil

import "math"

// SafeDiv divides n by d, reporting 0 for zero, denormal, or NaN
// denominators.
func SafeDiv(n, d float64) float64 {
	if !(math.Abs(d) > 1e-12) {
		return 0
	}
	return n / d
}

// Clamp01 pins x into [0,1]. NaN pins to 0.
func Clamp01(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x >= 0:
		return x
	default:
		// x < 0, or NaN failing both comparisons above
		return 0
	}
}

// Pow is math.Pow restricted to positive bases: a nonpositive or NaN
// base has no real fractional power and reports 0.
func Pow(a, b float64) float64 {
	if !(a > 0) {
		return 0
	}
	return math.Pow(a, b)
}
