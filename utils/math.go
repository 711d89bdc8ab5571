// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"cmp"
	"math"
)

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap adds delta to value and wraps the result into [0, period).
func Wrap(value, delta, period float64) float64 {
	v := math.Mod(value+delta, period)
	if v < 0 {
		v += period
	}
	return v
}
