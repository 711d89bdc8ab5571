// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// QuantizeCeil scales x by the int16 maximum and rounds toward positive
// infinity. Inputs outside [-1, 1] saturate.
func QuantizeCeil(x float32) int16 {
	v := math.Ceil(float64(x) * math.MaxInt16)

	return int16(Clamp(v, math.MinInt16, math.MaxInt16))
}
