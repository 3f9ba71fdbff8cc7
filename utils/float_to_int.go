// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToInt converts a normalized sample to a signed integer of the given
// bit depth (1..64). x is clamped to [-1, 1] and scaled by 2^(bits-1); +1.0
// saturates at the largest representable value.
func FloatToInt(x float64, bits int) int64 {
	// Clamp and scale
	if math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	maxVal := int64(math.MaxInt64) >> uint(64-bits)
	minVal := -maxVal - 1

	scaled := math.Round(math.Ldexp(x, bits-1))
	if scaled >= float64(maxVal) {
		// float64(maxVal) rounds up to 2^(bits-1) for bits > 53
		return maxVal
	}
	if scaled <= float64(minVal) {
		return minVal
	}

	return int64(scaled)
}

// IntToFloat converts a signed integer sample of the given bit depth to the
// normalized range [-1, 1).
func IntToFloat(v int64, bits int) float64 {
	return math.Ldexp(float64(v), 1-bits)
}
