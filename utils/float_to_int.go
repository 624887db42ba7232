// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMMax is the largest positive sample value at bitDepth.
func PCMMax(bitDepth int) int {
	return 1<<(bitDepth-1) - 1
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer of
// bitDepth bits. Scaling is symmetric so -1 maps to -PCMMax, not the
// most negative value.
func FloatToPCM(x float32, bitDepth int) int {
	// NaN becomes silence
	if math.IsNaN(float64(x)) {
		return 0
	}
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(math.Round(float64(x) * float64(PCMMax(bitDepth))))
}

// PCMToFloat maps a signed bitDepth-bit sample to [-1, 1).
func PCMToFloat(v, bitDepth int) float32 {
	return float32(float64(v) / float64(int(1)<<(bitDepth-1)))
}
