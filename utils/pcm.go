// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMRange returns the smallest and largest signed value a PCM sample of
// width bytes can hold.
func PCMRange(width int) (lo, hi int64) {
	hi = int64(1)<<(8*width-1) - 1
	return -hi - 1, hi
}

// Saturate clamps v into the range of a width byte PCM sample.
func Saturate(v int64, width int) int64 {
	lo, hi := PCMRange(width)
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// PCMToFloat scales a signed PCM value of the given width into [-1, 1).
func PCMToFloat(v int64, width int) float32 {
	return float32(float64(v) / float64(int64(1)<<(8*width-1)))
}

// FloatToPCM is the inverse of PCMToFloat. Values outside [-1, 1] saturate.
func FloatToPCM(x float32, width int) int64 {
	scaled := math.Round(float64(x) * float64(int64(1)<<(8*width-1)))
	lo, hi := PCMRange(width)
	if scaled >= float64(hi) {
		return hi
	}
	if scaled <= float64(lo) {
		return lo
	}
	return int64(scaled)
}
