// SPDX-License-Identifier: EPL-2.0

package utils

import "golang.org/x/exp/constraints"

// FloatToPCM scales a normalized sample in [-1, 1] to T.
// Values are rounded and clamped, so x == 1 yields T's maximum.
func FloatToPCM[T constraints.Signed](x float32) T {
	return SaturateRound[T](float64(x) * Amplitude[T]())
}

// PCMToFloat scales v to the normalized [-1, 1) range.
func PCMToFloat[T constraints.Signed](v T) float32 {
	return float32(float64(v) / Amplitude[T]())
}
