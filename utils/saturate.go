// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the storage width of T in bits.
func Bits[T constraints.Signed]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Bounds returns the smallest and largest value representable by T.
func Bounds[T constraints.Signed]() (lo, hi int64) {
	hi = int64(1)<<(Bits[T]()-1) - 1
	return -hi - 1, hi
}

// SaturateCast converts v to T, clamping to T's range.
func SaturateCast[T constraints.Signed](v int64) T {
	lo, hi := Bounds[T]()
	if v < lo {
		return T(lo)
	}
	if v > hi {
		return T(hi)
	}
	return T(v)
}

// SaturateRound rounds v half away from zero and clamps it to T's range.
// NaN maps to zero.
func SaturateRound[T constraints.Signed](v float64) T {
	if math.IsNaN(v) {
		return 0
	}
	lo, hi := Bounds[T]()
	r := math.Round(v)
	if r <= float64(lo) {
		return T(lo)
	}
	if r >= float64(hi) {
		return T(hi)
	}
	return T(r)
}

// Amplitude returns 2^(bits-1) for T, the magnitude that maps to 1.0 in
// normalized floating-point space (128 for int8, 32768 for int16).
func Amplitude[T constraints.Signed]() float64 {
	return float64(uint64(1) << (Bits[T]() - 1))
}
