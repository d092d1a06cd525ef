// Package mathutil provides small generic numeric helpers.
package mathutil

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed interval [lo, hi].
// NaN inputs for floating-point types are returned as lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Order returns a and b sorted so that the first result is not greater than
// the second.
func Order[T constraints.Ordered](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}
