package wire

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NextPow2 returns the smallest power of two greater than or equal to n.
func NextPow2[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}
	return T(1) << bits.Len64(uint64(n-1))
}

// Roundup rounds n up to the nearest multiple of align. align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
