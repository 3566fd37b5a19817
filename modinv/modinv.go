// Package modinv computes multiplicative inverses modulo powers of two.
package modinv

// Inverse returns y such that x*y == 1 modulo 2^64.
//
// x must be odd; even values have no inverse and the result is undefined.
// Each Newton step doubles the number of correct low bits, so the loop
// runs at most six times.
func Inverse(x uint64) uint64 {
	y := x
	for x*y != 1 {
		y *= 2 - x*y
	}
	return y
}

// InverseBits returns y < 2^bits such that x*y == 1 modulo 2^bits.
// bits must be in [1, 64] and x odd.
func InverseBits(x uint64, bits uint) uint64 {
	mask := Mask(bits)
	y := x & mask
	for (x*y)&mask != 1 {
		y = (y * (2 - x*y)) & mask
	}
	return y
}

// Mask returns 2^bits - 1, with Mask(64) being all ones.
func Mask(bits uint) uint64 {
	return (uint64(2) << (bits - 1)) - 1
}
