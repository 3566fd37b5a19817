package gf2

import "github.com/tutils/tperm/entropy"

// GenerateInvertible draws bits values from src and returns a random
// invertible bits x bits matrix together with its inverse.
//
// The matrix is the product U·L of an upper- and a lower-unitriangular
// matrix. Both factors are invertible by construction and their inverses
// come from back-substitution, so no elimination is needed. Matrices that
// have no such factorization are never produced.
//
// bits must be in [1, MaxBits].
func GenerateInvertible(src entropy.Source, bits int) (m, inv Matrix) {
	mask := uint64(2)<<uint(bits-1) - 1
	upper := make(Matrix, bits)
	lower := make(Matrix, bits)
	for i := 0; i < bits; i++ {
		r := src.Uint64()
		// one draw feeds both factors: the low bits fill row i of upper
		// right of the diagonal, the high bits fill row i of lower left of it.
		upper[i] = ((r + r + 1) << uint(i)) & mask
		lower[i] = (r | 1<<63) >> uint(63-i)
	}
	m = Multiply(upper, lower)
	inv = Multiply(invertLower(lower), invertUpper(upper))
	return m, inv
}

// invertUpper inverts a matrix whose row i has bit i set and no bits below i.
func invertUpper(u Matrix) Matrix {
	bits := len(u)
	iu := Identity(bits)
	for i := bits - 2; i >= 0; i-- {
		r := iu[i]
		for j := bits - 1; j > i; j-- {
			if u[i]>>uint(j)&1 != 0 {
				r ^= iu[j]
			}
		}
		iu[i] = r
	}
	return iu
}

// invertLower inverts a matrix whose row i has bit i set and no bits above i.
func invertLower(l Matrix) Matrix {
	bits := len(l)
	il := Identity(bits)
	for i := 1; i < bits; i++ {
		r := il[i]
		for j := 0; j < i; j++ {
			if l[i]>>uint(j)&1 != 0 {
				r ^= il[j]
			}
		}
		il[i] = r
	}
	return il
}
