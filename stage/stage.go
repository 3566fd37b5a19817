// Package stage builds the linear stages of the permutation pipeline.
//
// A stage maps a bits-wide value z to ((z+Phi)·M)*Mult mod 2^bits: one Weyl
// step, a multiplication by an invertible GF(2) matrix, and one Lehmer step
// with an odd multiplier. Each of the three is a bijection, and the stage
// keeps the pieces needed to run it backwards.
package stage

import (
	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/gf2"
	"github.com/tutils/tperm/modinv"
)

// Phi is the Weyl increment, 2^64 divided by the golden ratio.
const Phi = 0x9e3779b97f4a7c15

// Stage is one forward transform: an invertible matrix and an odd multiplier.
type Stage struct {
	Matrix gf2.Matrix
	Mult   uint64
}

// Pair is a Stage together with its algebraic inverse.
type Pair struct {
	Forward Stage
	// Inverse holds the inverse matrix and the inverse of the multiplier
	// modulo 2^bits.
	Inverse Stage
	mask    uint64
}

// New draws one stage from src: bits values for the matrix, then one for
// the multiplier.
func New(src entropy.Source, bits int) Pair {
	m, inv := gf2.GenerateInvertible(src, bits)
	mult := src.Uint64() | 1
	p := Pair{
		Forward: Stage{Matrix: m, Mult: mult},
		Inverse: Stage{Matrix: inv, Mult: modinv.InverseBits(mult, uint(bits))},
		mask:    modinv.Mask(uint(bits)),
	}
	checkPair(p)
	return p
}

// Build draws count stages in order. The order matters: Backward has to
// visit them last to first.
func Build(src entropy.Source, bits, count int) []Pair {
	pairs := make([]Pair, count)
	for i := range pairs {
		pairs[i] = New(src, bits)
	}
	return pairs
}

// Draws reports how many source values Build consumes.
func Draws(bits, count int) int {
	return count * (bits + 1)
}

// Bits returns the width the pair was built for.
func (p *Pair) Bits() int {
	return p.Forward.Matrix.Bits()
}

// Apply runs the forward stage on z.
func (p *Pair) Apply(z uint64) uint64 {
	z += Phi
	z = gf2.MulVec(z, p.Forward.Matrix)
	return (z * p.Forward.Mult) & p.mask
}

// Unapply runs the inverse stage on z, which must be below 2^bits.
func (p *Pair) Unapply(z uint64) uint64 {
	z = (z * p.Inverse.Mult) & p.mask
	z = gf2.MulVec(z, p.Inverse.Matrix)
	return (z - Phi) & p.mask
}

// Forward applies every pair in order.
func Forward(pairs []Pair, z uint64) uint64 {
	for i := range pairs {
		z = pairs[i].Apply(z)
	}
	return z
}

// Backward undoes Forward by unapplying the pairs last to first.
func Backward(pairs []Pair, z uint64) uint64 {
	for i := len(pairs) - 1; i >= 0; i-- {
		z = pairs[i].Unapply(z)
	}
	return z
}
