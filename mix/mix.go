// Package mix provides a width-parameterized avalanche finalizer and its
// exact inverse.
//
// The finalizer is the murmur3 shape, xorshift-multiply-xorshift-multiply-xorshift,
// computed modulo 2^bits with constants tuned per width. Every step is a
// bijection on [0, 2^bits), so the whole function is one too.
package mix

import "github.com/tutils/tperm/modinv"

// MaxBits is the widest supported width.
const MaxBits = 64

type param struct {
	s [3]uint8
	m [2]uint64
}

// identityParam is used below 8 bits, where mixing is effectively disabled.
var identityParam = param{s: [3]uint8{1, 1, 1}, m: [2]uint64{1, 1}}

// Constants is the finalizer configuration for one width.
type Constants struct {
	Bits       uint
	S0, S1, S2 uint
	M0, M1     uint64
	// IM0 and IM1 are the inverses of M0 and M1 modulo 2^64.
	IM0, IM1 uint64
}

// table is filled once at start-up and only read afterwards.
var table = func() (t [MaxBits + 1]Constants) {
	for bits := 1; bits <= MaxBits; bits++ {
		p := params[bits]
		if p.m[0] == 0 {
			p = identityParam
		}
		t[bits] = Constants{
			Bits: uint(bits),
			S0:   uint(p.s[0]),
			S1:   uint(p.s[1]),
			S2:   uint(p.s[2]),
			M0:   p.m[0],
			M1:   p.m[1],
			IM0:  modinv.Inverse(p.m[0]),
			IM1:  modinv.Inverse(p.m[1]),
		}
	}
	return t
}()

// For returns the constants for bits, which must be in [1, MaxBits].
func For(bits uint) Constants {
	return table[bits]
}

// Mask returns the value mask for the configured width.
func (c Constants) Mask() uint64 {
	return modinv.Mask(c.Bits)
}

// Apply mixes z, which must be below 2^Bits.
func (c Constants) Apply(z uint64) uint64 {
	mask := c.Mask()
	z ^= z >> c.S0
	z = (z * c.M0) & mask
	z ^= z >> c.S1
	z = (z * c.M1) & mask
	z ^= z >> c.S2
	return z
}

// Unapply inverts Apply for any z below 2^Bits.
func (c Constants) Unapply(z uint64) uint64 {
	mask := c.Mask()
	z = unxorshift(z, c.S2, c.Bits)
	z = (z * c.IM1) & mask
	z = unxorshift(z, c.S1, c.Bits)
	z = (z * c.IM0) & mask
	z = unxorshift(z, c.S0, c.Bits)
	return z
}

// unxorshift inverts z ^= z>>s on a bits-wide value.
//
// Applying the step once leaves x ^ x>>2s, again with 2s leaves x ^ x>>4s,
// and so on; once the shift reaches the width the second term is gone.
// A fixed number of rounds is only enough when the shift is large relative
// to the width, which is not the case for the shift-1 configurations.
func unxorshift(z uint64, s, bits uint) uint64 {
	for ; s < bits; s <<= 1 {
		z ^= z >> s
	}
	return z
}
