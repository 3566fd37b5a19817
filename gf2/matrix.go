// Package gf2 implements square bit matrices over GF(2), up to 64x64.
//
// A Matrix stores one uint64 per row; bit j of row i is the entry in
// column j. Addition is XOR and multiplication is AND. Vectors are row
// vectors packed the same way, so v·M is the XOR of the rows of M selected
// by the set bits of v.
package gf2

// MaxBits is the largest supported dimension.
const MaxBits = 64

// Matrix is a square bit matrix. Its dimension is len(m).
type Matrix []uint64

// Identity returns the bits x bits identity matrix.
func Identity(bits int) Matrix {
	m := make(Matrix, bits)
	for i := range m {
		m[i] = 1 << uint(i)
	}
	return m
}

// Bits returns the dimension of m.
func (m Matrix) Bits() int {
	return len(m)
}

// Multiply returns the product a·b. Both operands must have the same dimension.
func Multiply(a, b Matrix) Matrix {
	out := make(Matrix, len(a))
	for i, row := range a {
		out[i] = MulVec(row, b)
	}
	return out
}

// MulVec returns the row vector v·m. Bits of v at or above m.Bits() are ignored.
func MulVec(v uint64, m Matrix) uint64 {
	var r uint64
	for _, row := range m {
		if v&1 != 0 {
			r ^= row
		}
		v >>= 1
	}
	return r
}

// Equal reports whether a and b have the same dimension and entries.
func Equal(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is an identity matrix.
func (m Matrix) IsIdentity() bool {
	for i, row := range m {
		if row != 1<<uint(i) {
			return false
		}
	}
	return true
}

// String renders m one row per line, column 0 first.
func (m Matrix) String() string {
	buf := make([]byte, 0, len(m)*(len(m)+1))
	for _, row := range m {
		for j := range m {
			buf = append(buf, '0'+byte(row>>uint(j)&1))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
