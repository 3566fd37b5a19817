package mix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tutils/tperm/entropy"
)

func TestTableConstants(t *testing.T) {
	for bits := uint(1); bits <= MaxBits; bits++ {
		c := For(bits)
		require.Equal(t, bits, c.Bits)
		require.Equal(t, uint64(1), c.M0*c.IM0, "bits=%d", bits)
		require.Equal(t, uint64(1), c.M1*c.IM1, "bits=%d", bits)
		require.NotZero(t, c.S0)
		require.NotZero(t, c.S1)
		require.NotZero(t, c.S2)
		if bits < 8 {
			require.Equal(t, identityParam.m, [2]uint64{c.M0, c.M1})
		}
	}
	require.Equal(t, Constants{
		Bits: 64, S0: 30, S1: 26, S2: 34,
		M0: 0xee291b1b5f61cc4d, M1: 0xc2d00d8e4dfb2929,
		IM0: For(64).IM0, IM1: For(64).IM1,
	}, For(64))
}

// Small widths are checked exhaustively, the rest on a sample.
func TestRoundTripEveryWidth(t *testing.T) {
	src := entropy.NewSplitMixSource(7)
	for bits := uint(1); bits <= MaxBits; bits++ {
		c := For(bits)
		mask := c.Mask()
		if bits <= 16 {
			for z := uint64(0); z <= mask; z++ {
				y := c.Apply(z)
				require.LessOrEqual(t, y, mask)
				require.Equal(t, z, c.Unapply(y), "bits=%d z=%#x", bits, z)
			}
			continue
		}
		for _, z := range []uint64{0, 1, mask, mask >> 1, mask ^ 1} {
			require.Equal(t, z, c.Unapply(c.Apply(z)), "bits=%d z=%#x", bits, z)
		}
		for i := 0; i < 20000; i++ {
			z := src.Uint64() & mask
			y := c.Apply(z)
			require.LessOrEqual(t, y, mask)
			require.Equal(t, z, c.Unapply(y), "bits=%d z=%#x", bits, z)
			require.Equal(t, z, c.Apply(c.Unapply(z)), "bits=%d z=%#x", bits, z)
		}
	}
}

func TestApplyIsPermutation(t *testing.T) {
	for bits := uint(1); bits <= 12; bits++ {
		c := For(bits)
		seen := make([]bool, c.Mask()+1)
		for z := uint64(0); z <= c.Mask(); z++ {
			y := c.Apply(z)
			require.False(t, seen[y], "bits=%d collision at %#x", bits, y)
			seen[y] = true
		}
	}
}

func TestUnxorshift(t *testing.T) {
	// shift 1 on 7 bits needs more rounds than a fixed three-term inverse gives
	for z := uint64(0); z < 128; z++ {
		require.Equal(t, z, unxorshift(z^z>>1, 1, 7))
	}
	require.Equal(t, uint64(0x8000000000000001), unxorshift(0x8000000000000001, 64, 64))
}
