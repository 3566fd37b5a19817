package perm

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tutils/tperm/counter/period"
	"github.com/tutils/tperm/entropy"
)

// fullCycle calls Next max+1 times and checks the result is a permutation
// whose every value undoes to its call index.
func fullCycle(t *testing.T, g *Generator) []uint64 {
	t.Helper()
	n := g.Max() + 1
	seen := make([]bool, n)
	out := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		v := g.Next()
		require.LessOrEqual(t, v, g.Max(), "call %d", i)
		require.False(t, seen[v], "value %d repeated at call %d", v, i)
		seen[v] = true
		require.Equal(t, i, g.Undo(v), "undo of call %d", i)
		out = append(out, v)
	}
	return out
}

func TestPermutation(t *testing.T) {
	for _, max := range []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 15, 16, 100, 127, 128, 255, 256, 1000, 4095, 40000} {
		g := New(max, WithSource(entropy.NewPCGSource(max+1)))
		fullCycle(t, g)
		require.Equal(t, uint64(0), g.Position(), "max=%d wraps", max)
	}
}

func TestPeriod(t *testing.T) {
	g := New(999, WithSource(entropy.NewSplitMixSource(3)))
	first := fullCycle(t, g)
	second := fullCycle(t, g)
	require.Equal(t, first, second)
}

func TestMaxThree(t *testing.T) {
	seq := entropy.NewSequence(0x243f6a8885a308d3, 0x13198a2e03707344, 0xa4093822299f31d0)
	g := New(3, WithSource(seq))
	require.Equal(t, uint(2), g.Bits())
	require.Equal(t, Draws(3), seq.Drawn())
	require.Equal(t, 12, seq.Drawn())

	var got []uint64
	for i := 0; i < 4; i++ {
		got = append(got, g.Next())
	}
	require.ElementsMatch(t, []uint64{0, 1, 2, 3}, got)
	for i, v := range got {
		require.Equal(t, uint64(i), g.Undo(v))
	}
	require.Equal(t, got[0], g.Next())
}

func TestMaxZero(t *testing.T) {
	g := New(0)
	require.Equal(t, uint(1), g.Bits())
	for i := 0; i < 5; i++ {
		require.Zero(t, g.Next())
		require.Zero(t, g.Undo(0))
		require.Zero(t, g.Position())
	}
}

func TestDeterministic(t *testing.T) {
	a := New(1<<20, WithSource(entropy.NewLCGSource(8)))
	b := New(1<<20, WithSource(entropy.NewLCGSource(8)))
	c := New(1<<20, WithSource(entropy.NewLCGSource(9)))
	same, differ := true, false
	for i := 0; i < 64; i++ {
		va, vb, vc := a.Next(), b.Next(), c.Next()
		same = same && va == vb
		differ = differ || va != vc
	}
	require.True(t, same)
	require.True(t, differ)
}

func TestLargeRanges(t *testing.T) {
	for _, max := range []uint64{1<<32 - 1, 1 << 32, 1<<40 + 7, 1<<63 + 12345, ^uint64(0)} {
		g := New(max, WithSource(entropy.NewPCGSource(max)))
		require.Equal(t, Width(max), g.Bits())
		seen := make(map[uint64]bool)
		for i := uint64(0); i < 5000; i++ {
			v := g.Next()
			require.LessOrEqual(t, v, max)
			require.False(t, seen[v])
			seen[v] = true
			require.Equal(t, i, g.Undo(v), "max=%#x call %d", max, i)
		}
	}
}

func TestWidth(t *testing.T) {
	cases := map[uint64]uint{0: 1, 1: 1, 2: 2, 3: 2, 4: 3, 255: 8, 256: 9, 1<<63 - 1: 63, 1 << 63: 64, ^uint64(0): 64}
	for max, want := range cases {
		require.Equal(t, want, Width(max), "max=%d", max)
	}
}

func TestAtAndSeek(t *testing.T) {
	g := New(500, WithSource(entropy.NewPCGSource(21)))
	want := make([]uint64, 501)
	for i := range want {
		want[i] = g.Next()
	}
	for i := range want {
		require.Equal(t, want[i], g.At(uint64(i)))
	}

	require.NoError(t, g.SetPosition(250))
	require.Equal(t, want[250], g.Next())
	require.Equal(t, uint64(251), g.Position())

	err := g.SetPosition(501)
	require.True(t, errors.Is(err, ErrOutOfRange))
	require.Equal(t, uint64(251), g.Position())

	g.Reset()
	require.Equal(t, want[0], g.Next())
}

func TestUndoChecked(t *testing.T) {
	g := New(1000, WithSource(entropy.NewPCGSource(4)))
	v := g.Next()
	p, err := g.UndoChecked(v)
	require.NoError(t, err)
	require.Zero(t, p)

	_, err = g.UndoChecked(1001)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestRejectCounter(t *testing.T) {
	// 256 needs 9 bits, so about half of the pipeline outputs land
	// out of range.
	c := period.NewPeriodCounter(time.Hour)
	g := New(256, WithSource(entropy.NewPCGSource(6)), WithRejectCounter(c))
	for i := 0; i < 257; i++ {
		g.Next()
	}
	require.Positive(t, c.Value())

	full := period.NewPeriodCounter(time.Hour)
	g = New(255, WithSource(entropy.NewPCGSource(6)), WithRejectCounter(full))
	for i := 0; i < 256; i++ {
		g.Next()
	}
	require.Zero(t, full.Value(), "a full power-of-two range never rejects")
}

func TestDefaultSource(t *testing.T) {
	a, b := New(77), New(77, WithSource(entropy.NewPCGSource(DefaultSeed)))
	for i := 0; i < 78; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func BenchmarkNext(b *testing.B) {
	for _, max := range []uint64{1000, 1<<32 + 1, ^uint64(0)} {
		g := New(max)
		b.Run(fmt.Sprintf("max=%#x", max), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				g.Next()
			}
		})
	}
}

func BenchmarkUndo(b *testing.B) {
	g := New(1<<40 + 1)
	v := g.Next()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Undo(v)
	}
}
