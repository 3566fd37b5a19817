package perm

import (
	"math/bits"

	"github.com/tutils/tperm/counter"
	"github.com/tutils/tperm/mix"
	"github.com/tutils/tperm/modinv"
	"github.com/tutils/tperm/stage"
)

// Stages is the number of linear stages in the pipeline.
const Stages = 4

// Generator produces a permutation of [0, max] one value at a time.
// Only the position changes after construction.
type Generator struct {
	stages   []stage.Pair
	mix      mix.Constants
	bits     uint
	mask     uint64
	max      uint64
	position uint64

	rejects counter.Counter
}

// New creates a Generator over [0, max]. It draws Draws(max) values from the
// configured source and nothing afterwards.
func New(max uint64, opts ...Option) *Generator {
	opt := newOptions(opts...)
	w := Width(max)
	return &Generator{
		stages:  stage.Build(opt.source, int(w), Stages),
		mix:     mix.For(w),
		bits:    w,
		mask:    modinv.Mask(w),
		max:     max,
		rejects: opt.rejectCounter,
	}
}

// Width returns the number of bits needed to hold max, at least 1.
func Width(max uint64) uint {
	if max == 0 {
		return 1
	}
	return uint(bits.Len64(max))
}

// Draws returns how many entropy values New consumes for max.
func Draws(max uint64) int {
	return stage.Draws(int(Width(max)), Stages)
}

// Max returns the inclusive upper bound.
func (g *Generator) Max() uint64 {
	return g.max
}

// Bits returns the width of the internal domain.
func (g *Generator) Bits() uint {
	return g.bits
}

// Position returns the position the next call to Next will emit.
func (g *Generator) Position() uint64 {
	return g.position
}

// SetPosition moves the generator so that the next call to Next emits the
// value at position p.
func (g *Generator) SetPosition(p uint64) error {
	if p > g.max {
		return ErrOutOfRange
	}
	g.position = p
	return nil
}

// Reset rewinds the generator to position 0.
func (g *Generator) Reset() {
	g.position = 0
}

// Next returns the value at the current position and advances it, wrapping
// to 0 after max. Every max+1 consecutive calls return each value in
// [0, max] exactly once, and the sequence then repeats.
func (g *Generator) Next() uint64 {
	p := g.position
	if p < g.max {
		g.position = p + 1
	} else {
		g.position = 0
	}
	v, rounds := g.at(p)
	if g.rejects != nil && rounds > 1 {
		g.rejects.Add(int64(rounds - 1))
	}
	return v
}

// At returns the value emitted at position p without moving the generator.
// p must not exceed max.
func (g *Generator) At(p uint64) uint64 {
	v, _ := g.at(p)
	return v
}

func (g *Generator) at(p uint64) (uint64, int) {
	z := p
	rounds := 0
	for {
		rounds++
		z = stage.Forward(g.stages, z)
		z = g.mix.Apply(z)
		if z <= g.max {
			return z, rounds
		}
	}
}

// Undo returns the position at which x was emitted. x must be a value this
// generator emits; for anything else the result is unspecified, and a value
// above max may never return.
func (g *Generator) Undo(x uint64) uint64 {
	checkUndo(g, x)
	z := x & g.mask
	for {
		z = g.mix.Unapply(z)
		z = stage.Backward(g.stages, z)
		if z <= g.max {
			return z
		}
	}
}

// UndoChecked is Undo for untrusted input: values above max were never
// emitted and yield ErrOutOfRange.
func (g *Generator) UndoChecked(x uint64) (uint64, error) {
	if x > g.max {
		return 0, ErrOutOfRange
	}
	return g.Undo(x), nil
}
