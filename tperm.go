// Package tperm streams shuffled, non-repeating integer ranges.
//
// The permutation itself lives in package perm; this package holds the
// helpers for sharing one generator between goroutines.
package tperm

import (
	"sync"

	"github.com/tutils/tperm/perm"
)

// SyncGenerator is concurrency safe generator
type SyncGenerator struct {
	g  *perm.Generator
	mu sync.Mutex
}

// NewSyncGenerator create a new SyncGenerator
func NewSyncGenerator(g *perm.Generator) *SyncGenerator {
	return &SyncGenerator{g: g}
}

// Next returns the next value of the wrapped generator.
func (s *SyncGenerator) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Next()
}

// NextN appends n consecutive values to dst under a single lock, so no
// other caller interleaves with them.
func (s *SyncGenerator) NextN(dst []uint64, n int) []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		dst = append(dst, s.g.Next())
	}
	return dst
}

// Undo returns the position at which x was emitted.
func (s *SyncGenerator) Undo(x uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Undo(x)
}

// Position returns the position of the next value.
func (s *SyncGenerator) Position() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Position()
}

// Max returns the inclusive upper bound. It never changes, so no lock is taken.
func (s *SyncGenerator) Max() uint64 {
	return s.g.Max()
}

// Bits returns the width of the generator's domain.
func (s *SyncGenerator) Bits() uint {
	return s.g.Bits()
}
