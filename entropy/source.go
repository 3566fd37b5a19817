// Package entropy supplies the 64-bit pseudorandom values a permutation is
// built from. None of the sources here are suitable for cryptographic use.
package entropy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	xrand "golang.org/x/exp/rand"
)

// Source produces one 64-bit pseudorandom value per call.
// Every rand.Source64 satisfies it.
type Source interface {
	Uint64() uint64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() uint64

// Uint64 implements Source.
func (f SourceFunc) Uint64() uint64 {
	return f()
}

// ErrUnknownSource is returned by New for a name with no registered constructor.
var ErrUnknownSource = errors.New("entropy: unknown source")

// Newer builds a seeded source.
type Newer func(seed uint64) Source

var newers = map[string]Newer{
	"lcg":      func(seed uint64) Source { return NewLCGSource(seed) },
	"pcg":      func(seed uint64) Source { return NewPCGSource(seed) },
	"splitmix": func(seed uint64) Source { return NewSplitMixSource(seed) },
	"math":     func(seed uint64) Source { return NewMathSource(int64(seed)) },
}

// DefaultName is the source used when none is named.
const DefaultName = "pcg"

// New returns the named source seeded with seed. An empty name selects DefaultName.
func New(name string, seed uint64) (Source, error) {
	if name == "" {
		name = DefaultName
	}
	newer, ok := newers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownSource, name, strings.Join(Names(), ", "))
	}
	return newer(seed), nil
}

// Names lists the registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(newers))
	for name := range newers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPCGSource returns a PCG RXS M XS 64 source seeded with seed.
func NewPCGSource(seed uint64) *xrand.PCGSource {
	src := &xrand.PCGSource{}
	src.Seed(seed)
	return src
}

// NewMathSource wraps the standard library generator. Its output differs
// between Go releases, so seeds are not portable across toolchains.
func NewMathSource(seed int64) Source {
	return rand.NewSource(seed).(rand.Source64)
}
