// Package checkpoint saves and restores a generator's place in its sequence.
//
// A generator is fully determined by its range, its entropy source and
// seed, and its position, so a checkpoint stores only those and rebuilds
// the rest. Tokens are printable and safe to pass on a command line.
package checkpoint

import (
	"encoding/base64"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"

	"github.com/tutils/tperm/entropy"
	"github.com/tutils/tperm/perm"
)

// ErrMalformed is returned when a token cannot be decoded.
var ErrMalformed = errors.New("checkpoint: malformed token")

// Prefix marks a string as a checkpoint token.
const Prefix = "@"

// Checkpoint identifies a generator and a position in its sequence.
type Checkpoint struct {
	Max      uint64
	Seed     uint64
	Source   string
	Position uint64
}

// Encode returns the token for c.
func (c Checkpoint) Encode() (string, error) {
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawURLEncoding, w1)
	if err := gob.NewEncoder(w2).Encode(c); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return Prefix + w1.String(), nil
}

// Decode parses a token produced by Encode. The leading Prefix is optional.
func Decode(s string) (Checkpoint, error) {
	var c Checkpoint
	r1 := strings.NewReader(strings.TrimPrefix(s, Prefix))
	r2 := base64.NewDecoder(base64.RawURLEncoding, r1)
	if err := gob.NewDecoder(r2).Decode(&c); err != nil {
		return Checkpoint{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if c.Position > c.Max {
		return Checkpoint{}, fmt.Errorf("%w: position %d above max %d", ErrMalformed, c.Position, c.Max)
	}
	return c, nil
}

// Generator rebuilds the generator c describes, positioned at c.Position.
func (c Checkpoint) Generator(opts ...perm.Option) (*perm.Generator, error) {
	src, err := entropy.New(c.Source, c.Seed)
	if err != nil {
		return nil, err
	}
	g := perm.New(c.Max, append([]perm.Option{perm.WithSource(src)}, opts...)...)
	if err := g.SetPosition(c.Position); err != nil {
		return nil, err
	}
	return g, nil
}

// Of returns the checkpoint for g's current position. max, seed and source
// must be the values g was built with; a generator does not remember them.
func Of(g *perm.Generator, seed uint64, source string) Checkpoint {
	return Checkpoint{
		Max:      g.Max(),
		Seed:     seed,
		Source:   source,
		Position: g.Position(),
	}
}
