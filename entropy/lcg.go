package entropy

import "math/rand"

var _ rand.Source = (*LCGSource)(nil)
var _ rand.Source64 = (*LCGSource)(nil)

// LCGSource is a 64-bit linear congruential generator.
// The low bits have short periods; the high bits are the useful ones.
type LCGSource struct {
	state uint64
}

// Knuth's MMIX parameters
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// NewLCGSource creates an LCGSource starting at seed.
func NewLCGSource(seed uint64) *LCGSource {
	return &LCGSource{state: seed}
}

// Seed implements rand.Source.
func (l *LCGSource) Seed(seed int64) {
	l.state = uint64(seed)
}

// Uint64 implements rand.Source64.
func (l *LCGSource) Uint64() uint64 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return l.state
}

// Int63 implements rand.Source.
func (l *LCGSource) Int63() int64 {
	return int64(l.Uint64() >> 1)
}
