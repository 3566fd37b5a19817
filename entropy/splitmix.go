package entropy

// golden ratio increment
const splitMixGamma = 0x9e3779b97f4a7c15

// SplitMixSource is Vigna's SplitMix64: a Weyl sequence passed through a
// 64-bit finalizer. Every seed gives a full 2^64 period.
type SplitMixSource struct {
	state uint64
}

// NewSplitMixSource creates a SplitMixSource starting at seed.
func NewSplitMixSource(seed uint64) *SplitMixSource {
	return &SplitMixSource{state: seed}
}

// Uint64 implements Source.
func (s *SplitMixSource) Uint64() uint64 {
	s.state += splitMixGamma
	return Mix64(s.state)
}

// Mix64 is the SplitMix64 finalizer. It is a bijection on uint64.
func Mix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
