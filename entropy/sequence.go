package entropy

// Sequence replays a fixed list of values, starting over after the last one.
// It is a deterministic stand-in for golden-value tests. An empty Sequence
// always returns 0.
type Sequence struct {
	values []uint64
	next   int
	drawn  int
}

// NewSequence creates a Sequence over a copy of values.
func NewSequence(values ...uint64) *Sequence {
	return &Sequence{values: append([]uint64(nil), values...)}
}

// Uint64 implements Source.
func (s *Sequence) Uint64() uint64 {
	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next++
	if s.next == len(s.values) {
		s.next = 0
	}
	return v
}

// Drawn reports how many values have been taken.
func (s *Sequence) Drawn() int {
	return s.drawn
}
