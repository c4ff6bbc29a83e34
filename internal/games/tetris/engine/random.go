package engine

import "math/rand"

// RandomSource picks catalog indices for new pieces. *rand.Rand satisfies it.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewSeeded returns a math/rand source seeded with seed.
func NewSeeded(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Sequence replays a fixed list of values, wrapping around at the end.
// Values are reduced modulo n, so any int list is usable.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// KindSequence is a Sequence that yields the given kinds in order.
func KindSequence(kinds ...Kind) *Sequence {
	values := make([]int, len(kinds))
	for i, k := range kinds {
		values[i] = int(k)
	}
	return &Sequence{values: values}
}

// Intn returns the next value of the sequence modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 || n <= 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
