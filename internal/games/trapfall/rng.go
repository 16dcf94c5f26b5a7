package trapfall

import "math/rand"

// Stream is a seeded pseudo-random sequence. Its outputs are a pure function
// of the seed and the number of draws taken so far.
type Stream struct {
	seed  int64
	src   *rand.Rand
	draws int64
}

// NewStream creates a stream from a seed.
func NewStream(seed int64) *Stream {
	return &Stream{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NextInt returns an integer in [lo, hi).
// Returns lo without drawing when the range is empty.
func (s *Stream) NextInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.draws++
	return lo + s.src.Intn(hi-lo)
}

// NextFloat returns a float in [0, 1).
func (s *Stream) NextFloat() float64 {
	s.draws++
	return s.src.Float64()
}

// Stir discards one draw.
func (s *Stream) Stir() {
	s.draws++
	s.src.Int63()
}

// Seed returns the seed the stream was created from.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Draws returns how many values have been taken from the stream.
func (s *Stream) Draws() int64 {
	return s.draws
}
