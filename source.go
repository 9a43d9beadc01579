package random123

import "math/rand"

// Source adapts an Engine over a 64-bit generator to math/rand.Source64,
// so counter-based streams can drive rand.New and everything built on it.
//
// A Source is not safe for concurrent use; wrap it in rand.New and guard
// that as usual.
type Source struct {
	eng *Engine[uint64]
}

// NewSource returns a source over gen keyed by seed.
func NewSource(gen Generator[uint64], seed uint64) *Source {
	return &Source{eng: NewEngineSeeded(gen, seed)}
}

// Uint64 returns the next stream word.
func (s *Source) Uint64() uint64 {
	return s.eng.Next()
}

// Int63 returns the top 63 bits of the next stream word as a
// non-negative int64.
func (s *Source) Int63() int64 {
	return int64(s.eng.Next() >> 1)
}

// Seed rewinds the source to the start of the stream keyed by seed.
func (s *Source) Seed(seed int64) {
	s.eng.Seed(uint64(seed))
}

var _ rand.Source64 = (*Source)(nil)
