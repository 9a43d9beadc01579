package random123

import (
	"encoding/binary"

	"github.com/opd-ai/go-random123/internal"
)

// SeedSeq is a deterministic stretcher of seed entropy into key material,
// based on Blake2b. It turns a byte string of any length into as many key
// words as callers ask for, so one piece of entropy can key generators
// with different key shapes.
//
// The sequence maintains a 64-byte state that is repeatedly hashed with
// Blake2b to produce a stream of pseudo-random bytes.
type SeedSeq struct {
	data [64]byte // Current Blake2b-512 output
	pos  int      // Position in current output (0-63)
}

// NewSeedSeq creates a SeedSeq initialized with entropy. The entropy is
// hashed with Blake2b-512 to create the initial state.
func NewSeedSeq(entropy []byte) *SeedSeq {
	s := &SeedSeq{
		pos: 64, // Force initial generation
	}

	hash := internal.Blake2b512(entropy)
	copy(s.data[:], hash[:])

	return s
}

// NewSeedSeqWords creates a SeedSeq from integer seeds, packed
// little-endian in order.
func NewSeedSeqWords(seeds ...uint64) *SeedSeq {
	buf := make([]byte, 0, 8*len(seeds))
	for _, seed := range seeds {
		buf = binary.LittleEndian.AppendUint64(buf, seed)
	}
	return NewSeedSeq(buf)
}

// generate produces the next 64 bytes of pseudo-random data by hashing
// the current state.
func (s *SeedSeq) generate() {
	hash := internal.Blake2b512(s.data[:])
	copy(s.data[:], hash[:])
	s.pos = 0
}

// nextByte returns the next pseudo-random byte.
func (s *SeedSeq) nextByte() byte {
	if s.pos >= 64 {
		s.generate()
	}
	b := s.data[s.pos]
	s.pos++
	return b
}

// Uint32 returns the next key word in little-endian format.
func (s *SeedSeq) Uint32() uint32 {
	b0 := uint32(s.nextByte())
	b1 := uint32(s.nextByte())
	b2 := uint32(s.nextByte())
	b3 := uint32(s.nextByte())

	return b0 | b1<<8 | b2<<16 | b3<<24
}

// Uint64 returns the next key word in little-endian format.
func (s *SeedSeq) Uint64() uint64 {
	lo := uint64(s.Uint32())
	hi := uint64(s.Uint32())
	return lo | hi<<32
}

// Generate32 fills dst with successive key words.
func (s *SeedSeq) Generate32(dst []uint32) {
	for i := range dst {
		dst[i] = s.Uint32()
	}
}

// Generate64 fills dst with successive key words.
func (s *SeedSeq) Generate64(dst []uint64) {
	for i := range dst {
		dst[i] = s.Uint64()
	}
}
