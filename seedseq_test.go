package random123

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSeqDeterministic(t *testing.T) {
	a := NewSeedSeq([]byte("simulation run 7"))
	b := NewSeedSeq([]byte("simulation run 7"))
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "word %d", i)
	}
}

func TestSeedSeqEntropySensitivity(t *testing.T) {
	a := NewSeedSeq([]byte("run 7"))
	b := NewSeedSeq([]byte("run 8"))
	assert.NotEqual(t, a.Uint64(), b.Uint64())

	// Word packing is order-sensitive.
	c := NewSeedSeqWords(1, 2)
	d := NewSeedSeqWords(2, 1)
	assert.NotEqual(t, c.Uint64(), d.Uint64())
}

func TestSeedSeqGenerate(t *testing.T) {
	seq := NewSeedSeqWords(42)

	key32 := make([]uint32, 4)
	seq.Generate32(key32)
	assert.NotEqual(t, []uint32{0, 0, 0, 0}, key32)

	// The stream continues across calls rather than restarting.
	more := make([]uint32, 4)
	seq.Generate32(more)
	assert.NotEqual(t, key32, more)

	// Word widths interleave on one byte stream: a uint64 is two uint32
	// draws, low half first.
	x := NewSeedSeqWords(42)
	y := NewSeedSeqWords(42)
	lo, hi := x.Uint32(), x.Uint32()
	assert.Equal(t, uint64(lo)|uint64(hi)<<32, y.Uint64())
}

// Drawing past one hash block must roll the chain forward, not repeat it.
func TestSeedSeqChains(t *testing.T) {
	seq := NewSeedSeqWords(1)
	first := make([]uint64, 8) // exactly one 64-byte block
	seq.Generate64(first)
	second := make([]uint64, 8)
	seq.Generate64(second)
	assert.NotEqual(t, first, second)
}
