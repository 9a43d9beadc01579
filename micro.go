package random123

import "fmt"

// microReservedBits is the number of counter bits a MicroRNG claims for
// its own block index, giving every (ctr, key) point a sub-stream of
// BlockLen * 2^32 words.
const microReservedBits = 32

// MicroRNG is a bounded word stream carved out of a single (ctr, key)
// point. It keeps the caller's counter words fixed and walks a 32-bit
// block index through the reserved top bits of the last word, so many
// independent streams can share one key without coordinating counters.
// When the reserved bits are spent, Next panics rather than silently
// reusing a block.
//
// A MicroRNG is not safe for concurrent use.
type MicroRNG[W Word] struct {
	gen Generator[W]
	ctr []W
	key []W
	buf []W
	idx int
	n   uint64
}

// NewMicroRNG returns a MicroRNG over gen rooted at (ctr, key). The
// counter and key lengths must match the generator; the reserved bits of
// the last counter word, the whole word for 32-bit generators and the
// high half for 64-bit ones, must be zero.
func NewMicroRNG[W Word](gen Generator[W], ctr, key []W) (*MicroRNG[W], error) {
	if len(ctr) != gen.BlockLen() {
		return nil, fmt.Errorf("%w: %s wants %d counter words, got %d",
			ErrCounterSize, gen.Name(), gen.BlockLen(), len(ctr))
	}
	if len(key) != gen.KeyLen() {
		return nil, fmt.Errorf("%w: %s wants %d key words, got %d",
			ErrKeySize, gen.Name(), gen.KeyLen(), len(key))
	}
	switch last := any(ctr[len(ctr)-1]).(type) {
	case uint32:
		if last != 0 {
			return nil, fmt.Errorf("%w: %s top counter word must be zero, got %#x",
				ErrCounterHighBits, gen.Name(), last)
		}
	case uint64:
		if last>>microReservedBits != 0 {
			return nil, fmt.Errorf("%w: %s top counter word must fit 32 bits, got %#x",
				ErrCounterHighBits, gen.Name(), last)
		}
	}
	m := &MicroRNG[W]{
		gen: gen,
		ctr: make([]W, len(ctr)),
		key: make([]W, len(key)),
		buf: make([]W, gen.BlockLen()),
		idx: -1,
	}
	copy(m.ctr, ctr)
	copy(m.key, key)
	return m, nil
}

// Next returns the next word of the sub-stream. It panics once all
// BlockLen * 2^32 words have been produced.
func (m *MicroRNG[W]) Next() W {
	if m.idx < 0 {
		if m.n>>microReservedBits != 0 {
			panic("random123: MicroRNG exhausted")
		}
		setBlockIndex(m.ctr, m.n)
		m.gen.Block(m.buf, m.ctr, m.key)
		m.n++
		m.idx = len(m.buf) - 1
	}
	w := m.buf[m.idx]
	m.idx--
	return w
}

// Remaining reports how many more words Next can produce before it
// panics.
func (m *MicroRNG[W]) Remaining() uint64 {
	blocks := uint64(1)<<microReservedBits - m.n
	return blocks*uint64(len(m.buf)) + uint64(m.idx+1)
}

// setBlockIndex writes the block index into the reserved bits of the
// last counter word.
func setBlockIndex[W Word](ctr []W, n uint64) {
	last := len(ctr) - 1
	switch c := any(ctr).(type) {
	case []uint32:
		c[last] = uint32(n)
	case []uint64:
		c[last] = c[last]&0xFFFFFFFF | n<<microReservedBits
	}
}
