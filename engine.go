package random123

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

var (
	// ErrRounds reports a round count outside a family's valid range.
	ErrRounds = errors.New("random123: round count out of range")
	// ErrKeySize reports a key slice whose length differs from KeyLen.
	ErrKeySize = errors.New("random123: key length mismatch")
	// ErrCounterSize reports a counter slice whose length differs from BlockLen.
	ErrCounterSize = errors.New("random123: counter length mismatch")
	// ErrCounterIndex reports a sub-index outside [0, BlockLen).
	ErrCounterIndex = errors.New("random123: counter sub-index out of range")
	// ErrCounterHighBits reports counter words that collide with bits
	// reserved for internal block indexing.
	ErrCounterHighBits = errors.New("random123: counter high bits reserved")
	// ErrUnknownGenerator reports a family name with no registered constructor.
	ErrUnknownGenerator = errors.New("random123: unknown generator")
)

// Word is the set of word widths the counter-based generators operate on.
// The constraint is exact so generic code can recover the width with a
// type switch.
type Word interface {
	uint32 | uint64
}

// Generator is a keyed bijection over fixed-length blocks of words. A
// Generator holds no stream state, only its round count: the same
// (ctr, key) pair always yields the same block, and under any fixed key
// distinct counters yield distinct blocks.
//
// Block writes the image of ctr under key into dst. dst and ctr must hold
// at least BlockLen words and key at least KeyLen words; Block reads and
// writes only those.
type Generator[W Word] interface {
	// Name reports the family name, e.g. "threefry4x64".
	Name() string
	// BlockLen reports the number of counter words per block.
	BlockLen() int
	// KeyLen reports the number of key words.
	KeyLen() int
	// Rounds reports the configured round count.
	Rounds() int
	// Block applies the bijection to ctr under key, writing into dst.
	Block(dst, ctr, key []W)
}

// Engine adapts a Generator into a sequential word stream. It walks the
// counter space one block at a time and deals each block's words out from
// the top index down, so a stream position is exactly a (counter,
// sub-index) pair and any position can be restored in constant time.
//
// An Engine is not safe for concurrent use.
type Engine[W Word] struct {
	gen Generator[W]
	ctr []W
	key []W
	buf []W
	idx int
}

// NewEngine returns an Engine over gen with an all-zero key, positioned
// before the first block.
func NewEngine[W Word](gen Generator[W]) *Engine[W] {
	return &Engine[W]{
		gen: gen,
		ctr: make([]W, gen.BlockLen()),
		key: make([]W, gen.KeyLen()),
		buf: make([]W, gen.BlockLen()),
		idx: -1,
	}
}

// NewEngineSeeded returns an Engine keyed by seed; see Seed for how the
// seed maps onto the key words.
func NewEngineSeeded[W Word](gen Generator[W], seed uint64) *Engine[W] {
	e := NewEngine(gen)
	e.Seed(seed)
	return e
}

// NewEngineFromKey returns an Engine using the given key words verbatim.
// The key length must match gen.KeyLen.
func NewEngineFromKey[W Word](gen Generator[W], key []W) (*Engine[W], error) {
	if len(key) != gen.KeyLen() {
		return nil, fmt.Errorf("%w: %s wants %d key words, got %d",
			ErrKeySize, gen.Name(), gen.KeyLen(), len(key))
	}
	e := NewEngine(gen)
	copy(e.key, key)
	return e, nil
}

// NewEngineFromSeedSeq returns an Engine whose key words are drawn from
// seq in order.
func NewEngineFromSeedSeq[W Word](gen Generator[W], seq *SeedSeq) *Engine[W] {
	e := NewEngine(gen)
	switch key := any(e.key).(type) {
	case []uint32:
		seq.Generate32(key)
	case []uint64:
		seq.Generate64(key)
	}
	return e
}

// Next returns the next word of the stream. The counter advances to a
// fresh block whenever the current one is spent; within a block, words
// come out from index BlockLen-1 down to 0.
func (e *Engine[W]) Next() W {
	if e.idx < 0 {
		incrWords(e.ctr, 1)
		e.gen.Block(e.buf, e.ctr, e.key)
		e.idx = len(e.buf) - 1
	}
	w := e.buf[e.idx]
	e.idx--
	return w
}

// Discard advances the stream by n words without producing them, leaving
// the engine in the state n consecutive Next calls would. Whole blocks
// are skipped with counter arithmetic, so n may be any uint64.
func (e *Engine[W]) Discard(n uint64) {
	if e.idx >= 0 {
		avail := uint64(e.idx + 1)
		if n < avail {
			e.idx -= int(n)
			return
		}
		n -= avail
		e.idx = -1
	}
	size := uint64(len(e.buf))
	blocks, rem := n/size, n%size
	if rem == 0 {
		incrWords(e.ctr, blocks)
		return
	}
	incrWords(e.ctr, blocks+1)
	e.gen.Block(e.buf, e.ctr, e.key)
	e.idx = len(e.buf) - 1 - int(rem)
}

// SetCounter positions the stream so the next call to Next returns word
// sub of the block at ctr. The counter length must match BlockLen and sub
// must lie in [0, BlockLen).
func (e *Engine[W]) SetCounter(ctr []W, sub int) error {
	if len(ctr) != len(e.ctr) {
		return fmt.Errorf("%w: %s wants %d counter words, got %d",
			ErrCounterSize, e.gen.Name(), len(e.ctr), len(ctr))
	}
	if sub < 0 || sub >= len(e.buf) {
		return fmt.Errorf("%w: sub %d not in [0, %d)", ErrCounterIndex, sub, len(e.buf))
	}
	copy(e.ctr, ctr)
	e.gen.Block(e.buf, e.ctr, e.key)
	e.idx = sub
	return nil
}

// Counter reports the stream position as the counter and sub-index of the
// word the next call to Next will return. A spent buffer is reported as
// the top word of the following block.
func (e *Engine[W]) Counter() ([]W, int) {
	ctr := make([]W, len(e.ctr))
	copy(ctr, e.ctr)
	idx := e.idx
	if idx < 0 {
		incrWords(ctr, 1)
		idx = len(e.buf) - 1
	}
	return ctr, idx
}

// SetKey replaces the key, keeping the stream position. The buffered
// block is regenerated under the new key. The key length must match
// KeyLen.
func (e *Engine[W]) SetKey(key []W) error {
	if len(key) != len(e.key) {
		return fmt.Errorf("%w: %s wants %d key words, got %d",
			ErrKeySize, e.gen.Name(), len(e.key), len(key))
	}
	copy(e.key, key)
	if e.idx >= 0 {
		e.gen.Block(e.buf, e.ctr, e.key)
	}
	return nil
}

// Key returns a copy of the key words.
func (e *Engine[W]) Key() []W {
	key := make([]W, len(e.key))
	copy(key, e.key)
	return key
}

// Seed rewinds the engine to the start of the stream keyed by seed. The
// seed fills the low key words little-endian: 32-bit keys take the low
// half in word 0 and the high half in word 1 when present, 64-bit keys
// take the whole seed in word 0. Remaining key words are zero.
func (e *Engine[W]) Seed(seed uint64) {
	for i := range e.ctr {
		e.ctr[i] = 0
	}
	for i := range e.key {
		e.key[i] = 0
	}
	switch key := any(e.key).(type) {
	case []uint32:
		key[0] = uint32(seed)
		if len(key) > 1 {
			key[1] = uint32(seed >> 32)
		}
	case []uint64:
		key[0] = seed
	}
	e.idx = -1
}

// Equal reports whether e and o sit at the same position of the same
// keyed stream: same family, round count, key, and position. A spent
// buffer compares equal to the top of the following block.
func (e *Engine[W]) Equal(o *Engine[W]) bool {
	if e.gen.Name() != o.gen.Name() || e.gen.Rounds() != o.gen.Rounds() {
		return false
	}
	if !slices.Equal(e.key, o.key) {
		return false
	}
	ec, ei := e.Counter()
	oc, oi := o.Counter()
	return ei == oi && slices.Equal(ec, oc)
}

// String describes the stream position, e.g. "threefry4x64/20 ctr=[0 0 0 1] sub=3".
func (e *Engine[W]) String() string {
	ctr, sub := e.Counter()
	return fmt.Sprintf("%s/%d ctr=%v sub=%d", e.gen.Name(), e.gen.Rounds(), ctr, sub)
}

const engineWireVersion = 1

// MarshalBinary encodes the stream state as a six-byte header (version,
// word bits, block length, key length, rounds, sub-index plus one)
// followed by the counter and key words little-endian. The buffered block
// is not encoded; UnmarshalBinary regenerates it.
func (e *Engine[W]) MarshalBinary() ([]byte, error) {
	width := wordBits(e.buf)
	out := make([]byte, 0, 6+width/8*(len(e.ctr)+len(e.key)))
	out = append(out,
		engineWireVersion,
		byte(width),
		byte(len(e.ctr)),
		byte(len(e.key)),
		byte(e.gen.Rounds()),
		byte(e.idx+1),
	)
	out = appendWords(out, e.ctr)
	out = appendWords(out, e.key)
	return out, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary. The encoded
// shape and round count must match the engine's generator.
func (e *Engine[W]) UnmarshalBinary(data []byte) error {
	if len(data) < 6 || data[0] != engineWireVersion {
		return errors.New("random123: bad engine encoding")
	}
	width := wordBits(e.buf)
	if int(data[1]) != width || int(data[2]) != len(e.ctr) ||
		int(data[3]) != len(e.key) || int(data[4]) != e.gen.Rounds() {
		return fmt.Errorf("random123: engine encoding does not match %s/%d",
			e.gen.Name(), e.gen.Rounds())
	}
	idx := int(data[5]) - 1
	if idx < -1 || idx >= len(e.buf) {
		return errors.New("random123: bad engine encoding")
	}
	if len(data) != 6+width/8*(len(e.ctr)+len(e.key)) {
		return errors.New("random123: bad engine encoding")
	}
	readWords(data[6:], e.ctr)
	readWords(data[6+width/8*len(e.ctr):], e.key)
	e.idx = idx
	if e.idx >= 0 {
		e.gen.Block(e.buf, e.ctr, e.key)
	}
	return nil
}

// incrWords adds n to the little-endian multi-word counter c, wrapping
// modulo 2^(len(c)*width).
func incrWords[W Word](c []W, n uint64) {
	switch c := any(c).(type) {
	case []uint32:
		carry := n
		for i := 0; i < len(c) && carry != 0; i++ {
			sum := uint64(c[i]) + (carry & 0xFFFFFFFF)
			c[i] = uint32(sum)
			carry = (carry >> 32) + (sum >> 32)
		}
	case []uint64:
		var carry uint64
		c[0], carry = bits.Add64(c[0], n, 0)
		for i := 1; i < len(c) && carry != 0; i++ {
			c[i], carry = bits.Add64(c[i], 0, carry)
		}
	}
}

func wordBits[W Word](words []W) int {
	switch any(words).(type) {
	case []uint32:
		return 32
	default:
		return 64
	}
}

func appendWords[W Word](dst []byte, words []W) []byte {
	switch words := any(words).(type) {
	case []uint32:
		for _, w := range words {
			dst = binary.LittleEndian.AppendUint32(dst, w)
		}
	case []uint64:
		for _, w := range words {
			dst = binary.LittleEndian.AppendUint64(dst, w)
		}
	}
	return dst
}

func readWords[W Word](src []byte, words []W) {
	switch words := any(words).(type) {
	case []uint32:
		for i := range words {
			words[i] = binary.LittleEndian.Uint32(src[4*i:])
		}
	case []uint64:
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(src[8*i:])
		}
	}
}

var (
	_ encoding.BinaryMarshaler   = (*Engine[uint32])(nil)
	_ encoding.BinaryUnmarshaler = (*Engine[uint64])(nil)
)
