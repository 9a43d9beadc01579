package random123

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"sync"
)

// aesni4x32 runs one full AES-128 encryption per block: the counter is
// the plaintext and the key words are the cipher key, both packed
// little-endian. The expanded schedule for the most recent key is cached
// under a mutex, so streams with a stable key expand it once.
type aesni4x32 struct {
	mu      sync.Mutex
	lastKey [4]uint32
	block   cipher.Block
}

// NewAESNI4x32 returns the AES-128 based 4x32 generator. The round count
// is fixed at the ten rounds of AES-128. The standard library cipher uses
// hardware AES instructions when the CPU has them; see DetectFlags.
func NewAESNI4x32() Generator[uint32] {
	return &aesni4x32{}
}

func (g *aesni4x32) Name() string { return "aesni4x32" }
func (g *aesni4x32) BlockLen() int { return 4 }
func (g *aesni4x32) KeyLen() int { return 4 }
func (g *aesni4x32) Rounds() int { return 10 }

func (g *aesni4x32) Block(dst, ctr, key []uint32) {
	var in, out [16]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(in[4*i:], ctr[i])
	}

	g.mu.Lock()
	b := g.block
	if b == nil || key[0] != g.lastKey[0] || key[1] != g.lastKey[1] ||
		key[2] != g.lastKey[2] || key[3] != g.lastKey[3] {
		var kb [16]byte
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint32(kb[4*i:], key[i])
		}
		// aes.NewCipher fails only on bad key sizes; kb is always 16 bytes.
		var err error
		b, err = aes.NewCipher(kb[:])
		if err != nil {
			panic(err)
		}
		g.block = b
		copy(g.lastKey[:], key)
	}
	g.mu.Unlock()

	b.Encrypt(out[:], in[:])
	for i := 0; i < 4; i++ {
		dst[i] = binary.LittleEndian.Uint32(out[4*i:])
	}
}

var _ Generator[uint32] = (*aesni4x32)(nil)
