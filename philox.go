package random123

import "math/bits"

// Philox round-count limit and recommended default. Philox reaches its
// statistical quality target at 10 rounds; the specification caps the
// parameter at 16.
const (
	PhiloxMaxRounds     = 16
	PhiloxDefaultRounds = 10
)

// Philox round multipliers and Weyl key increments. The multipliers were
// selected by the Philox authors for high-entropy upper product halves;
// the Weyl constants are the golden ratio and sqrt(3)-1 in fixed point.
const (
	philoxM2x32 = 0xD256D193
	philoxM4x32 = 0xD2511F53
	philoxN4x32 = 0xCD9E8D57

	philoxM2x64 = 0xD2B74407B1CE6E93
	philoxM4x64 = 0xD2E7470EE14C6C93
	philoxN4x64 = 0xCA5A826395121157

	philoxW32A = 0x9E3779B9
	philoxW32B = 0xBB67AE85

	philoxW64A = 0x9E3779B97F4A7C15
	philoxW64B = 0xBB67AE8584CAA73B
)

// Philox2x32R applies the 2-word, 32-bit Philox bijection to ctr under a
// single-word key. Each round replaces the pair with (hi^k^x1, lo) where
// (hi,lo) is the full 64-bit product of the round multiplier and x0, and
// the key takes a Weyl step between rounds. The published round count is
// 10. rounds = 0 returns ctr unchanged. Panics if rounds is negative or
// above PhiloxMaxRounds.
func Philox2x32R(rounds int, ctr [2]uint32, key [1]uint32) [2]uint32 {
	mustRounds("philox2x32", rounds, PhiloxMaxRounds)

	x0, x1 := ctr[0], ctr[1]
	k := key[0]

	for r := 0; r < rounds; r++ {
		hi, lo := bits.Mul32(philoxM2x32, x0)
		x0 = hi ^ k ^ x1
		x1 = lo
		k += philoxW32A
	}
	return [2]uint32{x0, x1}
}

// Philox4x32R applies the 4-word, 32-bit Philox bijection to ctr under a
// 2-word key. The two 64-bit products cross between the word pairs each
// round. Panics if rounds is negative or above PhiloxMaxRounds.
func Philox4x32R(rounds int, ctr [4]uint32, key [2]uint32) [4]uint32 {
	mustRounds("philox4x32", rounds, PhiloxMaxRounds)

	x0, x1, x2, x3 := ctr[0], ctr[1], ctr[2], ctr[3]
	k0, k1 := key[0], key[1]

	for r := 0; r < rounds; r++ {
		hi0, lo0 := bits.Mul32(philoxM4x32, x0)
		hi1, lo1 := bits.Mul32(philoxN4x32, x2)
		x0 = hi1 ^ x1 ^ k0
		x1 = lo1
		x2 = hi0 ^ x3 ^ k1
		x3 = lo0
		k0 += philoxW32A
		k1 += philoxW32B
	}
	return [4]uint32{x0, x1, x2, x3}
}

// Philox2x64R applies the 2-word, 64-bit Philox bijection to ctr under a
// single-word key. Panics if rounds is negative or above PhiloxMaxRounds.
func Philox2x64R(rounds int, ctr [2]uint64, key [1]uint64) [2]uint64 {
	mustRounds("philox2x64", rounds, PhiloxMaxRounds)

	x0, x1 := ctr[0], ctr[1]
	k := key[0]

	for r := 0; r < rounds; r++ {
		hi, lo := bits.Mul64(philoxM2x64, x0)
		x0 = hi ^ k ^ x1
		x1 = lo
		k += philoxW64A
	}
	return [2]uint64{x0, x1}
}

// Philox4x64R applies the 4-word, 64-bit Philox bijection to ctr under a
// 2-word key. Panics if rounds is negative or above PhiloxMaxRounds.
func Philox4x64R(rounds int, ctr [4]uint64, key [2]uint64) [4]uint64 {
	mustRounds("philox4x64", rounds, PhiloxMaxRounds)

	x0, x1, x2, x3 := ctr[0], ctr[1], ctr[2], ctr[3]
	k0, k1 := key[0], key[1]

	for r := 0; r < rounds; r++ {
		hi0, lo0 := bits.Mul64(philoxM4x64, x0)
		hi1, lo1 := bits.Mul64(philoxN4x64, x2)
		x0 = hi1 ^ x1 ^ k0
		x1 = lo1
		x2 = hi0 ^ x3 ^ k1
		x3 = lo0
		k0 += philoxW64A
		k1 += philoxW64B
	}
	return [4]uint64{x0, x1, x2, x3}
}

// philox2x32 is the Generator form of Philox2x32R at a fixed round count.
// Philox keys carry half as many words as the counter block.
type philox2x32 struct {
	rounds int
}

// NewPhilox2x32 returns the 2x32 Philox generator with the given round
// count. Round counts above PhiloxMaxRounds are rejected.
func NewPhilox2x32(rounds int) (Generator[uint32], error) {
	if err := checkRounds("philox2x32", rounds, PhiloxMaxRounds); err != nil {
		return nil, err
	}
	return philox2x32{rounds: rounds}, nil
}

func (g philox2x32) Name() string { return "philox2x32" }
func (g philox2x32) BlockLen() int { return 2 }
func (g philox2x32) KeyLen() int { return 1 }
func (g philox2x32) Rounds() int { return g.rounds }

func (g philox2x32) Block(dst, ctr, key []uint32) {
	out := Philox2x32R(g.rounds, [2]uint32(ctr), [1]uint32(key))
	copy(dst, out[:])
}

// philox4x32 is the Generator form of Philox4x32R at a fixed round count.
type philox4x32 struct {
	rounds int
}

// NewPhilox4x32 returns the 4x32 Philox generator with the given round
// count. Round counts above PhiloxMaxRounds are rejected.
func NewPhilox4x32(rounds int) (Generator[uint32], error) {
	if err := checkRounds("philox4x32", rounds, PhiloxMaxRounds); err != nil {
		return nil, err
	}
	return philox4x32{rounds: rounds}, nil
}

func (g philox4x32) Name() string { return "philox4x32" }
func (g philox4x32) BlockLen() int { return 4 }
func (g philox4x32) KeyLen() int { return 2 }
func (g philox4x32) Rounds() int { return g.rounds }

func (g philox4x32) Block(dst, ctr, key []uint32) {
	out := Philox4x32R(g.rounds, [4]uint32(ctr), [2]uint32(key))
	copy(dst, out[:])
}

// philox2x64 is the Generator form of Philox2x64R at a fixed round count.
type philox2x64 struct {
	rounds int
}

// NewPhilox2x64 returns the 2x64 Philox generator with the given round
// count. Round counts above PhiloxMaxRounds are rejected.
func NewPhilox2x64(rounds int) (Generator[uint64], error) {
	if err := checkRounds("philox2x64", rounds, PhiloxMaxRounds); err != nil {
		return nil, err
	}
	return philox2x64{rounds: rounds}, nil
}

func (g philox2x64) Name() string { return "philox2x64" }
func (g philox2x64) BlockLen() int { return 2 }
func (g philox2x64) KeyLen() int { return 1 }
func (g philox2x64) Rounds() int { return g.rounds }

func (g philox2x64) Block(dst, ctr, key []uint64) {
	out := Philox2x64R(g.rounds, [2]uint64(ctr), [1]uint64(key))
	copy(dst, out[:])
}

// philox4x64 is the Generator form of Philox4x64R at a fixed round count.
type philox4x64 struct {
	rounds int
}

// NewPhilox4x64 returns the 4x64 Philox generator with the given round
// count. Round counts above PhiloxMaxRounds are rejected.
func NewPhilox4x64(rounds int) (Generator[uint64], error) {
	if err := checkRounds("philox4x64", rounds, PhiloxMaxRounds); err != nil {
		return nil, err
	}
	return philox4x64{rounds: rounds}, nil
}

func (g philox4x64) Name() string { return "philox4x64" }
func (g philox4x64) BlockLen() int { return 4 }
func (g philox4x64) KeyLen() int { return 2 }
func (g philox4x64) Rounds() int { return g.rounds }

func (g philox4x64) Block(dst, ctr, key []uint64) {
	out := Philox4x64R(g.rounds, [4]uint64(ctr), [2]uint64(key))
	copy(dst, out[:])
}

var (
	_ Generator[uint32] = philox2x32{}
	_ Generator[uint32] = philox4x32{}
	_ Generator[uint64] = philox2x64{}
	_ Generator[uint64] = philox4x64{}
)
