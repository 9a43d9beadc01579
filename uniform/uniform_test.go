package uniform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

var probe32 = []uint32{0, 1, 2, 0x7fffffff, 0x80000000, 0xdeadbeef, 0xfffffffe, 0xffffffff}

var probe64 = []uint64{
	0, 1, 2, 0x7fffffffffffffff, 0x8000000000000000,
	0xdeadbeefdeadbeef, 0xfffffffffffffffe, 0xffffffffffffffff,
}

func TestU01Bounds(t *testing.T) {
	for _, x := range probe32 {
		v := U0132(x)
		assert.Greater(t, v, 0.0, "U0132(%#x)", x)
		// A float64 mantissa holds all 32 input bits, so 1 is unreachable.
		assert.Less(t, v, 1.0, "U0132(%#x)", x)
	}
	for _, x := range probe64 {
		v := U0164(x)
		assert.Greater(t, v, 0.0, "U0164(%#x)", x)
		assert.LessOrEqual(t, v, 1.0, "U0164(%#x)", x)
	}
	for _, x := range probe32 {
		v := U01F32(x)
		assert.Greater(t, v, float32(0), "U01F32(%#x)", x)
		assert.LessOrEqual(t, v, float32(1), "U01F32(%#x)", x)
	}

	// Narrowing conversions can round the top of the range to exactly 1.
	assert.Equal(t, 1.0, U0164(0xffffffffffffffff))
	assert.Equal(t, float32(1), U01F32(0xffffffff))
}

func TestUneg11Bounds(t *testing.T) {
	for _, x := range probe32 {
		v := Uneg1132(x)
		assert.GreaterOrEqual(t, v, -1.0, "Uneg1132(%#x)", x)
		assert.LessOrEqual(t, v, 1.0, "Uneg1132(%#x)", x)
		assert.NotEqual(t, 0.0, v, "Uneg1132(%#x)", x)
	}
	for _, x := range probe64 {
		v := Uneg1164(x)
		assert.GreaterOrEqual(t, v, -1.0, "Uneg1164(%#x)", x)
		assert.LessOrEqual(t, v, 1.0, "Uneg1164(%#x)", x)
		assert.NotEqual(t, 0.0, v, "Uneg1164(%#x)", x)
	}

	// Signed reinterpretation: the all-ones word is -1, just below zero on
	// the midpoint grid.
	assert.Equal(t, -1.0*0x1p-31+0x1p-32, Uneg1132(0xffffffff))
}

// Fixed-point conversions land on odd multiples of the grid step: never
// 0, never 1, and never a power of two like 0.5.
func TestFixedPointGrid(t *testing.T) {
	for _, x := range probe32 {
		v := U01Fixed32(x)
		require.Greater(t, v, 0.0)
		require.Less(t, v, 1.0)
		k := v * 0x1p32
		require.Equal(t, k, math.Trunc(k), "U01Fixed32(%#x) off the 2^-32 grid", x)
		require.Equal(t, 1.0, math.Mod(k, 2), "U01Fixed32(%#x) = %v not an odd multiple", x, v)
	}
	for _, x := range probe64 {
		v := U01Fixed64(x)
		require.Greater(t, v, 0.0)
		require.Less(t, v, 1.0)
		k := v * 0x1p53
		require.Equal(t, 1.0, math.Mod(k, 2), "U01Fixed64(%#x) = %v not an odd multiple", x, v)
	}
	for _, x := range probe32 {
		v := float64(U01FixedF32(x))
		require.Greater(t, v, 0.0)
		require.Less(t, v, 1.0)
		k := v * 0x1p24
		require.Equal(t, 1.0, math.Mod(k, 2), "U01FixedF32(%#x) = %v not an odd multiple", x, v)
	}

	assert.NotEqual(t, 0.5, U01Fixed32(0x80000000))
	assert.NotEqual(t, 0.5, U01Fixed32(0x80000001))
}

// fixedPoint is the shape of the fixed-point conversion at an arbitrary
// input width, for exhaustive checking at widths small enough to sweep.
func fixedPoint[W constraints.Unsigned](x W, bits int) float64 {
	return (float64(x>>1) + 0.5) * math.Ldexp(1, 1-bits)
}

// Exhaustive sweep of the narrow-width analogue: exactly 2^(W-1) distinct
// values, each produced by exactly two inputs.
func TestFixedPointCardinality(t *testing.T) {
	t.Run("8-bit", func(t *testing.T) {
		counts := make(map[float64]int)
		for x := 0; x < 1<<8; x++ {
			counts[fixedPoint(uint8(x), 8)]++
		}
		require.Len(t, counts, 1<<7)
		for v, c := range counts {
			require.Equalf(t, 2, c, "value %v", v)
			require.Greater(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	})

	t.Run("16-bit", func(t *testing.T) {
		counts := make(map[float64]int)
		for x := 0; x < 1<<16; x++ {
			counts[fixedPoint(uint16(x), 16)]++
		}
		require.Len(t, counts, 1<<15)
		for _, c := range counts {
			require.Equal(t, 2, c)
		}
	})
}

func TestIntervalEndpoints(t *testing.T) {
	const (
		max32 = uint32(0xffffffff)
		max64 = uint64(0xffffffffffffffff)
	)

	t.Run("closed open", func(t *testing.T) {
		assert.Equal(t, 0.0, ClosedOpen32(0))
		assert.Less(t, ClosedOpen32(max32), 1.0)
		assert.Equal(t, 0.0, ClosedOpen64(0))
		assert.Less(t, ClosedOpen64(max64), 1.0)
		assert.Equal(t, float32(0), ClosedOpenF32(0))
		assert.Less(t, ClosedOpenF32(max32), float32(1))
	})

	t.Run("open closed", func(t *testing.T) {
		assert.Greater(t, OpenClosed32(0), 0.0)
		assert.Equal(t, 1.0, OpenClosed32(max32))
		assert.Greater(t, OpenClosed64(0), 0.0)
		assert.Equal(t, 1.0, OpenClosed64(max64))
		assert.Greater(t, OpenClosedF32(0), float32(0))
		assert.Equal(t, float32(1), OpenClosedF32(max32))
	})

	t.Run("open open", func(t *testing.T) {
		assert.Equal(t, 0x1p-32, OpenOpen32(0))
		assert.Equal(t, 1.0-0x1p-32, OpenOpen32(max32))
		assert.Greater(t, OpenOpen64(0), 0.0)
		assert.Less(t, OpenOpen64(max64), 1.0)
		assert.Greater(t, OpenOpenF32(0), float32(0))
		assert.Less(t, OpenOpenF32(max32), float32(1))
	})

	t.Run("closed closed", func(t *testing.T) {
		assert.Equal(t, 0.0, ClosedClosed32(0))
		assert.Equal(t, 1.0, ClosedClosed32(max32))
		assert.Equal(t, 0.0, ClosedClosed64(0))
		assert.Equal(t, 1.0, ClosedClosed64(max64))
		assert.Equal(t, float32(0), ClosedClosedF32(0))
		assert.Equal(t, float32(1), ClosedClosedF32(max32))
	})
}

// The grid spacing of each variant follows from its construction; spot
// check adjacent inputs.
func TestGridSpacing(t *testing.T) {
	assert.Equal(t, 0x1p-32, ClosedOpen32(1)-ClosedOpen32(0))
	assert.Equal(t, 0x1p-53, ClosedOpen64(1<<11)-ClosedOpen64(0))
	assert.Equal(t, 0x1p-31, OpenOpen32(2)-OpenOpen32(0))
	assert.Equal(t, float32(0x1p-24), ClosedOpenF32(1<<8)-ClosedOpenF32(0))
}
