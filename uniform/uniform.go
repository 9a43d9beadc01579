// Package uniform converts random words into uniformly distributed
// floating point numbers.
//
// The conversions come in two families. U01, Uneg11 and U01Fixed follow
// the classic midpoint rules of counter-based generator libraries: every
// input word lands on the center of its equal-width subinterval. The
// interval-named variants (ClosedOpen32, OpenOpen64 and so on) state
// which endpoints of the unit interval are reachable, and use only as
// many input bits as the output mantissa holds exactly.
//
// Function names carry the input word width; the F32 forms in this
// package produce float32 from 32-bit words. All conversions are pure
// and total, so a word stream maps to the same floats on every platform.
package uniform

// U0132 maps a 32-bit word to the midpoint grid on (0,1): x/2^32 plus
// half a grid step. The result is never zero.
func U0132(x uint32) float64 {
	return float64(x)*0x1p-32 + 0x1p-33
}

// U0164 is U0132 for 64-bit words. The 53-bit mantissa cannot hold the
// top of the range exactly, so rounding can carry the largest inputs to
// exactly 1.
func U0164(x uint64) float64 {
	return float64(x)*0x1p-64 + 0x1p-65
}

// Uneg1132 maps a 32-bit word, reinterpreted as signed, to the midpoint
// grid on (-1,1).
func Uneg1132(x uint32) float64 {
	return float64(int32(x))*0x1p-31 + 0x1p-32
}

// Uneg1164 is Uneg1132 for 64-bit words. Rounding can carry the extremes
// to exactly -1 or 1.
func Uneg1164(x uint64) float64 {
	return float64(int64(x))*0x1p-63 + 0x1p-64
}

// U01Fixed32 maps a 32-bit word to an odd multiple of 2^-32 in (0,1).
// Every result has the same fixed-point spacing, unlike U0132 whose
// low-order structure varies with magnitude.
func U01Fixed32(x uint32) float64 {
	return OpenOpen32(x)
}

// U01Fixed64 is U01Fixed32 for 64-bit words, on the 2^-53 grid.
func U01Fixed64(x uint64) float64 {
	return OpenOpen64(x)
}

// ClosedOpen32 maps a 32-bit word to [0,1) on the 2^-32 grid.
func ClosedOpen32(x uint32) float64 {
	return float64(x) * 0x1p-32
}

// OpenClosed32 maps a 32-bit word to (0,1] on the 2^-32 grid.
func OpenClosed32(x uint32) float64 {
	return (float64(x) + 1) * 0x1p-32
}

// OpenOpen32 maps a 32-bit word to (0,1): the low bit is spent to center
// the value, leaving odd multiples of 2^-32.
func OpenOpen32(x uint32) float64 {
	return (float64(x>>1) + 0.5) * 0x1p-31
}

// ClosedClosed32 maps a 32-bit word to [0,1] inclusive, rounding half up
// onto the 2^-31 grid. The endpoints are half as likely as interior
// points.
func ClosedClosed32(x uint32) float64 {
	k := (x >> 1) + (x & 1)
	return float64(k) * 0x1p-31
}

// ClosedOpen64 maps a 64-bit word to [0,1) on the 2^-53 grid, using the
// top 53 bits.
func ClosedOpen64(x uint64) float64 {
	return float64(x>>11) * 0x1p-53
}

// OpenClosed64 maps a 64-bit word to (0,1] on the 2^-53 grid.
func OpenClosed64(x uint64) float64 {
	return (float64(x>>11) + 1) * 0x1p-53
}

// OpenOpen64 maps a 64-bit word to (0,1) as an odd multiple of 2^-53.
func OpenOpen64(x uint64) float64 {
	return (float64(x>>12) + 0.5) * 0x1p-52
}

// ClosedClosed64 maps a 64-bit word to [0,1] inclusive, rounding half up
// onto the 2^-52 grid.
func ClosedClosed64(x uint64) float64 {
	k := (x >> 12) + (x >> 11 & 1)
	return float64(k) * 0x1p-52
}
