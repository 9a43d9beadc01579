package uniform

// The float32 conversions parallel the float64 set with a 24-bit
// mantissa budget.

// U01F32 maps a 32-bit word to the midpoint grid on (0,1) in single
// precision. Rounding can carry the largest inputs to exactly 1.
func U01F32(x uint32) float32 {
	return float32(x)*0x1p-32 + 0x1p-33
}

// Uneg11F32 maps a 32-bit word, reinterpreted as signed, to the midpoint
// grid on (-1,1) in single precision.
func Uneg11F32(x uint32) float32 {
	return float32(int32(x))*0x1p-31 + 0x1p-32
}

// U01FixedF32 maps a 32-bit word to an odd multiple of 2^-24 in (0,1).
func U01FixedF32(x uint32) float32 {
	return OpenOpenF32(x)
}

// ClosedOpenF32 maps a 32-bit word to [0,1) on the 2^-24 grid.
func ClosedOpenF32(x uint32) float32 {
	return float32(x>>8) * 0x1p-24
}

// OpenClosedF32 maps a 32-bit word to (0,1] on the 2^-24 grid.
func OpenClosedF32(x uint32) float32 {
	return (float32(x>>8) + 1) * 0x1p-24
}

// OpenOpenF32 maps a 32-bit word to (0,1) as an odd multiple of 2^-24.
func OpenOpenF32(x uint32) float32 {
	return (float32(x>>9) + 0.5) * 0x1p-23
}

// ClosedClosedF32 maps a 32-bit word to [0,1] inclusive, rounding half
// up onto the 2^-23 grid.
func ClosedClosedF32(x uint32) float32 {
	k := (x >> 9) + (x >> 8 & 1)
	return float32(k) * 0x1p-23
}
