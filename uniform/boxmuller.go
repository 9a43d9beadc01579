package uniform

import (
	"math"

	"github.com/chewxy/math32"
)

// BoxMuller converts two random words into an independent pair of
// standard normal deviates. The first word sets the angle, the second
// the radius, so one polar draw yields both normals; consume stream
// words in pairs. The result is deterministic in (u0, u1) and always
// finite.
func BoxMuller(u0, u1 uint64) (float64, float64) {
	s, c := math.Sincos(math.Pi * Uneg1164(u0))
	r := math.Sqrt(-2 * math.Log(U0164(u1)))
	return r * s, r * c
}

// BoxMuller32 is BoxMuller in single precision, for 32-bit word streams.
func BoxMuller32(u0, u1 uint32) (float32, float32) {
	a := math32.Pi * Uneg11F32(u0)
	r := math32.Sqrt(-2 * math32.Log(U01F32(u1)))
	return r * math32.Sin(a), r * math32.Cos(a)
}
