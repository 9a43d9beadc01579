// Package random123 provides counter-based pseudo-random number
// generators in the Random123 family: Threefry, Philox, and an AES-128
// based generator.
//
// A counter-based generator is a keyed bijection from counter blocks to
// output blocks. There is no hidden state to seed or carry: the n-th
// block of a stream is computed directly from n and the key, so streams
// can be split across workers, replayed from any position, and compared
// word for word. The Engine type deals blocks out as a conventional
// sequential stream; the pure block functions (Threefry4x64R, Philox4x32R
// and friends) expose the bijections directly.
//
// Example usage:
//
//	gen, err := random123.NewGenerator64("philox4x64", random123.PhiloxDefaultRounds)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	eng := random123.NewEngineSeeded(gen, 42)
//	for i := 0; i < 4; i++ {
//	    fmt.Println(eng.Next())
//	}
package random123

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// Flags represents CPU feature flags relevant to generator selection.
type Flags uint32

const (
	// FlagDefault uses standard code paths available on all platforms.
	FlagDefault Flags = 0

	// FlagAES indicates hardware AES support (AES-NI on x86).
	FlagAES Flags = 1 << 0
)

// DetectFlags reports the CPU features of the running machine. The AES
// generator works without FlagAES, through the standard library's
// constant-time software path, but is only competitive with hardware
// support.
func DetectFlags() Flags {
	var f Flags
	if cpu.X86.HasAES || cpu.ARM64.HasAES {
		f |= FlagAES
	}
	return f
}

// NewGenerator32 returns the named 32-bit generator family configured
// with the given round count. Unknown names are rejected with
// ErrUnknownGenerator, round counts outside the family's range with
// ErrRounds.
func NewGenerator32(name string, rounds int) (Generator[uint32], error) {
	switch name {
	case "threefry2x32":
		return NewThreefry2x32(rounds)
	case "threefry4x32":
		return NewThreefry4x32(rounds)
	case "philox2x32":
		return NewPhilox2x32(rounds)
	case "philox4x32":
		return NewPhilox4x32(rounds)
	case "aesni4x32":
		if rounds != 10 {
			return nil, fmt.Errorf("%w: aesni4x32 rounds %d (fixed at 10)", ErrRounds, rounds)
		}
		return NewAESNI4x32(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// NewGenerator64 returns the named 64-bit generator family configured
// with the given round count.
func NewGenerator64(name string, rounds int) (Generator[uint64], error) {
	switch name {
	case "threefry2x64":
		return NewThreefry2x64(rounds)
	case "threefry4x64":
		return NewThreefry4x64(rounds)
	case "philox2x64":
		return NewPhilox2x64(rounds)
	case "philox4x64":
		return NewPhilox4x64(rounds)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// DefaultRounds reports the recommended round count for the named family.
func DefaultRounds(name string) (int, error) {
	switch name {
	case "threefry2x32", "threefry4x32", "threefry2x64", "threefry4x64":
		return ThreefryDefaultRounds, nil
	case "philox2x32", "philox4x32", "philox2x64", "philox4x64":
		return PhiloxDefaultRounds, nil
	case "aesni4x32":
		return 10, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// Families lists the generator family names NewGenerator32 and
// NewGenerator64 accept, in sorted order.
func Families() []string {
	return []string{
		"aesni4x32",
		"philox2x32",
		"philox2x64",
		"philox4x32",
		"philox4x64",
		"threefry2x32",
		"threefry2x64",
		"threefry4x32",
		"threefry4x64",
	}
}
