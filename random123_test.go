package random123

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"golang.org/x/exp/constraints"
)

// hexWords renders a block of any word width for failure messages.
func hexWords[W constraints.Unsigned](words []W) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprintf("%#x", uint64(w))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

func TestNewGenerator32(t *testing.T) {
	tests := []struct {
		name    string
		family  string
		rounds  int
		wantErr error
	}{
		{"threefry2x32", "threefry2x32", 20, nil},
		{"threefry4x32", "threefry4x32", 72, nil},
		{"philox2x32", "philox2x32", 10, nil},
		{"philox4x32", "philox4x32", 7, nil},
		{"aesni4x32", "aesni4x32", 10, nil},
		{"aesni wrong rounds", "aesni4x32", 12, ErrRounds},
		{"threefry over limit", "threefry2x32", 33, ErrRounds},
		{"philox over limit", "philox4x32", 17, ErrRounds},
		{"64-bit family", "threefry4x64", 20, ErrUnknownGenerator},
		{"unknown", "mersenne", 1, ErrUnknownGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator32(tt.family, tt.rounds)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewGenerator32(%q, %d) error = %v, want %v", tt.family, tt.rounds, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if gen.Name() != tt.family {
				t.Errorf("Name() = %q, want %q", gen.Name(), tt.family)
			}
			if gen.Rounds() != tt.rounds {
				t.Errorf("Rounds() = %d, want %d", gen.Rounds(), tt.rounds)
			}
		})
	}
}

func TestNewGenerator64(t *testing.T) {
	tests := []struct {
		name    string
		family  string
		rounds  int
		wantErr error
	}{
		{"threefry2x64", "threefry2x64", 32, nil},
		{"threefry4x64", "threefry4x64", 13, nil},
		{"philox2x64", "philox2x64", 10, nil},
		{"philox4x64", "philox4x64", 10, nil},
		{"32-bit family", "philox4x32", 10, ErrUnknownGenerator},
		{"over limit", "philox4x64", 17, ErrRounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator64(tt.family, tt.rounds)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewGenerator64(%q, %d) error = %v, want %v", tt.family, tt.rounds, err, tt.wantErr)
			}
			if err == nil && gen.Name() != tt.family {
				t.Errorf("Name() = %q, want %q", gen.Name(), tt.family)
			}
		})
	}
}

// Every listed family must resolve at its default round count through one
// of the two registries.
func TestFamiliesResolve(t *testing.T) {
	fams := Families()
	if !sort.StringsAreSorted(fams) {
		t.Errorf("Families() not sorted: %v", fams)
	}

	for _, name := range fams {
		rounds, err := DefaultRounds(name)
		if err != nil {
			t.Fatalf("DefaultRounds(%q): %v", name, err)
		}
		_, err32 := NewGenerator32(name, rounds)
		_, err64 := NewGenerator64(name, rounds)
		if err32 != nil && err64 != nil {
			t.Errorf("%s does not resolve at %d rounds: %v / %v", name, rounds, err32, err64)
		}
	}

	if _, err := DefaultRounds("nosuch"); !errors.Is(err, ErrUnknownGenerator) {
		t.Errorf("DefaultRounds(nosuch) error = %v, want ErrUnknownGenerator", err)
	}
}

func TestDetectFlags(t *testing.T) {
	// The value is machine-dependent; the call must simply be stable.
	if DetectFlags() != DetectFlags() {
		t.Error("DetectFlags() is not stable across calls")
	}
}
