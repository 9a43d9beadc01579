package random123

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Vector represents a single known-answer case: one counter and key for a
// named family and round count, with the expected output block. These
// vectors validate compatibility with the reference Random123
// distribution.
//
// Words are held as uint64 regardless of family width; 32-bit families
// use only the low half.
type Vector struct {
	Name     string   // Generator family, e.g. "threefry4x64"
	Rounds   int      // Round count the expected block was produced with
	Ctr      []uint64 // Counter words, low word first
	Key      []uint64 // Key words
	Expected []uint64 // Expected output block
	Line     int      // Source line for diagnostics, 0 if hand-built
}

// katShape describes the word width and block geometry of a family.
type katShape struct {
	bits     int
	blockLen int
	keyLen   int
}

var katShapes = map[string]katShape{
	"threefry2x32": {32, 2, 2},
	"threefry4x32": {32, 4, 4},
	"threefry2x64": {64, 2, 2},
	"threefry4x64": {64, 4, 4},
	"philox2x32":   {32, 2, 1},
	"philox4x32":   {32, 4, 2},
	"philox2x64":   {64, 2, 1},
	"philox4x64":   {64, 4, 2},
	"aesni4x32":    {32, 4, 4},
}

// ParseVectors reads known-answer cases, one per line:
//
//	<name> <rounds> <ctr words...> <key words...> <expected words...>
//
// All words are unprefixed hex, low counter word first; the field count
// follows from the family's block and key lengths. Blank lines and lines
// starting with # are skipped. Returns an error naming the first
// malformed line.
func ParseVectors(r io.Reader) ([]Vector, error) {
	var vectors []Vector

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("random123: line %d: want name and rounds, got %d fields", line, len(fields))
		}
		name := fields[0]
		shape, ok := katShapes[name]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownGenerator, line, name)
		}
		rounds, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("random123: line %d: bad round count %q", line, fields[1])
		}
		want := 2 + 2*shape.blockLen + shape.keyLen
		if len(fields) != want {
			return nil, fmt.Errorf("random123: line %d: %s wants %d fields, got %d", line, name, want, len(fields))
		}

		words := make([]uint64, 2*shape.blockLen+shape.keyLen)
		for i, f := range fields[2:] {
			words[i], err = strconv.ParseUint(f, 16, shape.bits)
			if err != nil {
				return nil, fmt.Errorf("random123: line %d: bad %d-bit hex word %q", line, shape.bits, f)
			}
		}

		vectors = append(vectors, Vector{
			Name:     name,
			Rounds:   rounds,
			Ctr:      words[:shape.blockLen],
			Key:      words[shape.blockLen : shape.blockLen+shape.keyLen],
			Expected: words[shape.blockLen+shape.keyLen:],
			Line:     line,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("random123: reading vectors: %w", err)
	}
	return vectors, nil
}

// LoadVectors reads known-answer cases from a file in ParseVectors
// format.
func LoadVectors(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}
	defer f.Close()

	vectors, err := ParseVectors(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

// Run applies the vector's family to its counter and key and returns the
// output block.
func (v *Vector) Run() ([]uint64, error) {
	shape, ok := katShapes[v.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, v.Name)
	}
	if len(v.Ctr) != shape.blockLen || len(v.Key) != shape.keyLen {
		return nil, fmt.Errorf("random123: %s vector wants %d counter and %d key words, got %d and %d",
			v.Name, shape.blockLen, shape.keyLen, len(v.Ctr), len(v.Key))
	}

	out := make([]uint64, shape.blockLen)
	if shape.bits == 32 {
		gen, err := NewGenerator32(v.Name, v.Rounds)
		if err != nil {
			return nil, err
		}
		ctr, err := v.narrow(v.Ctr)
		if err != nil {
			return nil, err
		}
		key, err := v.narrow(v.Key)
		if err != nil {
			return nil, err
		}
		dst := make([]uint32, shape.blockLen)
		gen.Block(dst, ctr, key)
		for i, w := range dst {
			out[i] = uint64(w)
		}
		return out, nil
	}

	gen, err := NewGenerator64(v.Name, v.Rounds)
	if err != nil {
		return nil, err
	}
	gen.Block(out, v.Ctr, v.Key)
	return out, nil
}

// Check runs the vector and compares the output block against Expected.
func (v *Vector) Check() error {
	shape, ok := katShapes[v.Name]
	if ok && len(v.Expected) != shape.blockLen {
		return fmt.Errorf("random123: %s vector wants %d expected words, got %d",
			v.Name, shape.blockLen, len(v.Expected))
	}
	got, err := v.Run()
	if err != nil {
		return err
	}
	for i := range got {
		if got[i] != v.Expected[i] {
			return fmt.Errorf("random123: %s word %d: got %0*x, want %0*x",
				v.describe(), i, shape.bits/4, got[i], shape.bits/4, v.Expected[i])
		}
	}
	return nil
}

// describe names the vector for diagnostics, with its source line when
// known.
func (v *Vector) describe() string {
	if v.Line > 0 {
		return fmt.Sprintf("line %d: %s r=%d", v.Line, v.Name, v.Rounds)
	}
	return fmt.Sprintf("%s r=%d", v.Name, v.Rounds)
}

// narrow converts words to 32 bits, rejecting values with high bits set.
func (v *Vector) narrow(words []uint64) ([]uint32, error) {
	out := make([]uint32, len(words))
	for i, w := range words {
		if w>>32 != 0 {
			return nil, fmt.Errorf("random123: %s word %#x does not fit 32 bits", v.Name, w)
		}
		out[i] = uint32(w)
	}
	return out, nil
}
