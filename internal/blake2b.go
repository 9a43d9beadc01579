// Package internal provides cryptographic primitives for seed material
// derivation. This package wraps golang.org/x/crypto packages.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes).
func Blake2b512(data []byte) [64]byte {
	h := blake2b.Sum512(data)
	return h
}
