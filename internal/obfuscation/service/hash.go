// Package service implements the reversible obfuscation stages.
//
// Every stage is a pure, total function on fixed-width words: identifier
// hashing, byte permutation, bit rotation and XOR masking. The keyed pipeline
// composes them as permute, rotate left, mask on the way in and the inverse
// order on the way out. The families in family.go combine the stages into the
// three supported storage schemes.
package service

import (
	"math/bits"
	"unicode/utf16"
)

// Hash folds an identifier into a 32-bit value.
//
// The identifier is encoded as UTF-16 code units in little-endian byte order
// and each byte is folded with acc = rotl(acc, 7) ^ byte, starting from zero.
// Hash("") is 0.
//
// name is decoded as UTF-8 first, so every invalid byte becomes U+FFFD. Two
// identifiers that differ only in invalid bytes hash identically and cannot
// share a group. Manifests restrict names to ASCII identifiers.
func Hash(name string) uint32 {
	var acc uint32
	for _, unit := range utf16.Encode([]rune(name)) {
		acc = bits.RotateLeft32(acc, 7) ^ uint32(unit&0xFF)
		acc = bits.RotateLeft32(acc, 7) ^ uint32(unit>>8)
	}
	return acc
}
