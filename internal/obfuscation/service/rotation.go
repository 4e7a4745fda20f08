package service

import (
	"math/bits"
)

// Rotation64 derives the 64-bit rotation amount from an identifier hash.
// The result lies in [1, 31], so a rotation is never the identity.
func Rotation64(hash uint32) int {
	return int(hash%31) + 1
}

// Rotation32 derives the 32-bit rotation amount from an identifier hash.
// The result lies in [1, 15].
func Rotation32(hash uint32) int {
	return int(hash%15) + 1
}

// RotateLeft64 rotates v left by k bits.
func RotateLeft64(v uint64, k int) uint64 {
	return bits.RotateLeft64(v, k)
}

// RotateRight64 rotates v right by k bits.
func RotateRight64(v uint64, k int) uint64 {
	return bits.RotateLeft64(v, -k)
}

// RotateLeft32 rotates v left by k bits.
func RotateLeft32(v uint32, k int) uint32 {
	return bits.RotateLeft32(v, k)
}

// RotateRight32 rotates v right by k bits.
func RotateRight32(v uint32, k int) uint32 {
	return bits.RotateLeft32(v, -k)
}
