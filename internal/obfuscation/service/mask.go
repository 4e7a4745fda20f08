package service

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// Mask64 XORs v with the key mix and the 64-bit magic constant.
// Applying it twice with the same key mix returns v.
func Mask64(v, keyMix uint64) uint64 {
	return v ^ keyMix ^ domain.Magic64
}

// Mask32 XORs v with the key mix and the 32-bit magic constant.
func Mask32(v, keyMix uint32) uint32 {
	return v ^ keyMix ^ domain.Magic32
}

// KeyMix64 combines a key with an identifier hash.
func KeyMix64(key uint64, hash uint32) uint64 {
	return key ^ uint64(hash)
}

// KeyMix32 combines a key with an identifier hash, truncated to 32 bits.
func KeyMix32(key uint64, hash uint32) uint32 {
	return uint32(key) ^ hash
}
