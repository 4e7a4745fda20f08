package service

// Forward64 obfuscates a 64-bit value for the given key and identifier.
//
// The identifier hash selects the permutation pattern and the rotation
// amount; the key and the hash together form the mask. Forward64 is total.
func Forward64(value, key uint64, name string) uint64 {
	h := Hash(name)
	permuted := Permute64(value, Pattern64(h))
	rotated := RotateLeft64(permuted, Rotation64(h))
	return Mask64(rotated, KeyMix64(key, h))
}

// Reverse64 recovers the value passed to Forward64 with the same key and identifier.
func Reverse64(stored, key uint64, name string) uint64 {
	h := Hash(name)
	rotated := Mask64(stored, KeyMix64(key, h))
	permuted := RotateRight64(rotated, Rotation64(h))
	return Unpermute64(permuted, Pattern64(h))
}

// Forward32 obfuscates a 32-bit value for the given key and identifier.
// Only the low 32 bits of the key take part in the mask.
func Forward32(value uint32, key uint64, name string) uint32 {
	h := Hash(name)
	permuted := Permute32(value, Pattern32(h))
	rotated := RotateLeft32(permuted, Rotation32(h))
	return Mask32(rotated, KeyMix32(key, h))
}

// Reverse32 recovers the value passed to Forward32 with the same key and identifier.
func Reverse32(stored uint32, key uint64, name string) uint32 {
	h := Hash(name)
	rotated := Mask32(stored, KeyMix32(key, h))
	permuted := RotateRight32(rotated, Rotation32(h))
	return Unpermute32(permuted, Pattern32(h))
}
