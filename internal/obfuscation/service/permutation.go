package service

import (
	"encoding/binary"
	"fmt"
)

// Byte permutation tables. Byte positions are little-endian: position 0 is
// the least significant byte. The forward direction reads dst[i] = src[t[i]].
var (
	permutations64 = [8][8]uint8{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{3, 1, 7, 0, 4, 6, 2, 5},
		{5, 2, 0, 6, 3, 7, 1, 4},
		{6, 3, 1, 5, 7, 0, 4, 2},
		{2, 6, 4, 1, 0, 5, 7, 3},
		{1, 7, 5, 3, 6, 2, 0, 4},
		{4, 0, 6, 2, 1, 3, 5, 7},
		{7, 4, 2, 6, 5, 1, 3, 0},
	}

	inversePermutations64 = [8][8]uint8{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{3, 1, 6, 0, 4, 7, 5, 2},
		{2, 6, 1, 4, 7, 0, 3, 5},
		{5, 2, 7, 1, 6, 3, 0, 4},
		{4, 3, 0, 7, 2, 5, 1, 6},
		{6, 0, 5, 3, 7, 2, 4, 1},
		{1, 4, 3, 5, 0, 6, 2, 7},
		{7, 5, 2, 6, 1, 4, 3, 0},
	}

	permutations32 = [4][4]uint8{
		{0, 1, 2, 3},
		{3, 1, 0, 2},
		{2, 0, 3, 1},
		{1, 2, 3, 0},
	}

	inversePermutations32 = [4][4]uint8{
		{0, 1, 2, 3},
		{2, 1, 3, 0},
		{1, 3, 0, 2},
		{3, 0, 1, 2},
	}

	// Fixed scrambles of the enhanced family.
	scramble64        = [8]uint8{7, 1, 6, 0, 5, 3, 4, 2}
	inverseScramble64 = [8]uint8{3, 1, 7, 5, 6, 4, 2, 0}
	scramble32        = [4]uint8{3, 1, 0, 2}
	inverseScramble32 = [4]uint8{2, 1, 3, 0}
)

// Number of patterns in each table.
const (
	PatternCount64 = len(permutations64)
	PatternCount32 = len(permutations32)
)

func init() {
	for p := range permutations64 {
		mustBeInverse(permutations64[p][:], inversePermutations64[p][:], fmt.Sprintf("64-bit pattern %d", p))
	}
	for p := range permutations32 {
		mustBeInverse(permutations32[p][:], inversePermutations32[p][:], fmt.Sprintf("32-bit pattern %d", p))
	}
	mustBeInverse(scramble64[:], inverseScramble64[:], "64-bit scramble")
	mustBeInverse(scramble32[:], inverseScramble32[:], "32-bit scramble")
}

// mustBeInverse panics if forward is not a bijection or inverse does not undo it.
func mustBeInverse(forward, inverse []uint8, label string) {
	if len(forward) != len(inverse) {
		panic(fmt.Sprintf("permutation %s: table sizes differ", label))
	}
	seen := make([]bool, len(forward))
	for i, src := range forward {
		if int(src) >= len(forward) || seen[src] {
			panic(fmt.Sprintf("permutation %s: not a bijection", label))
		}
		seen[src] = true
		if int(inverse[src]) != i {
			panic(fmt.Sprintf("permutation %s: inverse mismatch at position %d", label, src))
		}
	}
}

// Pattern64 selects the 64-bit permutation pattern for an identifier hash.
func Pattern64(hash uint32) uint8 {
	return uint8(hash % uint32(PatternCount64))
}

// Pattern32 selects the 32-bit permutation pattern for an identifier hash.
func Pattern32(hash uint32) uint8 {
	return uint8(hash % uint32(PatternCount32))
}

// Permute64 reorders the bytes of v with the given pattern.
// Patterns are reduced modulo the table size.
func Permute64(v uint64, pattern uint8) uint64 {
	return apply64(v, &permutations64[int(pattern)%PatternCount64])
}

// Unpermute64 reverses Permute64.
func Unpermute64(v uint64, pattern uint8) uint64 {
	return apply64(v, &inversePermutations64[int(pattern)%PatternCount64])
}

// Permute32 reorders the bytes of v with the given pattern.
// Patterns are reduced modulo the table size.
func Permute32(v uint32, pattern uint8) uint32 {
	return apply32(v, &permutations32[int(pattern)%PatternCount32])
}

// Unpermute32 reverses Permute32.
func Unpermute32(v uint32, pattern uint8) uint32 {
	return apply32(v, &inversePermutations32[int(pattern)%PatternCount32])
}

// Scramble64 applies the fixed byte scramble of the enhanced family.
func Scramble64(v uint64) uint64 {
	return apply64(v, &scramble64)
}

// Unscramble64 reverses Scramble64.
func Unscramble64(v uint64) uint64 {
	return apply64(v, &inverseScramble64)
}

// Scramble32 applies the fixed byte scramble of the enhanced family.
func Scramble32(v uint32) uint32 {
	return apply32(v, &scramble32)
}

// Unscramble32 reverses Scramble32.
func Unscramble32(v uint32) uint32 {
	return apply32(v, &inverseScramble32)
}

func apply64(v uint64, table *[8]uint8) uint64 {
	var src, dst [8]byte
	binary.LittleEndian.PutUint64(src[:], v)
	for i, from := range table {
		dst[i] = src[from]
	}
	return binary.LittleEndian.Uint64(dst[:])
}

func apply32(v uint32, table *[4]uint8) uint32 {
	var src, dst [4]byte
	binary.LittleEndian.PutUint32(src[:], v)
	for i, from := range table {
		dst[i] = src[from]
	}
	return binary.LittleEndian.Uint32(dst[:])
}
