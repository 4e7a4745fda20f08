// Package domain defines the core models for constant obfuscation.
//
// A constant is a named fixed-width value (float64 bits, int32 bits or a
// 128-bit fixed-point decimal) that is stored only in scrambled form and
// rebuilt on every read. Constants are grouped; each group belongs to one
// obfuscation family that fixes the stages applied to its values.
package domain

// Kind identifies the fixed-width representation of a constant.
type Kind string

const (
	// KindFloat64 is an IEEE-754 double stored as its 64 raw bits.
	KindFloat64 Kind = "float64"

	// KindInt32 is a 32-bit signed integer stored as its raw bits.
	KindInt32 Kind = "int32"

	// KindDecimal is a 128-bit fixed-point decimal stored as four 32-bit words.
	KindDecimal Kind = "decimal"
)

// Family selects which obfuscation pipeline a group applies.
//
// Families are independent pipelines. They do not share stage order, so a
// value encoded by one family can only be decoded by the same family.
type Family string

const (
	// FamilyBasic stores the bitwise complement of every word.
	FamilyBasic Family = "basic"

	// FamilyEnhanced complements, applies a fixed byte scramble and rotates
	// left by an identifier-derived amount.
	FamilyEnhanced Family = "enhanced"

	// FamilyKeyed runs the keyed pipeline: identifier-selected permutation,
	// identifier-derived rotation and a mask with the key mix.
	FamilyKeyed Family = "keyed"
)

// Fixed key components and magic constants baked into the scheme.
const (
	// Magic64 is XORed into every 64-bit value by the keyed pipeline.
	Magic64 uint64 = 0xABCDEF0123456789

	// Magic32 is XORed into every 32-bit value by the keyed pipeline.
	Magic32 uint32 = 0x12345678

	// Pepper is the fixed key component of the float and integer groups.
	Pepper uint64 = 0xdeadbeefcaffee42

	// DecimalPepper is the fixed key component of decimal-only groups.
	DecimalPepper uint64 = 0xfeedbeefdeadcafe

	// Salt is the second fixed key component used by the enhanced and keyed families.
	Salt uint64 = 0x1337c0ffeebabead
)

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	switch f {
	case FamilyBasic, FamilyEnhanced, FamilyKeyed:
		return true
	default:
		return false
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindFloat64, KindInt32, KindDecimal:
		return true
	default:
		return false
	}
}
