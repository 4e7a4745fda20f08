package service

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// NewCodec returns the codec of an obfuscation family.
// Returns ErrUnsupportedFamily for unknown families.
func NewCodec(family domain.Family) (Codec, error) {
	switch family {
	case domain.FamilyBasic:
		return basicCodec{}, nil
	case domain.FamilyEnhanced:
		return enhancedCodec{}, nil
	case domain.FamilyKeyed:
		return NewKeyedCodec(), nil
	default:
		return nil, domain.ErrUnsupportedFamily
	}
}

// basicCodec stores the bitwise complement of every word.
type basicCodec struct{}

func (basicCodec) Family() domain.Family { return domain.FamilyBasic }

func (basicCodec) Encode64(bits, _ uint64, _ string) uint64 { return ^bits }

func (basicCodec) Decode64(stored, _ uint64, _ string) uint64 { return ^stored }

func (basicCodec) Encode32(bits uint32, _ uint64, _ string) uint32 { return ^bits }

func (basicCodec) Decode32(stored uint32, _ uint64, _ string) uint32 { return ^stored }

func (basicCodec) EncodeDecimal(d domain.Decimal, _ uint64, _ string) [4]uint32 {
	return EncodeDecimal(d)
}

func (basicCodec) DecodeDecimal(words [4]uint32, _ uint64, _ string) domain.Decimal {
	return DecodeDecimal(words)
}

// enhancedCodec complements, scrambles bytes with a fixed table and, for
// 64-bit values, rotates left by an identifier-derived amount.
type enhancedCodec struct{}

func (enhancedCodec) Family() domain.Family { return domain.FamilyEnhanced }

func (enhancedCodec) Encode64(bits, _ uint64, name string) uint64 {
	return RotateLeft64(Scramble64(^bits), Rotation64(Hash(name)))
}

func (enhancedCodec) Decode64(stored, _ uint64, name string) uint64 {
	return ^Unscramble64(RotateRight64(stored, Rotation64(Hash(name))))
}

func (enhancedCodec) Encode32(bits uint32, _ uint64, _ string) uint32 {
	return Scramble32(^bits)
}

func (enhancedCodec) Decode32(stored uint32, _ uint64, _ string) uint32 {
	return ^Unscramble32(stored)
}

func (enhancedCodec) EncodeDecimal(d domain.Decimal, _ uint64, _ string) [4]uint32 {
	return EncodeDecimal(d)
}

func (enhancedCodec) DecodeDecimal(words [4]uint32, _ uint64, _ string) domain.Decimal {
	return DecodeDecimal(words)
}

// keyedCodec runs the keyed pipeline. Decimal words are complemented and
// swapped first, then each slot goes through the 32-bit pipeline under its
// own identifier.
type keyedCodec struct{}

// NewKeyedCodec returns the codec of the keyed family.
func NewKeyedCodec() Codec {
	return keyedCodec{}
}

func (keyedCodec) Family() domain.Family { return domain.FamilyKeyed }

func (keyedCodec) Encode64(bits, key uint64, name string) uint64 {
	return Forward64(bits, key, name)
}

func (keyedCodec) Decode64(stored, key uint64, name string) uint64 {
	return Reverse64(stored, key, name)
}

func (keyedCodec) Encode32(bits uint32, key uint64, name string) uint32 {
	return Forward32(bits, key, name)
}

func (keyedCodec) Decode32(stored uint32, key uint64, name string) uint32 {
	return Reverse32(stored, key, name)
}

func (keyedCodec) EncodeDecimal(d domain.Decimal, key uint64, name string) [4]uint32 {
	words := EncodeDecimal(d)
	for slot := range words {
		words[slot] = Forward32(words[slot], key, DecimalSlotID(name, slot))
	}
	return words
}

func (keyedCodec) DecodeDecimal(words [4]uint32, key uint64, name string) domain.Decimal {
	for slot := range words {
		words[slot] = Reverse32(words[slot], key, DecimalSlotID(name, slot))
	}
	return DecodeDecimal(words)
}
