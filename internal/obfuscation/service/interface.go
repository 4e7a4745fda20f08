package service

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// Codec turns plaintext constant bits into stored words and back.
//
// Implementations are stateless and safe for concurrent use. For every key
// and identifier, Decode* inverts the matching Encode*. Families that do not
// mix the key into the value ignore it.
type Codec interface {
	// Family reports which obfuscation family the codec implements.
	Family() domain.Family

	// Encode64 obfuscates the raw bits of a float64 constant.
	Encode64(bits, key uint64, name string) uint64

	// Decode64 recovers the raw bits passed to Encode64.
	Decode64(stored, key uint64, name string) uint64

	// Encode32 obfuscates the raw bits of an int32 constant.
	Encode32(bits uint32, key uint64, name string) uint32

	// Decode32 recovers the raw bits passed to Encode32.
	Decode32(stored uint32, key uint64, name string) uint32

	// EncodeDecimal obfuscates the four words of a decimal constant.
	EncodeDecimal(d domain.Decimal, key uint64, name string) [4]uint32

	// DecodeDecimal recovers the decimal passed to EncodeDecimal.
	DecodeDecimal(words [4]uint32, key uint64, name string) domain.Decimal
}
