package service

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// Decimal storage slots. The complemented lo and flags words trade places.
const (
	slotFlags = iota
	slotMid
	slotHi
	slotLo
)

// decimalSlotNames label each storage slot when a per-slot identifier is needed.
var decimalSlotNames = [4]string{"flags", "mid", "hi", "lo"}

// EncodeDecimal complements every word of d and stores them as flags, mid, hi, lo.
func EncodeDecimal(d domain.Decimal) [4]uint32 {
	var words [4]uint32
	words[slotFlags] = ^d.Flags
	words[slotMid] = ^d.Mid
	words[slotHi] = ^d.Hi
	words[slotLo] = ^d.Lo
	return words
}

// DecodeDecimal reverses EncodeDecimal.
func DecodeDecimal(words [4]uint32) domain.Decimal {
	return domain.Decimal{
		Lo:    ^words[slotLo],
		Mid:   ^words[slotMid],
		Hi:    ^words[slotHi],
		Flags: ^words[slotFlags],
	}
}

// DecimalSlotID returns the identifier used for one storage slot of a keyed decimal.
func DecimalSlotID(name string, slot int) string {
	return name + "/" + decimalSlotNames[slot]
}
