package domain

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// MaxDecimalScale is the largest number of fractional digits a Decimal can carry.
	MaxDecimalScale = 28

	decimalScaleShift = 16
	decimalScaleMask  = uint32(0x00FF0000)
	decimalSignMask   = uint32(0x80000000)
)

// Decimal is a 128-bit fixed-point decimal laid out as four 32-bit words.
//
// The value is (-1)^sign * (Hi<<64 | Mid<<32 | Lo) / 10^scale, where scale is
// stored in bits 16-23 of Flags and the sign in bit 31. Trailing zeros are
// significant: 0.010 and 0.01 have different bit patterns.
type Decimal struct {
	Lo    uint32
	Mid   uint32
	Hi    uint32
	Flags uint32
}

// DecimalFromWords builds a Decimal from words in lo, mid, hi, flags order.
func DecimalFromWords(words [4]uint32) Decimal {
	return Decimal{Lo: words[0], Mid: words[1], Hi: words[2], Flags: words[3]}
}

// Words returns the decimal words in lo, mid, hi, flags order.
func (d Decimal) Words() [4]uint32 {
	return [4]uint32{d.Lo, d.Mid, d.Hi, d.Flags}
}

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int {
	return int((d.Flags & decimalScaleMask) >> decimalScaleShift)
}

// Negative reports whether the sign bit is set.
func (d Decimal) Negative() bool {
	return d.Flags&decimalSignMask != 0
}

// Validate checks that the bit pattern is a representable decimal.
func (d Decimal) Validate() error {
	if d.Flags&^(decimalScaleMask|decimalSignMask) != 0 {
		return fmt.Errorf("%w: reserved flag bits set (flags=%#08x)", ErrInvalidDecimal, d.Flags)
	}
	if d.Scale() > MaxDecimalScale {
		return fmt.Errorf("%w: scale %d exceeds %d", ErrInvalidDecimal, d.Scale(), MaxDecimalScale)
	}
	return nil
}

// Mantissa returns the unsigned 96-bit integer part of the decimal.
func (d Decimal) Mantissa() *big.Int {
	m := new(big.Int).SetUint64(uint64(d.Hi))
	m.Lsh(m, 32)
	m.Or(m, new(big.Int).SetUint64(uint64(d.Mid)))
	m.Lsh(m, 32)
	m.Or(m, new(big.Int).SetUint64(uint64(d.Lo)))
	return m
}

// Rat returns the exact rational value of the decimal.
func (d Decimal) Rat() *big.Rat {
	num := d.Mantissa()
	if d.Negative() {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil)
	return new(big.Rat).SetFrac(num, den)
}

// Float64 returns the nearest float64 to the decimal value.
func (d Decimal) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

// String formats the decimal with exactly Scale() fractional digits.
func (d Decimal) String() string {
	digits := d.Mantissa().String()
	scale := d.Scale()

	if scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}

	if d.Negative() {
		return "-" + digits
	}
	return digits
}

// ParseDecimal parses a plain decimal literal such as "3.14", "-0.01" or "42".
//
// Exponents are not accepted. The literal may carry at most 28 fractional
// digits and its digits, read as an integer, must fit in 96 bits.
func ParseDecimal(s string) (Decimal, error) {
	literal := strings.TrimSpace(s)
	if literal == "" {
		return Decimal{}, fmt.Errorf("%w: empty literal", ErrInvalidDecimal)
	}

	negative := false
	switch literal[0] {
	case '-':
		negative = true
		literal = literal[1:]
	case '+':
		literal = literal[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(literal, ".")
	if intPart == "" && fracPart == "" {
		return Decimal{}, fmt.Errorf("%w: %q has no digits", ErrInvalidDecimal, s)
	}
	if hasDot && strings.Contains(fracPart, ".") {
		return Decimal{}, fmt.Errorf("%w: %q has more than one decimal point", ErrInvalidDecimal, s)
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return Decimal{}, fmt.Errorf("%w: %q contains %q", ErrInvalidDecimal, s, r)
		}
	}
	if len(fracPart) > MaxDecimalScale {
		return Decimal{}, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidDecimal, s, MaxDecimalScale)
	}

	mantissa, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	if mantissa.BitLen() > 96 {
		return Decimal{}, fmt.Errorf("%w: %q does not fit in 96 bits", ErrInvalidDecimal, s)
	}

	words := new(big.Int).Set(mantissa)
	mask := new(big.Int).SetUint64(0xFFFFFFFF)
	lo := new(big.Int).And(words, mask).Uint64()
	words.Rsh(words, 32)
	mid := new(big.Int).And(words, mask).Uint64()
	words.Rsh(words, 32)
	hi := words.Uint64()

	flags := uint32(len(fracPart)) << decimalScaleShift
	if negative {
		flags |= decimalSignMask
	}

	return Decimal{Lo: uint32(lo), Mid: uint32(mid), Hi: uint32(hi), Flags: flags}, nil
}

// MustParseDecimal is like ParseDecimal but panics on error.
// It is intended for package-level constant declarations.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}
