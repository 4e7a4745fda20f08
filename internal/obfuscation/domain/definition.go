package domain

import (
	"math"
	"strconv"
)

// Definition declares one plaintext constant of a group.
//
// Definitions are consumed by the forward pipeline when a group is built and
// are not retained afterwards. Only the field matching Kind is read.
type Definition struct {
	Name    string
	Kind    Kind
	Float64 float64
	Int32   int32
	Decimal Decimal
}

// Float64Definition declares a float64 constant.
func Float64Definition(name string, value float64) Definition {
	return Definition{Name: name, Kind: KindFloat64, Float64: value}
}

// Int32Definition declares an int32 constant.
func Int32Definition(name string, value int32) Definition {
	return Definition{Name: name, Kind: KindInt32, Int32: value}
}

// DecimalDefinition declares a decimal constant.
func DecimalDefinition(name string, value Decimal) Definition {
	return Definition{Name: name, Kind: KindDecimal, Decimal: value}
}

// Bits64 returns the raw IEEE-754 bits of a float64 definition.
func (d Definition) Bits64() uint64 {
	return math.Float64bits(d.Float64)
}

// Bits32 returns the raw two's complement bits of an int32 definition.
func (d Definition) Bits32() uint32 {
	return uint32(d.Int32)
}

// Value is a decoded constant as handed to outer layers (CLI, HTTP).
type Value struct {
	Group   string
	Name    string
	Kind    Kind
	Float64 float64
	Int32   int32
	Decimal Decimal
}

// String formats the value according to its kind.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat64:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case KindInt32:
		return strconv.FormatInt(int64(v.Int32), 10)
	case KindDecimal:
		return v.Decimal.String()
	default:
		return ""
	}
}
