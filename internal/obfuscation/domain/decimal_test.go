package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/constguard/internal/errors"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		literal  string
		expected Decimal
	}{
		{
			name:     "Pi",
			literal:  "3.1415926535897932384626433833",
			expected: Decimal{Lo: 0x41b65f29, Mid: 0x0b143885, Hi: 0x6582a536, Flags: 0x001c0000},
		},
		{
			name:     "E",
			literal:  "2.7182818284590452353602874714",
			expected: Decimal{Lo: 0x857aed5a, Mid: 0xebecde35, Hi: 0x57d519ab, Flags: 0x001c0000},
		},
		{
			name:     "OnePercent",
			literal:  "0.01",
			expected: Decimal{Lo: 1, Flags: 0x00020000},
		},
		{
			name:     "Integer",
			literal:  "42",
			expected: Decimal{Lo: 42},
		},
		{
			name:     "Negative",
			literal:  "-123.45",
			expected: Decimal{Lo: 12345, Flags: 0x80020000},
		},
		{
			name:     "ExplicitPlus",
			literal:  "+7",
			expected: Decimal{Lo: 7},
		},
		{
			name:     "TrailingZerosKeepScale",
			literal:  "0.010",
			expected: Decimal{Lo: 10, Flags: 0x00030000},
		},
		{
			name:     "LeadingDot",
			literal:  ".5",
			expected: Decimal{Lo: 5, Flags: 0x00010000},
		},
		{
			name:     "MaxMantissa",
			literal:  "79228162514264337593543950335",
			expected: Decimal{Lo: 0xffffffff, Mid: 0xffffffff, Hi: 0xffffffff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDecimal(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
			assert.NoError(t, d.Validate())
		})
	}
}

func TestParseDecimal_Errors(t *testing.T) {
	tests := []struct {
		name    string
		literal string
	}{
		{name: "Empty", literal: ""},
		{name: "Blank", literal: "   "},
		{name: "OnlySign", literal: "-"},
		{name: "OnlyDot", literal: "."},
		{name: "TwoDots", literal: "1.2.3"},
		{name: "Letters", literal: "3.14abc"},
		{name: "Exponent", literal: "1e10"},
		{name: "TooManyFractionDigits", literal: "0.12345678901234567890123456789"},
		{name: "MantissaOverflow", literal: "79228162514264337593543950336"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecimal(tt.literal)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDecimal)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestMustParseDecimal(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			d := MustParseDecimal("1.5")
			assert.Equal(t, "1.5", d.String())
		})
	})

	t.Run("Panic", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParseDecimal("not a number")
		})
	})
}

func TestDecimal_String(t *testing.T) {
	literals := []string{
		"3.1415926535897932384626433833",
		"2.7182818284590452353602874714",
		"0.01",
		"0.010",
		"42",
		"-123.45",
		"-0.0001",
		"0",
		"79228162514264337593543950335",
	}

	for _, literal := range literals {
		t.Run(literal, func(t *testing.T) {
			d := MustParseDecimal(literal)
			assert.Equal(t, literal, d.String())
		})
	}
}

func TestDecimal_Rat(t *testing.T) {
	d := MustParseDecimal("-0.25")

	assert.Equal(t, 0, d.Rat().Cmp(big.NewRat(-1, 4)))
	assert.Equal(t, -0.25, d.Float64())
	assert.True(t, d.Negative())
	assert.Equal(t, 2, d.Scale())
}

func TestDecimal_Validate(t *testing.T) {
	t.Run("Success_Zero", func(t *testing.T) {
		assert.NoError(t, Decimal{}.Validate())
	})

	t.Run("Error_ReservedBits", func(t *testing.T) {
		err := Decimal{Flags: 0x00000001}.Validate()
		assert.ErrorIs(t, err, ErrInvalidDecimal)
	})

	t.Run("Error_ScaleTooLarge", func(t *testing.T) {
		err := Decimal{Flags: 29 << 16}.Validate()
		assert.ErrorIs(t, err, ErrInvalidDecimal)
	})
}

func TestDecimal_Words(t *testing.T) {
	d := Decimal{Lo: 1, Mid: 2, Hi: 3, Flags: 4}

	assert.Equal(t, [4]uint32{1, 2, 3, 4}, d.Words())
	assert.Equal(t, d, DecimalFromWords(d.Words()))
}
