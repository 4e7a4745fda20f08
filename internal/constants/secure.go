package constants

import (
	"math"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

var secureGroup = usecase.NewGroup("secure", domain.FamilyKeyed, func() []domain.Definition {
	return []domain.Definition{
		domain.Float64Definition("Pi", math.Pi),
		domain.Float64Definition("E", math.E),
		domain.Float64Definition("Sqrt2", math.Sqrt2),
		domain.Float64Definition("GoldenRatio", math.Phi),
		domain.Int32Definition("MaxInt32", math.MaxInt32),
		domain.Int32Definition("Answer", 42),
		domain.DecimalDefinition("PiDecimal", domain.Decimal{
			Lo: 0x41b65f29, Mid: 0x0b143885, Hi: 0x6582a536, Flags: 0x001c0000,
		}),
		domain.DecimalDefinition("EDecimal", domain.Decimal{
			Lo: 0x857aed5a, Mid: 0xebecde35, Hi: 0x57d519ab, Flags: 0x001c0000,
		}),
		domain.DecimalDefinition("OnePercent", domain.Decimal{Lo: 1, Flags: 0x00020000}),
	}
})

var secureConstants = []domain.ConstantInfo{
	{Name: "Pi", Kind: domain.KindFloat64},
	{Name: "E", Kind: domain.KindFloat64},
	{Name: "Sqrt2", Kind: domain.KindFloat64},
	{Name: "GoldenRatio", Kind: domain.KindFloat64},
	{Name: "MaxInt32", Kind: domain.KindInt32},
	{Name: "Answer", Kind: domain.KindInt32},
	{Name: "PiDecimal", Kind: domain.KindDecimal},
	{Name: "EDecimal", Kind: domain.KindDecimal},
	{Name: "OnePercent", Kind: domain.KindDecimal},
}

// SecurePi returns π from the keyed group.
func SecurePi() float64 { return mustFloat64(secureGroup, "Pi") }

// SecureE returns Euler's number from the keyed group.
func SecureE() float64 { return mustFloat64(secureGroup, "E") }

// SecureSqrt2 returns √2 from the keyed group.
func SecureSqrt2() float64 { return mustFloat64(secureGroup, "Sqrt2") }

// SecureGoldenRatio returns φ from the keyed group.
func SecureGoldenRatio() float64 { return mustFloat64(secureGroup, "GoldenRatio") }

// SecureMaxInt32 returns the largest int32 from the keyed group.
func SecureMaxInt32() int32 { return mustInt32(secureGroup, "MaxInt32") }

// SecureAnswer returns 42 from the keyed group.
func SecureAnswer() int32 { return mustInt32(secureGroup, "Answer") }

// SecurePiDecimal returns π to 28 decimal places from the keyed group.
func SecurePiDecimal() domain.Decimal { return mustDecimal(secureGroup, "PiDecimal") }

// SecureEDecimal returns Euler's number to 28 decimal places from the keyed group.
func SecureEDecimal() domain.Decimal { return mustDecimal(secureGroup, "EDecimal") }

// SecureOnePercent returns 0.01 from the keyed group.
func SecureOnePercent() domain.Decimal { return mustDecimal(secureGroup, "OnePercent") }
