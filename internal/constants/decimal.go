package constants

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

var decimalGroup = usecase.NewGroup("decimals", domain.FamilyEnhanced, func() []domain.Definition {
	return []domain.Definition{
		domain.DecimalDefinition("PiDecimal", domain.Decimal{
			Lo: 0x41b65f29, Mid: 0x0b143885, Hi: 0x6582a536, Flags: 0x001c0000,
		}),
		domain.DecimalDefinition("EDecimal", domain.Decimal{
			Lo: 0x857aed5a, Mid: 0xebecde35, Hi: 0x57d519ab, Flags: 0x001c0000,
		}),
		domain.DecimalDefinition("OnePercent", domain.Decimal{Lo: 1, Flags: 0x00020000}),
	}
}, usecase.WithPepper(domain.DecimalPepper))

var decimalConstants = []domain.ConstantInfo{
	{Name: "PiDecimal", Kind: domain.KindDecimal},
	{Name: "EDecimal", Kind: domain.KindDecimal},
	{Name: "OnePercent", Kind: domain.KindDecimal},
}

// PiDecimal returns π to 28 decimal places.
func PiDecimal() domain.Decimal { return mustDecimal(decimalGroup, "PiDecimal") }

// EDecimal returns Euler's number to 28 decimal places.
func EDecimal() domain.Decimal { return mustDecimal(decimalGroup, "EDecimal") }

// OnePercent returns 0.01.
func OnePercent() domain.Decimal { return mustDecimal(decimalGroup, "OnePercent") }
