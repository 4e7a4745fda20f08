package constants

import (
	"math"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

var basicGroup = usecase.NewGroup("basic", domain.FamilyBasic, func() []domain.Definition {
	return []domain.Definition{
		domain.Float64Definition("Pi", math.Pi),
		domain.Float64Definition("E", math.E),
		domain.Float64Definition("Sqrt2", math.Sqrt2),
	}
})

var basicConstants = []domain.ConstantInfo{
	{Name: "Pi", Kind: domain.KindFloat64},
	{Name: "E", Kind: domain.KindFloat64},
	{Name: "Sqrt2", Kind: domain.KindFloat64},
}

// BasicPi returns π from the basic group.
func BasicPi() float64 { return mustFloat64(basicGroup, "Pi") }

// BasicE returns Euler's number from the basic group.
func BasicE() float64 { return mustFloat64(basicGroup, "E") }

// BasicSqrt2 returns √2 from the basic group.
func BasicSqrt2() float64 { return mustFloat64(basicGroup, "Sqrt2") }
