package constants

import (
	"math"

	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

var enhancedGroup = usecase.NewGroup("enhanced", domain.FamilyEnhanced, func() []domain.Definition {
	return []domain.Definition{
		domain.Float64Definition("Pi", math.Pi),
		domain.Float64Definition("E", math.E),
		domain.Float64Definition("Sqrt2", math.Sqrt2),
		domain.Float64Definition("GoldenRatio", math.Phi),
		domain.Int32Definition("MaxInt32", math.MaxInt32),
		domain.Int32Definition("Answer", 42),
	}
})

var enhancedConstants = []domain.ConstantInfo{
	{Name: "Pi", Kind: domain.KindFloat64},
	{Name: "E", Kind: domain.KindFloat64},
	{Name: "Sqrt2", Kind: domain.KindFloat64},
	{Name: "GoldenRatio", Kind: domain.KindFloat64},
	{Name: "MaxInt32", Kind: domain.KindInt32},
	{Name: "Answer", Kind: domain.KindInt32},
}

// Pi returns π.
func Pi() float64 { return mustFloat64(enhancedGroup, "Pi") }

// E returns Euler's number.
func E() float64 { return mustFloat64(enhancedGroup, "E") }

// Sqrt2 returns √2.
func Sqrt2() float64 { return mustFloat64(enhancedGroup, "Sqrt2") }

// GoldenRatio returns φ.
func GoldenRatio() float64 { return mustFloat64(enhancedGroup, "GoldenRatio") }

// MaxInt32 returns the largest int32.
func MaxInt32() int32 { return mustInt32(enhancedGroup, "MaxInt32") }

// Answer returns 42.
func Answer() int32 { return mustInt32(enhancedGroup, "Answer") }
