// Package constants exposes the predefined obfuscated constant groups.
//
// Every accessor takes no arguments and returns the plaintext value,
// rebuilding it from scrambled storage on each call. The groups are built on
// first use. A failure to build or resolve a group is a programming error and
// panics.
package constants

//go:generate go run ../../cmd/app generate --manifest sealed.yaml --out sealed_gen.go

import (
	"github.com/allisson/constguard/internal/obfuscation/domain"
	"github.com/allisson/constguard/internal/obfuscation/usecase"
)

func mustFloat64(g *usecase.Group, name string) float64 {
	v, err := g.Float64(name)
	if err != nil {
		panic(err)
	}
	return v
}

func mustInt32(g *usecase.Group, name string) int32 {
	v, err := g.Int32(name)
	if err != nil {
		panic(err)
	}
	return v
}

func mustDecimal(g *usecase.Group, name string) domain.Decimal {
	v, err := g.Decimal(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Registrations returns every predefined group with the constants it exposes.
func Registrations() []usecase.Registration {
	return []usecase.Registration{
		{Source: basicGroup, Constants: basicConstants},
		{Source: enhancedGroup, Constants: enhancedConstants},
		{Source: decimalGroup, Constants: decimalConstants},
		{Source: secureGroup, Constants: secureConstants},
		{Source: sealedSource{}, Constants: sealedConstants},
	}
}

// Groups returns the runtime-built groups so callers can build them eagerly.
func Groups() []*usecase.Group {
	return []*usecase.Group{basicGroup, enhancedGroup, decimalGroup, secureGroup}
}
