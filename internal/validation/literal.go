package validation

import (
	"strconv"

	validation "github.com/jellydator/validation"

	"github.com/allisson/constguard/internal/obfuscation/domain"
)

// Kind validates that a string names a supported constant kind.
var Kind = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_kind_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !domain.Kind(s).Valid() {
		return validation.NewError("validation_kind", "must be one of float64, int32, decimal")
	}
	return nil
})

// Literal returns a rule checking that a string parses as a value of kind.
// Unknown kinds are left to the Kind rule.
func Literal(kind string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_literal_type", "must be a string")
		}
		if s == "" {
			return nil // Let Required handle empty strings
		}

		var err error
		switch domain.Kind(kind) {
		case domain.KindFloat64:
			_, err = strconv.ParseFloat(s, 64)
		case domain.KindInt32:
			_, err = strconv.ParseInt(s, 10, 32)
		case domain.KindDecimal:
			_, err = domain.ParseDecimal(s)
		default:
			return nil
		}
		if err != nil {
			return validation.NewError("validation_literal", "must be a valid "+kind+" literal")
		}
		return nil
	})
}
