// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/constguard/internal/errors"
)

var (
	// exportedIdentRegex matches an exported Go identifier made of ASCII letters and digits
	exportedIdentRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

	// lowerIdentRegex matches a lower-case Go identifier usable as a package or group name
	lowerIdentRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

	// pathSegmentRegex matches a group or constant name taken from a URL path
	pathSegmentRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// ExportedIdentifier validates that a string can be used as an exported Go identifier suffix
var ExportedIdentifier = validation.NewStringRuleWithError(
	func(s string) bool {
		return exportedIdentRegex.MatchString(s)
	},
	validation.NewError("validation_exported_identifier", "must start with an upper-case letter followed by letters or digits"),
)

// LowerIdentifier validates that a string is a lower-case Go identifier
var LowerIdentifier = validation.NewStringRuleWithError(
	func(s string) bool {
		return lowerIdentRegex.MatchString(s)
	},
	validation.NewError("validation_lower_identifier", "must be lower-case letters and digits starting with a letter"),
)

// PathSegment validates a group or constant name received in a request path
var PathSegment = validation.NewStringRuleWithError(
	func(s string) bool {
		return pathSegmentRegex.MatchString(s)
	},
	validation.NewError("validation_path_segment", "must start with a letter and contain only letters, digits, '_' or '-'"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// SingleLine validates that a string holds no line breaks or other control characters
var SingleLine = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.IndexFunc(s, unicode.IsControl) < 0 &&
			!strings.ContainsRune(s, '\u2028') && !strings.ContainsRune(s, '\u2029')
	},
	validation.NewError("validation_single_line", "must be a single line without control characters"),
)
