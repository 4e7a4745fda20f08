package domain

import (
	"github.com/allisson/constguard/internal/errors"
)

// Obfuscation error definitions.
//
// The transform itself is total and never fails. These errors come from the
// layers around it: looking a constant up in a group, checking its kind and
// resolving a masked arena handle.
var (
	// ErrConstantNotFound indicates the group holds no constant with the requested identifier.
	ErrConstantNotFound = errors.Wrap(errors.ErrNotFound, "constant not found")

	// ErrGroupNotFound indicates no registered group carries the requested name.
	ErrGroupNotFound = errors.Wrap(errors.ErrNotFound, "constant group not found")

	// ErrKindMismatch indicates a constant was read through an accessor of another kind.
	ErrKindMismatch = errors.Wrap(errors.ErrInvalidInput, "constant kind mismatch")

	// ErrUnsupportedKind indicates a definition carries an unknown kind.
	ErrUnsupportedKind = errors.Wrap(errors.ErrInvalidInput, "unsupported constant kind")

	// ErrUnsupportedFamily indicates a group was declared with an unknown family.
	ErrUnsupportedFamily = errors.Wrap(errors.ErrInvalidInput, "unsupported obfuscation family")

	// ErrInvalidDecimal indicates a decimal literal or bit pattern cannot be represented.
	//
	// Valid decimals carry a mantissa of at most 96 bits, a scale between 0 and
	// 28 and no flag bits other than the scale byte and the sign bit.
	ErrInvalidDecimal = errors.Wrap(errors.ErrInvalidInput, "invalid decimal")

	// ErrDuplicateConstant indicates two identifiers of one group hash to the same value.
	//
	// Groups index their slots by identifier hash so that identifiers are not
	// retained, which makes a hash collision inside one group a declaration error.
	ErrDuplicateConstant = errors.Wrap(errors.ErrConflict, "duplicate constant identifier")

	// ErrInvalidHandle indicates a masked handle did not resolve to a published container.
	//
	// This only happens when key components differ between publish and read.
	ErrInvalidHandle = errors.Wrap(errors.ErrInternal, "invalid storage handle")
)
