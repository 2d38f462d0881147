package cargs

import "errors"

var (
	// ErrInvalidDeclaration is returned on malformed declarations,
	// empty option patterns, broken regular expressions, out of range
	// capture groups and duplicate keys.
	ErrInvalidDeclaration = errors.New("invalid argument declaration")
	// ErrMissingValue is returned when a next-token option appears as the
	// last token with no following value.
	ErrMissingValue = errors.New("missing option value")
	// ErrTooManyPositionals is returned when a token remains unclaimed
	// after all positional declarations are exhausted.
	ErrTooManyPositionals = errors.New("too many positional arguments")
	// ErrMissingRequiredPositional is returned after the scan when a
	// positional declaration received fewer values than its arity requires.
	ErrMissingRequiredPositional = errors.New("missing required positional argument")
	// ErrUnknownKey is returned on result lookups for undeclared keys.
	ErrUnknownKey = errors.New("unknown argument key")
)
