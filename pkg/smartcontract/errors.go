package smartcontract

import "errors"

// Encoding errors. Every encoder surfaces the first violated invariant to the
// immediate caller wrapped into one of these, nothing is retried and no
// partial structures are returned on failure.
var (
	// ErrUnknownType is returned when a parameter type tag is outside of
	// the supported set.
	ErrUnknownType = errors.New("unknown parameter type")
	// ErrFlagTypeMismatch is returned when parameter flags don't agree
	// with the parameter type (or with the rest of the parameter list).
	ErrFlagTypeMismatch = errors.New("flag is not applicable to type")
	// ErrValueOutOfRange is returned when an integer value doesn't fit
	// into the declared type's byte width.
	ErrValueOutOfRange = errors.New("value out of range for type")
	// ErrInvalidAddress is returned for malformed ledger addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidAmount is returned for malformed or negative amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidCurrency is returned for malformed currency codes.
	ErrInvalidCurrency = errors.New("invalid currency")
	// ErrInvalidNumber is returned for non-numeric Number values.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidHex is returned for malformed hexadecimal input.
	ErrInvalidHex = errors.New("invalid hex")
	// ErrTooManyFunctions is returned when a contract declares more than
	// MaxFunctions functions.
	ErrTooManyFunctions = errors.New("too many functions")
	// ErrTooManyParameters is returned when a function declares more than
	// MaxFunctionParameters parameters.
	ErrTooManyParameters = errors.New("too many parameters")
	// ErrDuplicateFunctionName is returned when two functions of one
	// contract share an encoded name.
	ErrDuplicateFunctionName = errors.New("duplicate function name")
	// ErrArityMismatch is returned when instance parameter declarations
	// and values differ in length.
	ErrArityMismatch = errors.New("parameter/value arity mismatch")
	// ErrTypeMismatch is returned when a value's shape doesn't match the
	// declared parameter type or when paired instance declarations and
	// values disagree.
	ErrTypeMismatch = errors.New("type mismatch")
)
