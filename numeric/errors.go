package numeric

import "errors"

// ErrSyntax indicates a string that is not a valid Decimal or BinaryFraction literal.
var ErrSyntax = errors.New("numeric: invalid syntax")

// ErrExponentRange indicates a parsed or computed scale/exponent outside its integer range.
var ErrExponentRange = errors.New("numeric: exponent out of range")

// ErrInexact indicates an operation that would lose digits, e.g. Rescale to a
// smaller scale when the dropped digits are not all zero.
var ErrInexact = errors.New("numeric: inexact result")

// ErrNotFinite indicates a NaN or infinite float where a finite value is required.
var ErrNotFinite = errors.New("numeric: value is not finite")
