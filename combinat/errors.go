// SPDX-License-Identifier: MIT
// Package: lvgen/combinat
//
// errors.go - sentinel errors for combinatorial generators.
//
// Scale preconditions reuse provider.ErrInvalidScale.

package combinat

import "errors"

// ErrUnsatisfiableSize indicates a minimum or fixed size larger than a finite domain.
var ErrUnsatisfiableSize = errors.New("combinat: size unsatisfiable by domain")

// ErrDomainExhausted indicates a source stream that ended before a value could be completed.
var ErrDomainExhausted = errors.New("combinat: domain exhausted")

// ErrEmptyInput indicates an empty slice or component where at least one element is needed.
var ErrEmptyInput = errors.New("combinat: empty input")

// ErrInvalidSize indicates a negative size argument.
var ErrInvalidSize = errors.New("combinat: invalid size")

// ErrNilFunc indicates a nil callback.
var ErrNilFunc = errors.New("combinat: nil function")
