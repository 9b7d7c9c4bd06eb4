// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// errors.go - sentinel errors for the provider package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context with %w ("Method: detail: %w").
//   - Samplers never panic on bad arguments; they return one of these.

package provider

import "errors"

// ErrInvalidSeed indicates a seed that does not have isaac.SeedSize words.
var ErrInvalidSeed = errors.New("provider: invalid seed")

// ErrInvalidScale indicates a scale or secondaryScale below what the sampler requires
// (or a negative value passed to WithScale/WithSecondaryScale).
var ErrInvalidScale = errors.New("provider: invalid scale")

// ErrEmptyRange indicates lo > hi, or a range containing no admissible value.
var ErrEmptyRange = errors.New("provider: empty range")

// ErrNaNBound indicates a NaN floating-point bound.
var ErrNaNBound = errors.New("provider: NaN bound")

// ErrInfiniteBound indicates an infinite bound where the sampling mode needs finite ones.
var ErrInfiniteBound = errors.New("provider: infinite bound")

// ErrInvalidArgument indicates any other argument outside the sampler's domain
// (negative sizes, runes beyond unicode.MaxRune, unknown modes).
var ErrInvalidArgument = errors.New("provider: invalid argument")

// ErrInvalidConfig indicates a configuration source (env, YAML, map) that could not be decoded.
var ErrInvalidConfig = errors.New("provider: invalid configuration")
