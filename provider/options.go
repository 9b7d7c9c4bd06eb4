// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// options.go - functional options for New.
//
// Contract:
//   - Options record values; New validates them and returns sentinel errors
//     (ErrInvalidSeed, ErrInvalidScale) instead of panicking.
//   - Later options override earlier ones.
//   - Without WithSeed/WithSeed64 the seed comes from system entropy.

package provider

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvgen/isaac"
)

const (
	// DefaultScale is the scale of a Provider built without WithScales.
	DefaultScale = 32
	// DefaultSecondaryScale is the secondaryScale of a Provider built without WithScales.
	DefaultSecondaryScale = 8
)

// Option customizes a Provider before construction.
type Option func(*providerConfig)

// providerConfig aggregates all knobs resolved by New.
type providerConfig struct {
	seed           []uint32 // nil → entropy
	scale          int
	secondaryScale int
	log            logr.Logger
}

func newProviderConfig(opts ...Option) providerConfig {
	cfg := providerConfig{
		scale:          DefaultScale,
		secondaryScale: DefaultSecondaryScale,
		log:            logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the exact ISAAC seed. It must hold isaac.SeedSize words;
// New reports ErrInvalidSeed otherwise. The slice is copied.
func WithSeed(words []uint32) Option {
	seed := make([]uint32, len(words))
	copy(seed, words)
	return func(c *providerConfig) {
		c.seed = seed
	}
}

// WithSeed64 expands a 64-bit value into a full seed (see SeedFromUint64).
func WithSeed64(n uint64) Option {
	return func(c *providerConfig) {
		c.seed = SeedFromUint64(n)
	}
}

// WithScales sets scale and secondaryScale. Negative values make New fail
// with ErrInvalidScale.
func WithScales(scale, secondaryScale int) Option {
	return func(c *providerConfig) {
		c.scale, c.secondaryScale = scale, secondaryScale
	}
}

// WithLogger attaches a logger. V(0) announces entropy seeds so a failing run
// can be replayed; V(1) traces copies, resets and sub-stream derivation.
func WithLogger(l logr.Logger) Option {
	return func(c *providerConfig) {
		c.log = l
	}
}

func (c providerConfig) validate() error {
	if c.seed != nil && len(c.seed) != isaac.SeedSize {
		return fmt.Errorf("seed has %d words, want %d: %w", len(c.seed), isaac.SeedSize, ErrInvalidSeed)
	}
	if c.scale < 0 || c.secondaryScale < 0 {
		return fmt.Errorf("scales must be ≥ 0, got %d and %d: %w", c.scale, c.secondaryScale, ErrInvalidScale)
	}
	return nil
}
