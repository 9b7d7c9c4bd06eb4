// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// provider.go - Provider construction, derived views and lifecycle.
//
// Ownership model:
//   - A stream (ISAAC core + sub-stream cache) is owned by one Provider and
//     shared by the views WithScale/WithSecondaryScale return.
//   - Copy gives a new stream with a cloned core and a snapshot of every cached
//     sub-stream, so nothing mutable is shared with the original.
//   - DeepCopy is an alias of Copy.

package provider

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvgen/isaac"
)

// Provider is a seeded source of random values with two shape parameters.
// The zero value is not usable; build one with New.
type Provider struct {
	st             *stream
	scale          int
	secondaryScale int
	id             uint64
	log            logr.Logger
}

// stream is the mutable part shared by a Provider and its scale views.
type stream struct {
	core *isaac.Generator
	subs *substreams
}

// New builds a Provider from options. See WithSeed, WithSeed64, WithScales, WithLogger.
//
// Errors:
//   - ErrInvalidSeed if the seed does not have isaac.SeedSize words.
//   - ErrInvalidScale if a scale is negative.
func New(opts ...Option) (*Provider, error) {
	cfg := newProviderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	seed := cfg.seed
	if seed == nil {
		n, err := entropySeed()
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		seed = SeedFromUint64(n)
		cfg.log.Info("seeded from system entropy; replay with WithSeed64", "seed64", n)
	}

	core, err := isaac.New(seed)
	if err != nil {
		return nil, fmt.Errorf("New: %w: %w", ErrInvalidSeed, err)
	}

	p := &Provider{
		st:             &stream{core: core, subs: newSubstreams()},
		scale:          cfg.scale,
		secondaryScale: cfg.secondaryScale,
		id:             fingerprint(seed),
		log:            cfg.log,
	}
	p.log.V(1).Info("provider created", "id", p.id, "scale", p.scale, "secondaryScale", p.secondaryScale)

	return p, nil
}

// Scale returns the primary shape parameter.
func (p *Provider) Scale() int { return p.scale }

// SecondaryScale returns the secondary shape parameter.
func (p *Provider) SecondaryScale() int { return p.secondaryScale }

// Seed returns a copy of the seed words.
func (p *Provider) Seed() []uint32 { return p.st.core.Seed() }

// Position returns the number of words drawn since construction or the last Reset.
func (p *Provider) Position() uint64 { return p.st.core.Drawn() }

// WithScale returns a view of p with a different scale. The view shares p's
// stream: drawing from either advances both.
func (p *Provider) WithScale(scale int) (*Provider, error) {
	if scale < 0 {
		return nil, fmt.Errorf("WithScale: got %d: %w", scale, ErrInvalidScale)
	}
	v := *p
	v.scale = scale

	return &v, nil
}

// WithSecondaryScale returns a view of p with a different secondaryScale,
// sharing p's stream.
func (p *Provider) WithSecondaryScale(secondaryScale int) (*Provider, error) {
	if secondaryScale < 0 {
		return nil, fmt.Errorf("WithSecondaryScale: got %d: %w", secondaryScale, ErrInvalidScale)
	}
	v := *p
	v.secondaryScale = secondaryScale

	return &v, nil
}

// Copy returns a Provider with the same seed, scales and cursor position whose
// stream advances independently. Every cached sub-stream is snapshotted at its
// current position, so the copy may be handed to another goroutine.
func (p *Provider) Copy() *Provider {
	c := *p
	c.st = &stream{core: p.st.core.Clone(), subs: p.st.subs.snapshot()}
	p.log.V(1).Info("copy", "id", p.id, "position", p.Position(), "substreams", c.st.subs.len())

	return &c
}

// DeepCopy is equivalent to Copy.
func (p *Provider) DeepCopy() *Provider { return p.Copy() }

// Reset rewinds the stream to the seeded position and drops cached
// sub-streams. Scales are unchanged. Views sharing the stream are rewound too.
func (p *Provider) Reset() {
	p.st.core.Reset()
	p.st.subs = newSubstreams()
	p.log.V(1).Info("reset", "id", p.id)
}
