// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// geometric.go - unbounded integers with geometric magnitude.
//
// Primitive:
//   - failures(m, limit) counts failed trials before the first success, where a
//     trial draws Range(0, m) and succeeds on 0. P(n) = (m/(m+1))^n · 1/(m+1),
//     so the mean is m. A count exceeding limit restarts the experiment.
//   - Means up to trialMeanLimit run the trials directly (about m+1 words).
//     Larger means sample the same law by inversion (see inversion.go), whose
//     cost grows with log m.
//
// Every signed variant is the primitive plus an offset and an optional sign bit.

package provider

import (
	"fmt"
	"math"
)

// trialMeanLimit is the largest mean sampled by direct trials.
const trialMeanLimit = 1 << 10

func (p *Provider) failures(mean, limit uint64) uint64 {
	switch {
	case mean == 0:
		return 0
	case mean > trialMeanLimit:
		return p.invert(mean, limit)
	}
	var n uint64
	for p.uniformUint64(mean) != 0 {
		if n == limit {
			n = 0
			continue
		}
		n++
	}
	return n
}

// NaturalIntGeometric returns an int32 ≥ 0 with mean scale. Requires scale ≥ 1.
func (p *Provider) NaturalIntGeometric() (int32, error) {
	if err := p.requireScale("NaturalIntGeometric", 1); err != nil {
		return 0, err
	}
	return int32(p.failures(uint64(p.scale), math.MaxInt32)), nil
}

// PositiveIntGeometric returns an int32 ≥ 1 with mean scale. Requires scale ≥ 1.
func (p *Provider) PositiveIntGeometric() (int32, error) {
	if err := p.requireScale("PositiveIntGeometric", 1); err != nil {
		return 0, err
	}
	return 1 + int32(p.failures(uint64(p.scale-1), math.MaxInt32-1)), nil
}

// NegativeIntGeometric returns an int32 ≤ -1 with mean -scale. Requires scale ≥ 1.
func (p *Provider) NegativeIntGeometric() (int32, error) {
	v, err := p.PositiveIntGeometric()
	if err != nil {
		return 0, fmt.Errorf("NegativeIntGeometric: %w", err)
	}
	return -v, nil
}

// NonzeroIntGeometric returns a PositiveIntGeometric magnitude with a uniform sign.
func (p *Provider) NonzeroIntGeometric() (int32, error) {
	v, err := p.PositiveIntGeometric()
	if err != nil {
		return 0, fmt.Errorf("NonzeroIntGeometric: %w", err)
	}
	if p.Bool() {
		return -v, nil
	}
	return v, nil
}

// IntGeometric returns a NaturalIntGeometric magnitude; nonzero magnitudes get
// a uniform sign. Requires scale ≥ 1.
func (p *Provider) IntGeometric() (int32, error) {
	v, err := p.NaturalIntGeometric()
	if err != nil {
		return 0, fmt.Errorf("IntGeometric: %w", err)
	}
	if v != 0 && p.Bool() {
		return -v, nil
	}
	return v, nil
}

// RangeUpIntGeometric returns an int32 ≥ a with mean scale. Requires scale > a.
func (p *Provider) RangeUpIntGeometric(a int32) (int32, error) {
	if int64(p.scale) <= int64(a) {
		return 0, fmt.Errorf("RangeUpIntGeometric(%d): scale %d must exceed the bound: %w", a, p.scale, ErrInvalidScale)
	}
	n := p.failures(uint64(int64(p.scale)-int64(a)), uint64(math.MaxInt32-int64(a)))
	return int32(int64(a) + int64(n)), nil
}

// RangeDownIntGeometric returns an int32 ≤ b with mean scale. Requires scale < b.
func (p *Provider) RangeDownIntGeometric(b int32) (int32, error) {
	if int64(p.scale) >= int64(b) {
		return 0, fmt.Errorf("RangeDownIntGeometric(%d): scale %d must be below the bound: %w", b, p.scale, ErrInvalidScale)
	}
	n := p.failures(uint64(int64(b)-int64(p.scale)), uint64(int64(b)-math.MinInt32))
	return int32(int64(b) - int64(n)), nil
}

// NaturalLongGeometric is NaturalIntGeometric for int64.
func (p *Provider) NaturalLongGeometric() (int64, error) {
	if err := p.requireScale("NaturalLongGeometric", 1); err != nil {
		return 0, err
	}
	return int64(p.failures(uint64(p.scale), math.MaxInt64)), nil
}

// PositiveLongGeometric is PositiveIntGeometric for int64.
func (p *Provider) PositiveLongGeometric() (int64, error) {
	if err := p.requireScale("PositiveLongGeometric", 1); err != nil {
		return 0, err
	}
	return 1 + int64(p.failures(uint64(p.scale-1), math.MaxInt64-1)), nil
}

// NegativeLongGeometric is NegativeIntGeometric for int64.
func (p *Provider) NegativeLongGeometric() (int64, error) {
	v, err := p.PositiveLongGeometric()
	if err != nil {
		return 0, fmt.Errorf("NegativeLongGeometric: %w", err)
	}
	return -v, nil
}

// NonzeroLongGeometric is NonzeroIntGeometric for int64.
func (p *Provider) NonzeroLongGeometric() (int64, error) {
	v, err := p.PositiveLongGeometric()
	if err != nil {
		return 0, fmt.Errorf("NonzeroLongGeometric: %w", err)
	}
	if p.Bool() {
		return -v, nil
	}
	return v, nil
}

// LongGeometric is IntGeometric for int64.
func (p *Provider) LongGeometric() (int64, error) {
	v, err := p.NaturalLongGeometric()
	if err != nil {
		return 0, fmt.Errorf("LongGeometric: %w", err)
	}
	if v != 0 && p.Bool() {
		return -v, nil
	}
	return v, nil
}

// RangeUpLongGeometric returns an int64 ≥ a with mean scale. Requires scale > a.
func (p *Provider) RangeUpLongGeometric(a int64) (int64, error) {
	if int64(p.scale) <= a {
		return 0, fmt.Errorf("RangeUpLongGeometric(%d): scale %d must exceed the bound: %w", a, p.scale, ErrInvalidScale)
	}
	// modular differences are exact: both are below 2^64
	mean := uint64(p.scale) - uint64(a)
	n := p.failures(mean, uint64(math.MaxInt64)-uint64(a))
	return int64(uint64(a) + n), nil
}

// RangeDownLongGeometric returns an int64 ≤ b with mean scale. Requires scale < b.
func (p *Provider) RangeDownLongGeometric(b int64) (int64, error) {
	if int64(p.scale) >= b {
		return 0, fmt.Errorf("RangeDownLongGeometric(%d): scale %d must be below the bound: %w", b, p.scale, ErrInvalidScale)
	}
	mean := uint64(b) - uint64(p.scale)
	n := p.failures(mean, uint64(b)+1<<63) // b - MinInt64
	return int64(uint64(b) - n), nil
}

// natural is the package-internal geometric count with an explicit mean,
// used for sizes and bit lengths. mean == 0 always returns 0 without drawing.
func (p *Provider) natural(mean int) int {
	if mean <= 0 {
		return 0
	}
	return int(p.failures(uint64(mean), math.MaxInt32))
}

// Geometric returns a natural number with the given mean, independent of
// scale. Combinatorial generators use it for sizes. mean must be ≥ 0; 0
// returns 0 without drawing.
func (p *Provider) Geometric(mean int) (int, error) {
	if mean < 0 {
		return 0, fmt.Errorf("Geometric(%d): %w", mean, ErrInvalidArgument)
	}
	return p.natural(mean), nil
}

// GeometricAtMost is Geometric conditioned on a result ≤ limit. An attempt
// stops as soon as it passes limit, so a small limit stays cheap even for a
// large mean. mean and limit must be ≥ 0.
func (p *Provider) GeometricAtMost(mean, limit int) (int, error) {
	if mean < 0 || limit < 0 {
		return 0, fmt.Errorf("GeometricAtMost(%d, %d): %w", mean, limit, ErrInvalidArgument)
	}
	if mean == 0 {
		return 0, nil
	}
	return int(p.failures(uint64(mean), uint64(min(limit, math.MaxInt32)))), nil
}
