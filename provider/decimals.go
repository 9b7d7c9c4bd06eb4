// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// decimals.go - arbitrary-precision decimal samplers.
//
// A decimal is unscaled · 10^-s. The unscaled value comes from the BigInt
// samplers (bit length geometric with mean scale), s from a signed geometric
// draw with mean secondaryScale, unscaled first.

package provider

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvgen/numeric"
)

// DecimalMode selects the representation space of generated decimals.
type DecimalMode int

const (
	// NonCanonical keeps redundant trailing zeros, exercising every
	// representation of a value (1.0, 1.00, 10E-1 ...).
	NonCanonical DecimalMode = iota
	// Canonical normalizes every result: no trailing zero in the unscaled
	// value, and zero only as 0 with scale 0.
	Canonical
)

// String returns "canonical" or "non-canonical".
func (m DecimalMode) String() string {
	switch m {
	case Canonical:
		return "canonical"
	case NonCanonical:
		return "non-canonical"
	default:
		return fmt.Sprintf("DecimalMode(%d)", int(m))
	}
}

func (p *Provider) requireDecimal(method string, mode DecimalMode) error {
	if mode != Canonical && mode != NonCanonical {
		return fmt.Errorf("%s: %v: %w", method, mode, ErrInvalidArgument)
	}
	if err := p.requireScale(method, 1); err != nil {
		return err
	}
	return p.requireSecondaryScale(method, 1)
}

func (p *Provider) decimal(mode DecimalMode, unscaled *big.Int) numeric.Decimal {
	return normalize(mode, numeric.NewDecimal(unscaled, int32(p.signedNatural(p.secondaryScale))))
}

// decimalWith draws the unscaled value with draw, then the scale.
func (p *Provider) decimalWith(method string, mode DecimalMode, draw func() (*big.Int, error)) (numeric.Decimal, error) {
	if err := p.requireDecimal(method, mode); err != nil {
		return numeric.Decimal{}, err
	}
	u, err := draw()
	if err != nil {
		return numeric.Decimal{}, fmt.Errorf("%s: %w", method, err)
	}
	return p.decimal(mode, u), nil
}

// BigDecimal returns a decimal of any sign. Requires scale ≥ 1 and secondaryScale ≥ 1.
func (p *Provider) BigDecimal(mode DecimalMode) (numeric.Decimal, error) {
	return p.decimalWith("BigDecimal", mode, p.BigInt)
}

// PositiveBigDecimal returns a decimal > 0.
func (p *Provider) PositiveBigDecimal(mode DecimalMode) (numeric.Decimal, error) {
	return p.decimalWith("PositiveBigDecimal", mode, p.PositiveBigInt)
}

// NegativeBigDecimal returns a decimal < 0.
func (p *Provider) NegativeBigDecimal(mode DecimalMode) (numeric.Decimal, error) {
	return p.decimalWith("NegativeBigDecimal", mode, p.NegativeBigInt)
}

// NonzeroBigDecimal returns a decimal ≠ 0.
func (p *Provider) NonzeroBigDecimal(mode DecimalMode) (numeric.Decimal, error) {
	return p.decimalWith("NonzeroBigDecimal", mode, p.NonzeroBigInt)
}

// BigDecimalRangeUp returns a + d for a non-negative random d.
func (p *Provider) BigDecimalRangeUp(mode DecimalMode, a numeric.Decimal) (numeric.Decimal, error) {
	if err := p.requireDecimal("BigDecimalRangeUp", mode); err != nil {
		return numeric.Decimal{}, err
	}
	d, err := p.decimalWith("BigDecimalRangeUp", NonCanonical, p.NaturalBigInt)
	if err != nil {
		return numeric.Decimal{}, err
	}
	return normalize(mode, a.Add(d)), nil
}

// BigDecimalRangeDown returns b - d for a non-negative random d.
func (p *Provider) BigDecimalRangeDown(mode DecimalMode, b numeric.Decimal) (numeric.Decimal, error) {
	if err := p.requireDecimal("BigDecimalRangeDown", mode); err != nil {
		return numeric.Decimal{}, err
	}
	d, err := p.decimalWith("BigDecimalRangeDown", NonCanonical, p.NaturalBigInt)
	if err != nil {
		return numeric.Decimal{}, err
	}
	return normalize(mode, b.Sub(d)), nil
}

// BigDecimalRange returns a decimal in [a, b], uniform on the grid 10^-s where
// s exceeds the larger bound scale by a geometric number of digits with mean
// secondaryScale. a == b (numerically) returns a, normalized per mode.
func (p *Provider) BigDecimalRange(mode DecimalMode, a, b numeric.Decimal) (numeric.Decimal, error) {
	if mode != Canonical && mode != NonCanonical {
		return numeric.Decimal{}, fmt.Errorf("BigDecimalRange: %v: %w", mode, ErrInvalidArgument)
	}
	switch c := a.Cmp(b); {
	case c > 0:
		return numeric.Decimal{}, fmt.Errorf("BigDecimalRange: [%s, %s]: %w", a, b, ErrEmptyRange)
	case c == 0:
		return normalize(mode, a), nil
	}

	s := int64(max(a.Scale(), b.Scale())) + int64(p.natural(p.secondaryScale))
	if s > math.MaxInt32 {
		return numeric.Decimal{}, fmt.Errorf("BigDecimalRange: scale %d: %w", s, ErrInvalidArgument)
	}
	lo, _ := a.Rescale(int32(s)) // upscaling is exact
	hi, _ := b.Rescale(int32(s))
	k, err := p.BigRange(lo.Unscaled(), hi.Unscaled())
	if err != nil {
		return numeric.Decimal{}, fmt.Errorf("BigDecimalRange: %w", err)
	}

	return normalize(mode, numeric.NewDecimal(k, int32(s))), nil
}

func normalize(mode DecimalMode, d numeric.Decimal) numeric.Decimal {
	if mode == Canonical {
		return d.Canonical()
	}
	return d
}
