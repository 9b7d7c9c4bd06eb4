// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// fractions.go - binary fraction samplers.
//
// Draw order for an unbounded fraction (fixed, part of the stream contract):
//  1. mantissa bit length L (geometric, mean scale)
//  2. odd mantissa bits below the leading one
//  3. sign bit (signed variants only)
//  4. exponent (geometric magnitude with mean secondaryScale, uniform sign)

package provider

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvgen/numeric"
)

// oddBits returns a uniform odd integer with exactly n ≥ 1 bits.
func (p *Provider) oddBits(n int) *big.Int {
	m := p.bigBits(n - 1)
	return m.Lsh(m, 1).SetBit(m, 0, 1)
}

// signedNatural draws a geometric magnitude with the given mean and, when it is
// nonzero, a uniform sign.
func (p *Provider) signedNatural(mean int) int {
	v := p.natural(mean)
	if v != 0 && p.Bool() {
		return -v
	}
	return v
}

func (p *Provider) requireFractionScales(method string) error {
	if err := p.requireScale(method, 1); err != nil {
		return err
	}
	return p.requireSecondaryScale(method, 1)
}

// positiveFraction draws steps 1, 2 and 4 for a strictly positive fraction.
func (p *Provider) positiveFraction() (*big.Int, int) {
	m := p.oddBits(1 + p.natural(p.scale-1))
	return m, p.signedNatural(p.secondaryScale)
}

// BinaryFraction returns a fraction that is zero when the drawn bit length is
// zero, otherwise an odd mantissa with a uniform sign and a geometric exponent.
// Requires scale ≥ 1 and secondaryScale ≥ 1.
func (p *Provider) BinaryFraction() (numeric.BinaryFraction, error) {
	if err := p.requireFractionScales("BinaryFraction"); err != nil {
		return numeric.BinaryFraction{}, err
	}
	n := p.natural(p.scale)
	if n == 0 {
		return numeric.ZeroBinaryFraction, nil
	}
	m := p.oddBits(n)
	if p.Bool() {
		m.Neg(m)
	}

	return numeric.NewBinaryFraction(m, p.signedNatural(p.secondaryScale)), nil
}

// PositiveBinaryFraction returns a fraction > 0.
func (p *Provider) PositiveBinaryFraction() (numeric.BinaryFraction, error) {
	if err := p.requireFractionScales("PositiveBinaryFraction"); err != nil {
		return numeric.BinaryFraction{}, err
	}
	m, e := p.positiveFraction()

	return numeric.NewBinaryFraction(m, e), nil
}

// NegativeBinaryFraction returns a fraction < 0.
func (p *Provider) NegativeBinaryFraction() (numeric.BinaryFraction, error) {
	f, err := p.PositiveBinaryFraction()
	if err != nil {
		return numeric.BinaryFraction{}, fmt.Errorf("NegativeBinaryFraction: %w", err)
	}
	return f.Neg(), nil
}

// NonzeroBinaryFraction returns a fraction ≠ 0 with a uniform sign.
func (p *Provider) NonzeroBinaryFraction() (numeric.BinaryFraction, error) {
	if err := p.requireFractionScales("NonzeroBinaryFraction"); err != nil {
		return numeric.BinaryFraction{}, err
	}
	m := p.oddBits(1 + p.natural(p.scale-1))
	if p.Bool() {
		m.Neg(m)
	}

	return numeric.NewBinaryFraction(m, p.signedNatural(p.secondaryScale)), nil
}

// nonNegativeFraction is BinaryFraction without the sign draw.
func (p *Provider) nonNegativeFraction() numeric.BinaryFraction {
	n := p.natural(p.scale)
	if n == 0 {
		return numeric.ZeroBinaryFraction
	}
	m := p.oddBits(n)

	return numeric.NewBinaryFraction(m, p.signedNatural(p.secondaryScale))
}

// BinaryFractionRangeUp returns a + f for a non-negative random f, so every value is ≥ a.
func (p *Provider) BinaryFractionRangeUp(a numeric.BinaryFraction) (numeric.BinaryFraction, error) {
	if err := p.requireFractionScales("BinaryFractionRangeUp"); err != nil {
		return numeric.BinaryFraction{}, err
	}
	return a.Add(p.nonNegativeFraction()), nil
}

// BinaryFractionRangeDown returns b - f for a non-negative random f, so every value is ≤ b.
func (p *Provider) BinaryFractionRangeDown(b numeric.BinaryFraction) (numeric.BinaryFraction, error) {
	if err := p.requireFractionScales("BinaryFractionRangeDown"); err != nil {
		return numeric.BinaryFraction{}, err
	}
	return b.Sub(p.nonNegativeFraction()), nil
}

// BinaryFractionRange returns a fraction in [a, b]. The value is uniform on the
// grid 2^e, where e lies k bits below the finer bound's exponent and k is
// geometric with mean secondaryScale. a == b returns a without drawing.
func (p *Provider) BinaryFractionRange(a, b numeric.BinaryFraction) (numeric.BinaryFraction, error) {
	if a.Cmp(b) > 0 {
		return numeric.BinaryFraction{}, fmt.Errorf("BinaryFractionRange: [%s, %s]: %w", a, b, ErrEmptyRange)
	}
	if a.Equal(b) {
		return a, nil
	}
	e := min(a.Exponent(), b.Exponent()) - p.natural(p.secondaryScale)
	lo := a.Mantissa()
	lo.Lsh(lo, uint(a.Exponent()-e))
	hi := b.Mantissa()
	hi.Lsh(hi, uint(b.Exponent()-e))
	k, err := p.BigRange(lo, hi)
	if err != nil {
		return numeric.BinaryFraction{}, fmt.Errorf("BinaryFractionRange: %w", err)
	}

	return numeric.NewBinaryFraction(k, e), nil
}
