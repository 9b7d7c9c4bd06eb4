package provider

import (
	"fmt"
	"math/big"
)

// NaturalBigInt returns an integer ≥ 0 whose bit length is geometric with mean
// scale; the value is uniform among integers of that bit length. Requires scale ≥ 1.
func (p *Provider) NaturalBigInt() (*big.Int, error) {
	if err := p.requireScale("NaturalBigInt", 1); err != nil {
		return nil, err
	}
	return p.bigBits(p.natural(p.scale)), nil
}

// PositiveBigInt returns an integer ≥ 1; its bit length is positive-geometric
// with mean scale. Requires scale ≥ 1.
func (p *Provider) PositiveBigInt() (*big.Int, error) {
	if err := p.requireScale("PositiveBigInt", 1); err != nil {
		return nil, err
	}
	return p.bigBits(1 + p.natural(p.scale-1)), nil
}

// NegativeBigInt returns -PositiveBigInt().
func (p *Provider) NegativeBigInt() (*big.Int, error) {
	v, err := p.PositiveBigInt()
	if err != nil {
		return nil, fmt.Errorf("NegativeBigInt: %w", err)
	}
	return v.Neg(v), nil
}

// NonzeroBigInt returns PositiveBigInt() with a uniform sign.
func (p *Provider) NonzeroBigInt() (*big.Int, error) {
	v, err := p.PositiveBigInt()
	if err != nil {
		return nil, fmt.Errorf("NonzeroBigInt: %w", err)
	}
	if p.Bool() {
		v.Neg(v)
	}
	return v, nil
}

// BigInt returns NaturalBigInt() with a uniform sign on nonzero values.
func (p *Provider) BigInt() (*big.Int, error) {
	v, err := p.NaturalBigInt()
	if err != nil {
		return nil, fmt.Errorf("BigInt: %w", err)
	}
	if v.Sign() != 0 && p.Bool() {
		v.Neg(v)
	}
	return v, nil
}

// RangeUpBigInt returns a + NaturalBigInt(): every value is ≥ a. a is not modified.
func (p *Provider) RangeUpBigInt(a *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, fmt.Errorf("RangeUpBigInt: nil bound: %w", ErrInvalidArgument)
	}
	v, err := p.NaturalBigInt()
	if err != nil {
		return nil, fmt.Errorf("RangeUpBigInt: %w", err)
	}
	return v.Add(v, a), nil
}

// RangeDownBigInt returns b - NaturalBigInt(): every value is ≤ b. b is not modified.
func (p *Provider) RangeDownBigInt(b *big.Int) (*big.Int, error) {
	if b == nil {
		return nil, fmt.Errorf("RangeDownBigInt: nil bound: %w", ErrInvalidArgument)
	}
	v, err := p.NaturalBigInt()
	if err != nil {
		return nil, fmt.Errorf("RangeDownBigInt: %w", err)
	}
	return v.Sub(b, v), nil
}
