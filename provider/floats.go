// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// floats.go - float32/float64 sampling in two modes.
//
// Bit-pattern mode (Float64, Float64Range, ...):
//   - Every non-NaN bit pattern is mapped to an ordinal:
//     ord(x) = bits for sign 0, -1 - (bits &^ sign) for sign 1.
//     This orders −∞ < ... < −0 < +0 < ... < +∞, so [+0, −0] is empty.
//   - Sampling is uniform over ordinals, i.e. over representable values.
//
// Uniform-value mode (Float64RangeUniform, ...):
//   - Bounds must be finite. The real value is uniform on the grid of the
//     smallest subnormal (2^-1074, or 2^-149 for float32) and rounded to the
//     nearest representable value, ties to even.

package provider

import (
	"fmt"
	"math"
	"math/big"
)

// floatFormat describes an IEEE 754 binary format through its bit patterns.
type floatFormat struct {
	name   string
	sign   uint64 // sign bit
	inf    uint64 // +Inf pattern
	max    uint64 // largest finite pattern
	nan    uint64 // canonical quiet NaN
	minExp int    // exponent of the smallest subnormal
	prec   uint   // significand bits including the implicit one
}

var (
	f32 = floatFormat{name: "float32", sign: 1 << 31, inf: 0x7F800000, max: 0x7F7FFFFF, nan: 0x7FC00000, minExp: -149, prec: 24}
	f64 = floatFormat{name: "float64", sign: 1 << 63, inf: 0x7FF0000000000000, max: 0x7FEFFFFFFFFFFFFF, nan: 0x7FF8000000000000, minExp: -1074, prec: 53}
)

func (f floatFormat) ordinal(b uint64) int64 {
	if b&f.sign == 0 {
		return int64(b)
	}
	return -1 - int64(b&^f.sign)
}

func (f floatFormat) fromOrdinal(o int64) uint64 {
	if o >= 0 {
		return uint64(o)
	}
	return f.sign | uint64(-1-o)
}

// anyBits is uniform over the 2·(inf+1) non-NaN patterns plus the canonical NaN.
func (f floatFormat) anyBits(p *Provider) uint64 {
	n := 2 * (f.inf + 1)
	k := p.uniformUint64(n)
	switch {
	case k == n:
		return f.nan
	case k <= f.inf:
		return f.sign | (f.inf - k) // −∞ ... −0
	default:
		return k - (f.inf + 1) // +0 ... +∞
	}
}

// positiveBits returns a finite pattern > +0.
func (f floatFormat) positiveBits(p *Provider) uint64 { return 1 + p.uniformUint64(f.max-1) }

// nonzeroBits returns a finite pattern that is neither +0 nor −0.
func (f floatFormat) nonzeroBits(p *Provider) uint64 {
	k := p.uniformUint64(2*f.max - 1)
	if k < f.max {
		return k + 1
	}
	return f.sign | (k - f.max + 1)
}

// ordinalRange is uniform over the patterns with ordinals in [lo, hi].
func (f floatFormat) ordinalRange(p *Provider, lo, hi int64) uint64 {
	o, _ := Range(p, lo, hi) // callers checked lo <= hi
	return f.fromOrdinal(o)
}

// onGrid returns x · 2^-minExp, an exact integer for every finite x.
func (f floatFormat) onGrid(x float64) *big.Int {
	b := new(big.Float).SetFloat64(x)
	b.SetMantExp(b, -f.minExp)
	i, _ := b.Int(nil)

	return i
}

// uniformValue draws K uniform on the grid between lo and hi and rounds K · 2^minExp.
func (f floatFormat) uniformValue(p *Provider, lo, hi float64) *big.Float {
	k, _ := p.BigRange(f.onGrid(lo), f.onGrid(hi)) // lo <= hi
	x := new(big.Float).SetPrec(f.prec).SetInt(k)

	return x.SetMantExp(x, f.minExp)
}

func (f floatFormat) checkRange(method string, a, b float64, ordA, ordB int64) error {
	if err := requireNotNaN(method, a, b); err != nil {
		return err
	}
	if ordA > ordB {
		return fmt.Errorf("%s: [%v, %v]: %w", method, a, b, ErrEmptyRange)
	}
	return nil
}

func checkUniformRange(method string, a, b float64) error {
	if err := requireFinite(method, a, b); err != nil {
		return err
	}
	if a > b {
		return fmt.Errorf("%s: [%v, %v]: %w", method, a, b, ErrEmptyRange)
	}
	return nil
}

// Float64 returns a float64 uniform over all bit patterns; every NaN pattern is
// folded into one canonical NaN, so NaN has the weight of a single value.
func (p *Provider) Float64() float64 { return math.Float64frombits(f64.anyBits(p)) }

// PositiveFloat64 returns a finite float64 > 0, uniform over bit patterns.
func (p *Provider) PositiveFloat64() float64 { return math.Float64frombits(f64.positiveBits(p)) }

// NegativeFloat64 returns a finite float64 < 0, uniform over bit patterns.
func (p *Provider) NegativeFloat64() float64 {
	return math.Float64frombits(f64.sign | f64.positiveBits(p))
}

// NonzeroFloat64 returns a finite nonzero float64, uniform over bit patterns.
func (p *Provider) NonzeroFloat64() float64 { return math.Float64frombits(f64.nonzeroBits(p)) }

// Float64Range returns a representable value in [a, b] under the signed-zero
// ordering, uniform over bit patterns. Infinite bounds are allowed.
func (p *Provider) Float64Range(a, b float64) (float64, error) {
	oa, ob := f64.ordinal(math.Float64bits(a)), f64.ordinal(math.Float64bits(b))
	if err := f64.checkRange("Float64Range", a, b, oa, ob); err != nil {
		return 0, err
	}
	return math.Float64frombits(f64.ordinalRange(p, oa, ob)), nil
}

// Float64RangeUp is Float64Range(a, +Inf).
func (p *Provider) Float64RangeUp(a float64) (float64, error) {
	v, err := p.Float64Range(a, math.Inf(1))
	if err != nil {
		return 0, fmt.Errorf("Float64RangeUp: %w", err)
	}
	return v, nil
}

// Float64RangeDown is Float64Range(-Inf, b).
func (p *Provider) Float64RangeDown(b float64) (float64, error) {
	v, err := p.Float64Range(math.Inf(-1), b)
	if err != nil {
		return 0, fmt.Errorf("Float64RangeDown: %w", err)
	}
	return v, nil
}

// Float64RangeUniform returns a value distributed uniformly as a real number
// on [a, b]. a == b returns a without drawing.
func (p *Provider) Float64RangeUniform(a, b float64) (float64, error) {
	if err := checkUniformRange("Float64RangeUniform", a, b); err != nil {
		return 0, err
	}
	if a == b {
		return a, nil
	}
	v, _ := f64.uniformValue(p, a, b).Float64()

	return v, nil
}

// Float64RangeUpUniform is Float64RangeUniform(a, math.MaxFloat64).
func (p *Provider) Float64RangeUpUniform(a float64) (float64, error) {
	if err := requireFinite("Float64RangeUpUniform", a); err != nil {
		return 0, err
	}
	return p.Float64RangeUniform(a, math.MaxFloat64)
}

// Float64RangeDownUniform is Float64RangeUniform(-math.MaxFloat64, b).
func (p *Provider) Float64RangeDownUniform(b float64) (float64, error) {
	if err := requireFinite("Float64RangeDownUniform", b); err != nil {
		return 0, err
	}
	return p.Float64RangeUniform(-math.MaxFloat64, b)
}

// Float32 is Float64 for float32.
func (p *Provider) Float32() float32 { return math.Float32frombits(uint32(f32.anyBits(p))) }

// PositiveFloat32 is PositiveFloat64 for float32.
func (p *Provider) PositiveFloat32() float32 {
	return math.Float32frombits(uint32(f32.positiveBits(p)))
}

// NegativeFloat32 is NegativeFloat64 for float32.
func (p *Provider) NegativeFloat32() float32 {
	return math.Float32frombits(uint32(f32.sign | f32.positiveBits(p)))
}

// NonzeroFloat32 is NonzeroFloat64 for float32.
func (p *Provider) NonzeroFloat32() float32 {
	return math.Float32frombits(uint32(f32.nonzeroBits(p)))
}

// Float32Range is Float64Range for float32.
func (p *Provider) Float32Range(a, b float32) (float32, error) {
	oa, ob := f32.ordinal(uint64(math.Float32bits(a))), f32.ordinal(uint64(math.Float32bits(b)))
	if err := f32.checkRange("Float32Range", float64(a), float64(b), oa, ob); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(f32.ordinalRange(p, oa, ob))), nil
}

// Float32RangeUp is Float32Range(a, +Inf).
func (p *Provider) Float32RangeUp(a float32) (float32, error) {
	v, err := p.Float32Range(a, float32(math.Inf(1)))
	if err != nil {
		return 0, fmt.Errorf("Float32RangeUp: %w", err)
	}
	return v, nil
}

// Float32RangeDown is Float32Range(-Inf, b).
func (p *Provider) Float32RangeDown(b float32) (float32, error) {
	v, err := p.Float32Range(float32(math.Inf(-1)), b)
	if err != nil {
		return 0, fmt.Errorf("Float32RangeDown: %w", err)
	}
	return v, nil
}

// Float32RangeUniform is Float64RangeUniform on the float32 grid.
func (p *Provider) Float32RangeUniform(a, b float32) (float32, error) {
	if err := checkUniformRange("Float32RangeUniform", float64(a), float64(b)); err != nil {
		return 0, err
	}
	if a == b {
		return a, nil
	}
	v, _ := f32.uniformValue(p, float64(a), float64(b)).Float32()

	return v, nil
}

// Float32RangeUpUniform is Float32RangeUniform(a, math.MaxFloat32).
func (p *Provider) Float32RangeUpUniform(a float32) (float32, error) {
	if err := requireFinite("Float32RangeUpUniform", float64(a)); err != nil {
		return 0, err
	}
	return p.Float32RangeUniform(a, math.MaxFloat32)
}

// Float32RangeDownUniform is Float32RangeUniform(-math.MaxFloat32, b).
func (p *Provider) Float32RangeDownUniform(b float32) (float32, error) {
	if err := requireFinite("Float32RangeDownUniform", float64(b)); err != nil {
		return 0, err
	}
	return p.Float32RangeUniform(-math.MaxFloat32, b)
}
