// SPDX-License-Identifier: MIT
// Package: lvgen/numeric
//
// binary_fraction.go - exact dyadic rationals.
//
// Invariants:
//   - mantissa is odd, or the value is zero with exponent 0.
//   - nil mantissa means zero (so the zero value is usable).

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// BinaryFraction is the exact value mantissa · 2^exponent.
type BinaryFraction struct {
	mantissa *big.Int
	exponent int
}

// ZeroBinaryFraction is 0 << 0.
var ZeroBinaryFraction = BinaryFraction{}

// NewBinaryFraction returns m · 2^e in normalized form. Trailing zero bits of m
// are moved into the exponent. m is not retained.
func NewBinaryFraction(m *big.Int, e int) BinaryFraction {
	if m == nil || m.Sign() == 0 {
		return BinaryFraction{}
	}
	tz := m.TrailingZeroBits()
	mm := new(big.Int).Rsh(m, tz) // exact: m is divisible by 2^tz

	return BinaryFraction{mantissa: mm, exponent: e + int(tz)}
}

// BinaryFractionOf returns the integer v as a BinaryFraction.
func BinaryFractionOf(v int64) BinaryFraction {
	return NewBinaryFraction(big.NewInt(v), 0)
}

// BinaryFractionFromFloat64 converts a finite float exactly.
// NaN and infinities return ErrNotFinite.
func BinaryFractionFromFloat64(f float64) (BinaryFraction, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BinaryFraction{}, fmt.Errorf("BinaryFractionFromFloat64: %v: %w", f, ErrNotFinite)
	}
	if f == 0 {
		return BinaryFraction{}, nil
	}
	bf := new(big.Float).SetFloat64(f)
	m := new(big.Float)
	exp := bf.MantExp(m) // f = m · 2^exp, 0.5 <= |m| < 1
	// scale the 53-bit mantissa up to an integer
	m.SetMantExp(m, 64)
	mi, _ := m.Int(nil)

	return NewBinaryFraction(mi, exp-64), nil
}

func (f BinaryFraction) m() *big.Int {
	if f.mantissa == nil {
		return new(big.Int)
	}
	return f.mantissa
}

// Mantissa returns a copy of the (odd or zero) mantissa.
func (f BinaryFraction) Mantissa() *big.Int { return new(big.Int).Set(f.m()) }

// Exponent returns the power-of-two exponent (0 for zero).
func (f BinaryFraction) Exponent() int { return f.exponent }

// Sign returns -1, 0 or +1.
func (f BinaryFraction) Sign() int { return f.m().Sign() }

// IsZero reports whether f == 0.
func (f BinaryFraction) IsZero() bool { return f.Sign() == 0 }

// Equal reports exact equality. Representations are unique, so this is numeric equality.
func (f BinaryFraction) Equal(g BinaryFraction) bool {
	return f.exponent == g.exponent && f.m().Cmp(g.m()) == 0
}

// Neg returns -f.
func (f BinaryFraction) Neg() BinaryFraction {
	if f.IsZero() {
		return f
	}
	return BinaryFraction{mantissa: new(big.Int).Neg(f.mantissa), exponent: f.exponent}
}

// Shift returns f · 2^k.
func (f BinaryFraction) Shift(k int) BinaryFraction {
	if f.IsZero() {
		return f
	}
	return BinaryFraction{mantissa: f.mantissa, exponent: f.exponent + k}
}

// aligned returns the mantissas of f and g scaled to the smaller exponent.
func aligned(f, g BinaryFraction) (*big.Int, *big.Int, int) {
	if f.IsZero() {
		return new(big.Int), g.Mantissa(), g.exponent
	}
	if g.IsZero() {
		return f.Mantissa(), new(big.Int), f.exponent
	}
	e := min(f.exponent, g.exponent)
	a := new(big.Int).Lsh(f.mantissa, uint(f.exponent-e))
	b := new(big.Int).Lsh(g.mantissa, uint(g.exponent-e))

	return a, b, e
}

// Add returns f + g.
func (f BinaryFraction) Add(g BinaryFraction) BinaryFraction {
	a, b, e := aligned(f, g)
	return NewBinaryFraction(a.Add(a, b), e)
}

// Sub returns f - g.
func (f BinaryFraction) Sub(g BinaryFraction) BinaryFraction {
	a, b, e := aligned(f, g)
	return NewBinaryFraction(a.Sub(a, b), e)
}

// Cmp compares f and g numerically and returns -1, 0 or +1.
func (f BinaryFraction) Cmp(g BinaryFraction) int {
	if fs, gs := f.Sign(), g.Sign(); fs != gs {
		if fs < gs {
			return -1
		}
		return 1
	}
	a, b, _ := aligned(f, g)

	return a.Cmp(b)
}

// Rat returns f as an exact rational.
func (f BinaryFraction) Rat() *big.Rat {
	if f.exponent >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(f.m(), uint(f.exponent)))
	}
	den := new(big.Int).Lsh(big.NewInt(1), uint(-f.exponent))

	return new(big.Rat).SetFrac(f.m(), den)
}

// Float64 returns the float64 nearest to f (ties to even); overflow yields ±Inf.
func (f BinaryFraction) Float64() float64 {
	if f.IsZero() {
		return 0
	}
	x := new(big.Float).SetInt(f.mantissa)
	x.SetMantExp(x, f.exponent)
	v, _ := x.Float64()

	return v
}

// String renders "m", "m << e" or "m >> e"; zero renders "0".
func (f BinaryFraction) String() string {
	switch {
	case f.exponent > 0:
		return f.m().String() + " << " + strconv.Itoa(f.exponent)
	case f.exponent < 0:
		return f.m().String() + " >> " + strconv.Itoa(-f.exponent)
	default:
		return f.m().String()
	}
}

// ParseBinaryFraction parses the String form. Non-normalized input such as
// "4 >> 1" is accepted and normalized.
func ParseBinaryFraction(s string) (BinaryFraction, error) {
	num, shift, op := s, "", ""
	for _, candidate := range []string{" << ", " >> "} {
		if i := strings.Index(s, candidate); i >= 0 {
			num, shift, op = s[:i], s[i+len(candidate):], strings.TrimSpace(candidate)
			break
		}
	}
	m, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return BinaryFraction{}, fmt.Errorf("ParseBinaryFraction(%q): %w", s, ErrSyntax)
	}
	e := 0
	if op != "" {
		k, err := strconv.Atoi(shift)
		if err != nil || k < 0 {
			return BinaryFraction{}, fmt.Errorf("ParseBinaryFraction(%q): %w", s, ErrSyntax)
		}
		e = k
		if op == ">>" {
			e = -k
		}
	}

	return NewBinaryFraction(m, e), nil
}
