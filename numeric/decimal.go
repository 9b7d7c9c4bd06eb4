// SPDX-License-Identifier: MIT
// Package: lvgen/numeric
//
// decimal.go - arbitrary precision decimals that keep their representation.
//
// Invariants:
//   - value = unscaled · 10^-scale.
//   - nil unscaled means zero (so the zero value is usable).
//   - canonical form: unscaled not divisible by 10, or (0, scale 0).

package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var bigTen = big.NewInt(10)

// Decimal is the exact value unscaled · 10^-scale.
type Decimal struct {
	unscaled *big.Int
	scale    int32
}

// NewDecimal returns unscaled · 10^-scale. unscaled is copied.
func NewDecimal(unscaled *big.Int, scale int32) Decimal {
	if unscaled == nil {
		return Decimal{scale: scale}
	}
	return Decimal{unscaled: new(big.Int).Set(unscaled), scale: scale}
}

// DecimalOf returns the integer v with scale 0.
func DecimalOf(v int64) Decimal {
	return Decimal{unscaled: big.NewInt(v)}
}

func (d Decimal) u() *big.Int {
	if d.unscaled == nil {
		return new(big.Int)
	}
	return d.unscaled
}

// Unscaled returns a copy of the unscaled integer.
func (d Decimal) Unscaled() *big.Int { return new(big.Int).Set(d.u()) }

// Scale returns the number of digits after the decimal point (negative: trailing zeros implied).
func (d Decimal) Scale() int32 { return d.scale }

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int { return d.u().Sign() }

// IsZero reports whether d == 0 regardless of scale.
func (d Decimal) IsZero() bool { return d.Sign() == 0 }

// Equal reports representation equality: same unscaled value and same scale.
// Use Cmp for numeric equality.
func (d Decimal) Equal(e Decimal) bool {
	return d.scale == e.scale && d.u().Cmp(e.u()) == 0
}

// Neg returns -d with the same scale.
func (d Decimal) Neg() Decimal {
	return Decimal{unscaled: new(big.Int).Neg(d.u()), scale: d.scale}
}

// pow10 returns 10^n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

// upscale returns d's unscaled value expressed at scale s (s >= d.scale).
func (d Decimal) upscale(s int32) *big.Int {
	v := d.Unscaled()
	if s == d.scale {
		return v
	}
	return v.Mul(v, pow10(int64(s)-int64(d.scale)))
}

// Add returns d + e at scale max(d.scale, e.scale).
func (d Decimal) Add(e Decimal) Decimal {
	s := max(d.scale, e.scale)
	v := d.upscale(s)

	return Decimal{unscaled: v.Add(v, e.upscale(s)), scale: s}
}

// Sub returns d - e at scale max(d.scale, e.scale).
func (d Decimal) Sub(e Decimal) Decimal {
	s := max(d.scale, e.scale)
	v := d.upscale(s)

	return Decimal{unscaled: v.Sub(v, e.upscale(s)), scale: s}
}

// Cmp compares d and e numerically.
func (d Decimal) Cmp(e Decimal) int {
	if ds, es := d.Sign(), e.Sign(); ds != es || ds == 0 {
		switch {
		case ds < es:
			return -1
		case ds > es:
			return 1
		default:
			return 0
		}
	}
	s := max(d.scale, e.scale)

	return d.upscale(s).Cmp(e.upscale(s))
}

// Canonical strips redundant trailing zeros. Zero becomes 0 with scale 0.
// Stripping stops at scale math.MinInt32.
func (d Decimal) Canonical() Decimal {
	if d.IsZero() {
		return Decimal{}
	}
	v := d.Unscaled()
	s := d.scale
	q, r := new(big.Int), new(big.Int)
	for s > math.MinInt32 {
		q.QuoRem(v, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		v, q = q, v
		s--
	}

	return Decimal{unscaled: v, scale: s}
}

// IsCanonical reports whether d has no redundant trailing zero.
func (d Decimal) IsCanonical() bool {
	if d.IsZero() {
		return d.scale == 0
	}
	return new(big.Int).Rem(d.u(), bigTen).Sign() != 0
}

// Rescale returns d expressed with the given scale. Reducing the scale is only
// allowed when the dropped digits are zero; otherwise ErrInexact.
func (d Decimal) Rescale(scale int32) (Decimal, error) {
	if scale >= d.scale {
		return Decimal{unscaled: d.upscale(scale), scale: scale}, nil
	}
	q, r := new(big.Int).QuoRem(d.u(), pow10(int64(d.scale)-int64(scale)), new(big.Int))
	if r.Sign() != 0 {
		return Decimal{}, fmt.Errorf("Rescale(%d) of %s: %w", scale, d, ErrInexact)
	}

	return Decimal{unscaled: q, scale: scale}, nil
}

// Rat returns d as an exact rational.
func (d Decimal) Rat() *big.Rat {
	if d.scale <= 0 {
		return new(big.Rat).SetInt(d.upscale(0))
	}
	return new(big.Rat).SetFrac(d.u(), pow10(int64(d.scale)))
}

// Float64 returns the float64 nearest to d.
func (d Decimal) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

// String renders plain notation for scale >= 0 ("-0.015", "1.50", "12") and
// "<unscaled>E+<n>" for negative scales ("15E+2" is 1500 with scale -2).
// ParseDecimal(d.String()) yields a Decimal Equal to d.
func (d Decimal) String() string {
	digits := new(big.Int).Abs(d.u()).String()
	var sb strings.Builder
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}
	switch {
	case d.scale == 0:
		sb.WriteString(digits)
	case d.scale < 0:
		sb.WriteString(digits)
		sb.WriteString("E+")
		sb.WriteString(strconv.FormatInt(-int64(d.scale), 10))
	default:
		s := int(d.scale)
		if len(digits) <= s {
			digits = strings.Repeat("0", s-len(digits)+1) + digits
		}
		sb.WriteString(digits[:len(digits)-s])
		sb.WriteByte('.')
		sb.WriteString(digits[len(digits)-s:])
	}

	return sb.String()
}

// ParseDecimal parses [sign] digits [ "." digits ] [ ("e"|"E") [sign] digits ].
// The scale is the number of fraction digits minus the exponent, so "1.50"
// has scale 2 and "15E+2" has scale -2.
func ParseDecimal(s string) (Decimal, error) {
	bad := func() (Decimal, error) {
		return Decimal{}, fmt.Errorf("ParseDecimal(%q): %w", s, ErrSyntax)
	}
	body := s
	neg := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		neg = body[0] == '-'
		body = body[1:]
	}

	var exp int64
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		e, err := strconv.ParseInt(body[i+1:], 10, 64)
		if err != nil {
			return bad()
		}
		exp = e
		body = body[:i]
	}

	intPart, fracPart := body, ""
	if i := strings.IndexByte(body, '.'); i >= 0 {
		intPart, fracPart = body[:i], body[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return bad()
	}
	for _, part := range []string{intPart, fracPart} {
		for j := 0; j < len(part); j++ {
			if part[j] < '0' || part[j] > '9' {
				return bad()
			}
		}
	}

	scale := int64(len(fracPart)) - exp
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return Decimal{}, fmt.Errorf("ParseDecimal(%q): %w", s, ErrExponentRange)
	}
	u, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return bad()
	}
	if neg {
		u.Neg(u)
	}

	return Decimal{unscaled: u, scale: int32(scale)}, nil
}
