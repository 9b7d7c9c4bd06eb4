// Package numeric holds the exact number representations produced by the
// precision samplers of lvgen/provider.
//
// Two value types are provided:
//
//   - BinaryFraction: mantissa · 2^exponent with an odd (or zero) mantissa.
//     Every dyadic rational has exactly one BinaryFraction, and every finite
//     float32/float64 converts to one exactly.
//   - Decimal: unscaled · 10^-scale, the same split math/big users know from
//     other languages' BigDecimal. Decimals keep their representation: 1.50
//     and 1.5 are numerically equal (Cmp == 0) but not Equal. Canonical()
//     strips redundant trailing zeros; zero is canonical only with scale 0.
//
// Both types are immutable values: every operation returns a new value and
// never aliases the caller's *big.Int arguments. The zero value of each type
// is the number zero.
//
// Formatting round-trips the representation exactly:
//
//	d, _ := numeric.ParseDecimal("1.50")
//	d.String()      // "1.50"
//	d.Canonical()   // 1.5
//
//	f, _ := numeric.ParseBinaryFraction("3 >> 2")
//	f.Float64()     // 0.75
package numeric
