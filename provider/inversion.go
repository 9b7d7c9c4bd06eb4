// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// inversion.go - geometric counts for large means by exact inversion.
//
// With q = m/(m+1), L the limit and U uniform in [0, 1), the count
// X = max{n ≤ L : U < r(n)} for r(n) = (q^n - q^(L+1)) / (1 - q^(L+1)) has
// P(X ≥ n) = r(n): the geometric law conditioned on X ≤ L, the same law the
// trial loop produces by restarting. "X > n" is decided by comparing U with
// r(n+1):
//   - U is held as k random bits u, so U ∈ [u, u+1) · 2^-k.
//   - r is bracketed by big.Float evaluations with directed rounding.
//   - While the two intervals overlap, 32 more bits of U are drawn and the
//     bracket is recomputed at higher precision.
//
// X is located by doubling and then bisection, so one sample costs O(log X)
// comparisons of O(log L) multiplications each, however small L is.

package provider

import "math/big"

// inversion is one geometric count in progress. Its bits of U are only ever
// refined, never redrawn, so every comparison describes the same U.
type inversion struct {
	p     *Provider
	m     uint64
	limit uint64
	u     *big.Int
	k     uint

	// q^(L+1) bounds at tailPrec bits
	tailPrec       uint
	tailLo, tailHi *big.Float
}

func (p *Provider) invert(mean, limit uint64) uint64 {
	t := &inversion{p: p, m: mean, limit: limit, u: new(big.Int)}
	t.extend()
	t.extend()

	return t.search()
}

// extend appends one word to the low end of U.
func (t *inversion) extend() {
	t.u.Lsh(t.u, 32)
	t.u.Or(t.u, new(big.Int).SetUint64(uint64(t.p.word())))
	t.k += 32
}

func (t *inversion) search() uint64 {
	lo, hi := uint64(0), uint64(0)
	for hi < t.limit && t.exceeds(hi) {
		lo = hi + 1
		if hi >= (t.limit-1)/2 {
			hi = t.limit
		} else {
			hi = 2*hi + 1
		}
	}
	// X ∈ [lo, hi]
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.exceeds(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// exceeds reports X > n for n < limit, that is U < r(n+1).
func (t *inversion) exceeds(n uint64) bool {
	for {
		prec := t.k + 32
		lower, upper := t.bracket(n, prec)

		uHi := new(big.Float).SetInt(new(big.Int).Add(t.u, big.NewInt(1)))
		uHi.SetMantExp(uHi, -int(t.k))
		if lower.Sign() > 0 && uHi.Cmp(lower) <= 0 {
			return true
		}

		if upper.Sign() == 0 {
			// r(n+1) is below big.Float's exponent range, so below any nonzero U.
			if t.u.Sign() != 0 {
				return false
			}
		} else {
			uLo := new(big.Float).SetInt(t.u)
			uLo.SetMantExp(uLo, -int(t.k))
			if uLo.Cmp(upper) >= 0 {
				return false
			}
		}
		t.extend()
	}
}

// bracket returns bounds on r(n+1).
func (t *inversion) bracket(n uint64, prec uint) (lower, upper *big.Float) {
	if t.tailPrec != prec {
		t.tailLo = t.power(t.limit, prec, big.ToZero)
		t.tailHi = t.power(t.limit, prec, big.AwayFromZero)
		t.tailPrec = prec
	}
	headLo := t.power(n, prec, big.ToZero)
	headHi := t.power(n, prec, big.AwayFromZero)
	one := big.NewFloat(1)

	lower = newFloat(prec, big.ToZero).Sub(headLo, t.tailHi)
	if lower.Sign() > 0 {
		lower.Quo(lower, newFloat(prec, big.AwayFromZero).Sub(one, t.tailLo))
	}
	// 1 - q^(L+1) ≥ 1/(m+1) ≥ 2^-64, far above the rounding error
	upper = newFloat(prec, big.AwayFromZero).Sub(headHi, t.tailLo)
	upper.Quo(upper, newFloat(prec, big.ToZero).Sub(one, t.tailHi))

	return lower, upper
}

// power returns q^(n+1) at prec bits, every operation rounded by mode. All
// operands lie in (0, 1], so ToZero gives a lower bound and AwayFromZero an
// upper bound.
func (t *inversion) power(n uint64, prec uint, mode big.RoundingMode) *big.Float {
	num := newFloat(prec, mode).SetUint64(t.m)
	den := newFloat(prec, mode).SetUint64(t.m)
	den.Add(den, big.NewFloat(1)) // exact: prec exceeds 65 bits
	q := newFloat(prec, mode).Quo(num, den)

	r := newFloat(prec, mode).Set(q)
	for e := n; e > 0 && r.Sign() != 0; e >>= 1 {
		if e&1 == 1 {
			r.Mul(r, q)
		}
		if e > 1 {
			q.Mul(q, q)
		}
	}

	return r
}

func newFloat(prec uint, mode big.RoundingMode) *big.Float {
	return new(big.Float).SetPrec(prec).SetMode(mode)
}
