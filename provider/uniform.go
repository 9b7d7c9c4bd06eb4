// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// uniform.go - uniform bounded integers over fixed-width and big integers.
//
// Rejection discipline (every width):
//   - Let max = hi - lo. max == 0 draws nothing.
//   - Draw just enough words to cover bits.Len(max) bits, mask the excess bits
//     off and retry while the value exceeds max. Expected words per sample < 2·words.
//   - Multi-word values are assembled low word first.

package provider

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

func (p *Provider) word() uint32 { return p.st.core.Uint32() }

// Uint32 returns one raw word of the stream.
func (p *Provider) Uint32() uint32 { return p.word() }

// Int32 returns one raw word reinterpreted as int32.
func (p *Provider) Int32() int32 { return int32(p.word()) }

// Uint64 returns two raw words, low word first.
func (p *Provider) Uint64() uint64 {
	lo := uint64(p.word())
	return lo | uint64(p.word())<<32
}

// Int64 returns Uint64 reinterpreted as int64.
func (p *Provider) Int64() int64 { return int64(p.Uint64()) }

// Bool returns the top bit of one word.
func (p *Provider) Bool() bool { return p.word()>>31 == 1 }

// uniformUint64 returns a uniform value in [0, max].
func (p *Provider) uniformUint64(max uint64) uint64 {
	switch {
	case max == 0:
		return 0
	case max <= math.MaxUint32:
		mask := uint32(1)<<bits.Len32(uint32(max)) - 1
		for {
			if x := p.word() & mask; uint64(x) <= max {
				return uint64(x)
			}
		}
	case max == math.MaxUint64:
		return p.Uint64()
	default:
		mask := uint64(1)<<bits.Len64(max) - 1
		for {
			if x := p.Uint64() & mask; x <= max {
				return x
			}
		}
	}
}

// Range returns a uniform value in [lo, hi] for any integer type.
// lo > hi returns ErrEmptyRange.
//
// Example:
//
//	die, err := provider.Range(p, 1, 6)
func Range[T constraints.Integer](p *Provider, lo, hi T) (T, error) {
	if lo > hi {
		return 0, fmt.Errorf("Range: [%d, %d]: %w", lo, hi, ErrEmptyRange)
	}
	// Conversions sign-extend, so the modular difference is the span for signed T too.
	span := uint64(hi) - uint64(lo)

	return lo + T(p.uniformUint64(span)), nil
}

// Uniform returns a uniform value over the whole of T: one word for types of
// at most 32 bits, two words otherwise.
func Uniform[T constraints.Integer](p *Provider) T {
	if wordSized[T]() {
		return T(p.word())
	}
	return T(p.Uint64())
}

// wordSized reports whether T has at most 32 bits: shifting a one out of
// such a type leaves zero.
func wordSized[T constraints.Integer]() bool {
	var one T = 1
	shift := 32

	return one<<shift == 0
}

// BigRange returns a uniform integer in [lo, hi]. lo and hi are not modified.
// Spans wider than 64 bits draw ⌈bits/32⌉ words per attempt.
func (p *Provider) BigRange(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil {
		return nil, fmt.Errorf("BigRange: nil bound: %w", ErrInvalidArgument)
	}
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() < 0 {
		return nil, fmt.Errorf("BigRange: [%s, %s]: %w", lo, hi, ErrEmptyRange)
	}

	return span.Add(p.uniformBig(span), lo), nil
}

// uniformBig returns a fresh uniform value in [0, max], max ≥ 0.
func (p *Provider) uniformBig(max *big.Int) *big.Int {
	if max.IsUint64() {
		return new(big.Int).SetUint64(p.uniformUint64(max.Uint64()))
	}
	n := max.BitLen()
	words := (n + 31) / 32
	top := uint32(1)<<(uint(n-1)%32+1) - 1
	buf := make([]byte, 4*words)
	x := new(big.Int)
	for {
		// big-endian buffer, filled from the least significant word
		for i := 0; i < words; i++ {
			w := p.word()
			if i == words-1 {
				w &= top
			}
			off := 4 * (words - 1 - i)
			buf[off], buf[off+1], buf[off+2], buf[off+3] = byte(w>>24), byte(w>>16), byte(w>>8), byte(w)
		}
		if x.SetBytes(buf).Cmp(max) <= 0 {
			return x
		}
	}
}

// bigBits returns a uniform integer with exactly n significant bits
// (n == 0 gives 0), i.e. uniform in [2^(n-1), 2^n).
func (p *Provider) bigBits(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	if n == 1 {
		return big.NewInt(1)
	}
	lo := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	span := new(big.Int).Sub(lo, big.NewInt(1)) // 2^(n-1) - 1

	return span.Add(p.uniformBig(span), lo)
}
