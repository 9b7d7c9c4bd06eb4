// SPDX-License-Identifier: MIT
// Package: lvgen/combinat
//
// product.go - random tuples over products of finite components.
//
// Enumeration order is mixed radix with the last component varying fastest:
// index k decodes to digits d_i with k = Σ d_i · Π_{j>i} len(c_j).

package combinat

import (
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/lvgen/provider"
)

// CartesianProduct yields tuples uniform over the product of components: each
// draw picks one index below the product size (a big.Int) and decodes it.
// Zero components yield the empty tuple forever.
func CartesianProduct[T any](p *provider.Provider, components [][]T) (iter.Seq[[]T], error) {
	comps := make([][]T, len(components))
	size := big.NewInt(1)
	for i, c := range components {
		if len(c) == 0 {
			return nil, fmt.Errorf("CartesianProduct: component %d: %w", i, ErrEmptyInput)
		}
		comps[i] = append([]T(nil), c...)
		size.Mul(size, big.NewInt(int64(len(c))))
	}
	maxIndex := size.Sub(size, big.NewInt(1))

	return func(yield func([]T) bool) {
		zero := new(big.Int)
		radix, digit := new(big.Int), new(big.Int)
		for {
			k, _ := p.BigRange(zero, maxIndex)
			tuple := make([]T, len(comps))
			for i := len(comps) - 1; i >= 0; i-- {
				radix.SetInt64(int64(len(comps[i])))
				k.QuoRem(k, radix, digit)
				tuple[i] = comps[i][digit.Int64()]
			}
			if !yield(tuple) {
				return
			}
		}
	}, nil
}

// DependentPairs yields (a, b) where a comes from firsts and b is the next
// value of f(p, a). Each distinct a gets one sequence, built on first sight and
// continued on every repeat, so repeated firsts walk through their sequence.
// An a whose sequence is empty or used up is skipped; the stream only ends
// when firsts does.
func DependentPairs[A comparable, B any](p *provider.Provider, firsts iter.Seq[A], f func(*provider.Provider, A) iter.Seq[B]) (iter.Seq2[A, B], error) {
	if f == nil {
		return nil, fmt.Errorf("DependentPairs: %w", ErrNilFunc)
	}
	return func(yield func(A, B) bool) {
		seconds := make(map[A]func() (B, bool))
		var stops []func()
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()

		for a := range firsts {
			next, seen := seconds[a]
			if !seen {
				var stop func()
				next, stop = iter.Pull(f(p, a))
				seconds[a] = next
				stops = append(stops, stop)
			}
			b, ok := next()
			if !ok {
				continue
			}
			if !yield(a, b) {
				return
			}
		}
	}, nil
}
