// SPDX-License-Identifier: MIT
// Package: lvgen/combinat
//
// permutations.go - finite shuffles and lazy reorderings of infinite sources.
//
// Shuffle is the unbiased Fisher-Yates walk from the last index down:
// position i is swapped with Range(0, i).

package combinat

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/provider"
)

// lookaheadKey names the sub-stream InfinitePermutation draws positions from.
const lookaheadKey = "combinat/lookahead"

// Shuffle permutes xs in place.
// Complexity: O(n) time, n-1 draws.
func Shuffle[T any](p *provider.Provider, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j, _ := provider.Range(p, 0, i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Permutations yields uniformly random orderings of xs forever; every output
// is a fresh slice. Duplicate elements are allowed and simply repeat orderings.
func Permutations[T any](p *provider.Provider, xs []T) iter.Seq[[]T] {
	src := append([]T(nil), xs...)
	return func(yield func([]T) bool) {
		for {
			perm := append([]T(nil), src...)
			Shuffle(p, perm)
			if !yield(perm) {
				return
			}
		}
	}
}

// PrefixPermutations yields permutations of growing prefixes of src. Each
// output contains the previous output's elements plus g ≥ 1 new ones, where g
// is positive-geometric with mean secondaryScale, each inserted at a uniform
// position. A finite src ends the stream after its last element was placed.
// Requires secondaryScale ≥ 1.
func PrefixPermutations[T any](p *provider.Provider, src iter.Seq[T]) (iter.Seq[[]T], error) {
	if p.SecondaryScale() < 1 {
		return nil, fmt.Errorf("PrefixPermutations: secondaryScale %d: %w", p.SecondaryScale(), provider.ErrInvalidScale)
	}
	return func(yield func([]T) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		var perm []T
		for {
			g, _ := p.Geometric(p.SecondaryScale() - 1)
			added := 0
			for ; added <= g; added++ {
				v, ok := next()
				if !ok {
					break
				}
				at, _ := provider.Range(p, 0, len(perm))
				perm = append(perm, v)
				copy(perm[at+1:], perm[at:])
				perm[at] = v
			}
			if added == 0 {
				return
			}
			if !yield(append([]T(nil), perm...)) || added <= g {
				return
			}
		}
	}, nil
}

// InfinitePermutation lazily reorders src: it keeps a lookahead window of
// max(secondaryScale, 1) elements, and each step emits a uniformly chosen
// window element and refills its slot from src. Every element of src is
// eventually emitted exactly once. Positions are drawn from p's
// "combinat/lookahead" sub-stream, so the values drawn from p by src are not
// interleaved with them.
func InfinitePermutation[T any](p *provider.Provider, src iter.Seq[T]) iter.Seq[T] {
	return lookahead(p, src)
}

func lookahead[T any](p *provider.Provider, src iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		pos := p.Substream(lookaheadKey)
		next, stop := iter.Pull(src)
		defer stop()

		window := make([]T, 0, max(p.SecondaryScale(), 1))
		for len(window) < cap(window) {
			v, ok := next()
			if !ok {
				break
			}
			window = append(window, v)
		}
		for len(window) > 0 {
			i, _ := provider.Range(pos, 0, len(window)-1)
			out := window[i]
			if v, ok := next(); ok {
				window[i] = v
			} else {
				last := len(window) - 1
				window[i] = window[last]
				window = window[:last]
			}
			if !yield(out) {
				return
			}
		}
	}
}
