// SPDX-License-Identifier: MIT
// Package: lvgen/combinat
//
// distinct.go - distinct lists and subsets over a Domain.
//
// Finite domains:
//   - Sizes follow the geometric law conditioned on fitting the domain, drawn
//     directly from the truncated law. Minimum or fixed sizes above the domain
//     size fail at construction with ErrUnsatisfiableSize.
//   - Elements are chosen by a partial Fisher-Yates walk over the domain.
//
// Stream domains:
//   - Elements are taken from a fresh InfinitePermutation of the enumeration.
//     An enumeration that ends too early yields ErrDomainExhausted.

package combinat

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvgen/provider"
)

// pickDistinct draws n distinct domain entries in draw order.
func pickDistinct[T comparable](p *provider.Provider, d Domain[T], n int) ([]indexed[T], bool) {
	if d.finite {
		idx := make([]int, len(d.items))
		for i := range idx {
			idx[i] = i
		}
		out := make([]indexed[T], n)
		for i := 0; i < n; i++ {
			j, _ := provider.Range(p, i, len(idx)-1)
			idx[i], idx[j] = idx[j], idx[i]
			out[i] = indexed[T]{pos: idx[i], v: d.items[idx[i]]}
		}
		return out, true
	}

	out := make([]indexed[T], 0, n)
	if n == 0 {
		return out, true
	}
	for e := range lookahead(p, d.enumerate()) {
		if out = append(out, e); len(out) == n {
			return out, true
		}
	}
	return out, false
}

// distinct yields n distinct entries per value; subsets sorts them by domain position.
func distinct[T comparable](method string, p *provider.Provider, d Domain[T], size sizer, subset bool) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for {
			limit := unsized
			if k, ok := d.Size(); ok {
				limit = k
			}
			n := size(limit)
			picked, ok := pickDistinct(p, d, n)
			if !ok {
				yield(nil, fmt.Errorf("%s: domain ended after %d of %d elements: %w", method, len(picked), n, ErrDomainExhausted))
				return
			}
			if subset {
				slices.SortFunc(picked, func(a, b indexed[T]) int { return a.pos - b.pos })
			}
			out := make([]T, len(picked))
			for i, e := range picked {
				out[i] = e.v
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

func requireFits[T comparable](method string, d Domain[T], n int) error {
	if limit, ok := d.Size(); ok && n > limit {
		return fmt.Errorf("%s: size %d exceeds domain of %d: %w", method, n, limit, ErrUnsatisfiableSize)
	}
	return nil
}

func distinctAtLeast[T comparable](method string, p *provider.Provider, d Domain[T], minSize int, subset bool) (iter.Seq2[[]T, error], error) {
	if err := requireFits(method, d, minSize); err != nil {
		return nil, err
	}
	if err := requireAtLeast(method, p, minSize); err != nil {
		return nil, err
	}
	return distinct(method, p, d, geometricSizer(p, minSize), subset), nil
}

func distinctOfSize[T comparable](method string, p *provider.Provider, d Domain[T], n int, subset bool) (iter.Seq2[[]T, error], error) {
	if err := requireSize(method, n); err != nil {
		return nil, err
	}
	if err := requireFits(method, d, n); err != nil {
		return nil, err
	}
	return distinct(method, p, d, fixedSizer(n), subset), nil
}

// DistinctLists yields lists without repeated elements, in random order;
// lengths are geometric with mean scale.
func DistinctLists[T comparable](p *provider.Provider, d Domain[T]) iter.Seq2[[]T, error] {
	return distinct("DistinctLists", p, d, geometricSizer(p, 0), false)
}

// DistinctListsAtLeast is DistinctLists with length ≥ minSize.
//
// Errors:
//   - ErrUnsatisfiableSize if a finite domain has fewer than minSize elements.
//   - provider.ErrInvalidScale unless scale > minSize.
func DistinctListsAtLeast[T comparable](p *provider.Provider, d Domain[T], minSize int) (iter.Seq2[[]T, error], error) {
	return distinctAtLeast("DistinctListsAtLeast", p, d, minSize, false)
}

// DistinctListsOfSize is DistinctLists with exactly n elements.
func DistinctListsOfSize[T comparable](p *provider.Provider, d Domain[T], n int) (iter.Seq2[[]T, error], error) {
	return distinctOfSize("DistinctListsOfSize", p, d, n, false)
}

// Subsets yields subsets listed in domain order.
func Subsets[T comparable](p *provider.Provider, d Domain[T]) iter.Seq2[[]T, error] {
	return distinct("Subsets", p, d, geometricSizer(p, 0), true)
}

// SubsetsAtLeast is Subsets with size ≥ minSize, with DistinctListsAtLeast's errors.
func SubsetsAtLeast[T comparable](p *provider.Provider, d Domain[T], minSize int) (iter.Seq2[[]T, error], error) {
	return distinctAtLeast("SubsetsAtLeast", p, d, minSize, true)
}

// SubsetsOfSize is Subsets with exactly n elements.
func SubsetsOfSize[T comparable](p *provider.Provider, d Domain[T], n int) (iter.Seq2[[]T, error], error) {
	return distinctOfSize("SubsetsOfSize", p, d, n, true)
}

// DistinctStrings yields strings without repeated runes.
func DistinctStrings(p *provider.Provider, chars Domain[rune]) iter.Seq2[string, error] {
	return mapSeq2(DistinctLists(p, chars), func(rs []rune) string { return string(rs) })
}

// StringSubsets yields strings whose runes are a subset of chars in domain order.
func StringSubsets(p *provider.Provider, chars Domain[rune]) iter.Seq2[string, error] {
	return mapSeq2(Subsets(p, chars), func(rs []rune) string { return string(rs) })
}
