// SPDX-License-Identifier: MIT
// Package: lvgen/combinat
//
// lists.go - lists, strings and bags with geometric or fixed sizes.
//
// Draw order per value: size first, then the elements left to right.
// An element source that ends mid-value yields ErrDomainExhausted.

package combinat

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/lvgen/provider"
)

// sizer draws the length of the next value, at most maxSize.
type sizer func(maxSize int) int

// unsized leaves the length bounded only by the geometric sampler's own limit.
const unsized = math.MaxInt32

// geometricSizer draws minSize + a geometric count, so the mean is scale
// when maxSize does not bind and the law conditioned on fitting when it does.
// Callers guarantee scale ≥ minSize and maxSize ≥ minSize.
func geometricSizer(p *provider.Provider, minSize int) sizer {
	return func(maxSize int) int {
		n, _ := p.GeometricAtMost(p.Scale()-minSize, maxSize-minSize)
		return minSize + n
	}
}

// fixedSizer ignores maxSize; callers check the size fits up front.
func fixedSizer(n int) sizer { return func(int) int { return n } }

func requireAtLeast(method string, p *provider.Provider, minSize int) error {
	if minSize < 0 {
		return fmt.Errorf("%s: minSize %d: %w", method, minSize, ErrInvalidSize)
	}
	if p.Scale() <= minSize {
		return fmt.Errorf("%s: scale %d must exceed minSize %d: %w", method, p.Scale(), minSize, provider.ErrInvalidScale)
	}
	return nil
}

func requireSize(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: size %d: %w", method, n, ErrInvalidSize)
	}
	return nil
}

// sized pulls a drawn number of elements from elems for each yielded list.
func sized[T any](method string, elems iter.Seq[T], size sizer) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		next, stop := iter.Pull(elems)
		defer stop()
		for {
			n := size(unsized)
			list := make([]T, 0, n)
			for len(list) < n {
				v, ok := next()
				if !ok {
					yield(nil, fmt.Errorf("%s: source ended after %d of %d elements: %w", method, len(list), n, ErrDomainExhausted))
					return
				}
				list = append(list, v)
			}
			if !yield(list, nil) {
				return
			}
		}
	}
}

// mapSeq2 transforms the values of a fallible stream.
func mapSeq2[T, U any](seq iter.Seq2[T, error], f func(T) U) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for v, err := range seq {
			if err != nil {
				var zero U
				yield(zero, err)
				return
			}
			if !yield(f(v), nil) {
				return
			}
		}
	}
}

// Lists yields lists of elements pulled from elems; lengths are geometric with
// mean scale. Elements may repeat; feed WithNull output to include absences.
func Lists[T any](p *provider.Provider, elems iter.Seq[T]) iter.Seq2[[]T, error] {
	return sized("Lists", elems, geometricSizer(p, 0))
}

// ListsAtLeast is Lists with length ≥ minSize. Requires scale > minSize.
func ListsAtLeast[T any](p *provider.Provider, elems iter.Seq[T], minSize int) (iter.Seq2[[]T, error], error) {
	if err := requireAtLeast("ListsAtLeast", p, minSize); err != nil {
		return nil, err
	}
	return sized("ListsAtLeast", elems, geometricSizer(p, minSize)), nil
}

// ListsOfSize yields lists of exactly n elements.
func ListsOfSize[T any](p *provider.Provider, elems iter.Seq[T], n int) (iter.Seq2[[]T, error], error) {
	if err := requireSize("ListsOfSize", n); err != nil {
		return nil, err
	}
	return sized("ListsOfSize", elems, fixedSizer(n)), nil
}

// Strings is Lists over runes.
func Strings(p *provider.Provider, chars iter.Seq[rune]) iter.Seq2[string, error] {
	return mapSeq2(Lists(p, chars), func(rs []rune) string { return string(rs) })
}

// StringsAtLeast is ListsAtLeast over runes; minSize counts runes.
func StringsAtLeast(p *provider.Provider, chars iter.Seq[rune], minSize int) (iter.Seq2[string, error], error) {
	seq, err := ListsAtLeast(p, chars, minSize)
	if err != nil {
		return nil, fmt.Errorf("StringsAtLeast: %w", err)
	}
	return mapSeq2(seq, func(rs []rune) string { return string(rs) }), nil
}

// StringsOfSize is ListsOfSize over runes.
func StringsOfSize(p *provider.Provider, chars iter.Seq[rune], n int) (iter.Seq2[string, error], error) {
	seq, err := ListsOfSize(p, chars, n)
	if err != nil {
		return nil, fmt.Errorf("StringsOfSize: %w", err)
	}
	return mapSeq2(seq, func(rs []rune) string { return string(rs) }), nil
}

func sortWith[T any](less func(a, b T) int) func([]T) []T {
	return func(xs []T) []T {
		slices.SortStableFunc(xs, less)
		return xs
	}
}

// Bags yields multisets as ascending slices, so equal multisets are equal slices.
func Bags[T cmp.Ordered](p *provider.Provider, elems iter.Seq[T]) iter.Seq2[[]T, error] {
	return mapSeq2(Lists(p, elems), sortWith[T](cmp.Compare[T]))
}

// BagsAtLeast is Bags with size ≥ minSize. Requires scale > minSize.
func BagsAtLeast[T cmp.Ordered](p *provider.Provider, elems iter.Seq[T], minSize int) (iter.Seq2[[]T, error], error) {
	seq, err := ListsAtLeast(p, elems, minSize)
	if err != nil {
		return nil, fmt.Errorf("BagsAtLeast: %w", err)
	}
	return mapSeq2(seq, sortWith[T](cmp.Compare[T])), nil
}

// BagsOfSize is Bags with exactly n elements.
func BagsOfSize[T cmp.Ordered](p *provider.Provider, elems iter.Seq[T], n int) (iter.Seq2[[]T, error], error) {
	seq, err := ListsOfSize(p, elems, n)
	if err != nil {
		return nil, fmt.Errorf("BagsOfSize: %w", err)
	}
	return mapSeq2(seq, sortWith[T](cmp.Compare[T])), nil
}

// BagsFunc is Bags for element types ordered by compare.
func BagsFunc[T any](p *provider.Provider, elems iter.Seq[T], compare func(a, b T) int) (iter.Seq2[[]T, error], error) {
	if compare == nil {
		return nil, fmt.Errorf("BagsFunc: %w", ErrNilFunc)
	}
	return mapSeq2(Lists(p, elems), sortWith(compare)), nil
}

// StringBags yields strings whose runes are sorted ascending.
func StringBags(p *provider.Provider, chars iter.Seq[rune]) iter.Seq2[string, error] {
	return mapSeq2(Bags(p, chars), func(rs []rune) string { return string(rs) })
}
