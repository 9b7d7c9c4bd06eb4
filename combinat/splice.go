package combinat

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvgen/provider"
)

// insertAt returns a copy of xs with ins placed before index at.
func insertAt[T any](xs []T, at int, ins ...T) []T {
	return slices.Insert(slices.Clone(xs), at, ins...)
}

// spliceLists inserts ins into every list at a uniform insertion point in [0, len].
func spliceLists[T any](p *provider.Provider, lists iter.Seq2[[]T, error], ins []T) iter.Seq2[[]T, error] {
	ins = slices.Clone(ins)
	return func(yield func([]T, error) bool) {
		for xs, err := range lists {
			if err != nil {
				yield(nil, err)
				return
			}
			at, _ := provider.Range(p, 0, len(xs))
			if !yield(insertAt(xs, at, ins...), nil) {
				return
			}
		}
	}
}

// WithElement guarantees x occurs in every list by inserting it at a uniform
// position; the list grows by one.
func WithElement[T any](p *provider.Provider, lists iter.Seq2[[]T, error], x T) iter.Seq2[[]T, error] {
	return spliceLists(p, lists, []T{x})
}

// WithSublists guarantees sub occurs contiguously in every list.
func WithSublists[T any](p *provider.Provider, lists iter.Seq2[[]T, error], sub []T) iter.Seq2[[]T, error] {
	return spliceLists(p, lists, sub)
}

// WithSubstrings guarantees sub occurs in every string; the insertion point is
// uniform among rune boundaries.
func WithSubstrings(p *provider.Provider, strs iter.Seq2[string, error], sub string) iter.Seq2[string, error] {
	runes := mapSeq2(strs, func(s string) []rune { return []rune(s) })
	return mapSeq2(spliceLists(p, runes, []rune(sub)), func(rs []rune) string { return string(rs) })
}

// WithChar guarantees c occurs in every string.
func WithChar(p *provider.Provider, strs iter.Seq2[string, error], c rune) iter.Seq2[string, error] {
	return WithSubstrings(p, strs, string(c))
}
