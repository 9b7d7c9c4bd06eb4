package combinat

import (
	"iter"
)

// Domain is a set of distinct candidate elements, either a finite list or a
// restartable enumeration that may be infinite.
type Domain[T comparable] struct {
	items  []T        // finite domains
	seq    iter.Seq[T] // stream domains
	finite bool
}

// FiniteDomain returns the distinct elements of xs in first-occurrence order.
func FiniteDomain[T comparable](xs ...T) Domain[T] {
	seen := make(map[T]struct{}, len(xs))
	items := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, dup := seen[x]; dup {
			continue
		}
		seen[x] = struct{}{}
		items = append(items, x)
	}
	return Domain[T]{items: items, finite: true}
}

// StreamDomain wraps an enumeration. seq must yield the same elements in the
// same order on every traversal; repeated elements are ignored.
func StreamDomain[T comparable](seq iter.Seq[T]) Domain[T] {
	return Domain[T]{seq: seq}
}

// Size returns the number of elements and true for finite domains, 0 and false otherwise.
func (d Domain[T]) Size() (int, bool) {
	if d.finite {
		return len(d.items), true
	}
	return 0, false
}

// Elements returns a copy of a finite domain's elements (nil for stream domains).
func (d Domain[T]) Elements() []T {
	if !d.finite {
		return nil
	}
	return append([]T(nil), d.items...)
}

// indexed pairs an element with its first-occurrence position in the domain.
type indexed[T any] struct {
	pos int
	v   T
}

// enumerate yields the distinct elements of d with their positions.
func (d Domain[T]) enumerate() iter.Seq[indexed[T]] {
	if d.finite {
		return func(yield func(indexed[T]) bool) {
			for i, v := range d.items {
				if !yield(indexed[T]{pos: i, v: v}) {
					return
				}
			}
		}
	}
	return func(yield func(indexed[T]) bool) {
		if d.seq == nil {
			return
		}
		seen := make(map[T]struct{})
		i := 0
		for v := range d.seq {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			if !yield(indexed[T]{pos: i, v: v}) {
				return
			}
			i++
		}
	}
}
