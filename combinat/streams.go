package combinat

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/provider"
)

// Repeatedly yields draw(p) forever.
func Repeatedly[T any](p *provider.Provider, draw func(*provider.Provider) T) iter.Seq[T] {
	if draw == nil {
		panic("combinat: Repeatedly with nil draw")
	}
	return func(yield func(T) bool) {
		for yield(draw(p)) {
		}
	}
}

// Runes yields p.Rune() forever.
func Runes(p *provider.Provider) iter.Seq[rune] {
	return Repeatedly(p, (*provider.Provider).Rune)
}

// UniformSample yields elements of xs chosen uniformly with replacement.
func UniformSample[T any](p *provider.Provider, xs []T) (iter.Seq[T], error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("UniformSample: %w", ErrEmptyInput)
	}
	xs = append([]T(nil), xs...)
	return func(yield func(T) bool) {
		for {
			i, _ := provider.Range(p, 0, len(xs)-1)
			if !yield(xs[i]) {
				return
			}
		}
	}, nil
}

// Take yields at most the first n elements of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if i++; i == n {
				return
			}
		}
	}
}

// Collect gathers at most n elements of seq.
func Collect[T any](seq iter.Seq[T], n int) []T {
	out := make([]T, 0, max(n, 0))
	for v := range Take(seq, n) {
		out = append(out, v)
	}
	return out
}

// Collect2 gathers at most n values of seq and stops at the first error.
func Collect2[T any](seq iter.Seq2[T, error], n int) ([]T, error) {
	out := make([]T, 0, max(n, 0))
	if n <= 0 {
		return out, nil
	}
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		if out = append(out, v); len(out) == n {
			break
		}
	}
	return out, nil
}

// Restartable snapshots p and returns a stream that rebuilds itself from the
// snapshot on every traversal, so each traversal yields the same values.
// p itself is never advanced. Cached sub-streams are snapshotted too.
func Restartable[T any](p *provider.Provider, build func(*provider.Provider) iter.Seq[T]) iter.Seq[T] {
	snapshot := p.DeepCopy()
	return func(yield func(T) bool) {
		for v := range build(snapshot.DeepCopy()) {
			if !yield(v) {
				return
			}
		}
	}
}

// Restartable2 is Restartable for fallible streams.
func Restartable2[T any](p *provider.Provider, build func(*provider.Provider) iter.Seq2[T, error]) iter.Seq2[T, error] {
	snapshot := p.DeepCopy()
	return func(yield func(T, error) bool) {
		for v, err := range build(snapshot.DeepCopy()) {
			if !yield(v, err) {
				return
			}
		}
	}
}

// WithNull yields nil with probability 1/scale before each element of seq,
// and a pointer to the element otherwise. Requires scale ≥ 1; with scale 1
// the stream is nil forever.
func WithNull[T any](p *provider.Provider, seq iter.Seq[T]) (iter.Seq[*T], error) {
	if p.Scale() < 1 {
		return nil, fmt.Errorf("WithNull: scale %d: %w", p.Scale(), provider.ErrInvalidScale)
	}
	null := func() bool {
		k, _ := provider.Range(p, 0, p.Scale()-1)
		return k == 0
	}
	return func(yield func(*T) bool) {
		for v := range seq {
			for null() {
				if !yield(nil) {
					return
				}
			}
			if !yield(&v) {
				return
			}
		}
	}, nil
}
