package combinat

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvgen/provider"
)

// Maps yields total functions from keys to values pulled from values, one
// value per key in key order. Duplicate keys are folded; a values stream that
// ends mid-map yields ErrDomainExhausted.
func Maps[K comparable, V any](p *provider.Provider, keys []K, values iter.Seq[V]) iter.Seq2[map[K]V, error] {
	ks := FiniteDomain(keys...).items
	return func(yield func(map[K]V, error) bool) {
		next, stop := iter.Pull(values)
		defer stop()
		for {
			m, err := fill(ks, next)
			if err != nil {
				yield(nil, fmt.Errorf("Maps: %w", err))
				return
			}
			if !yield(m, nil) {
				return
			}
		}
	}
}

// RandomMaps yields maps whose key sets are distinct lists drawn from keys
// (size geometric with mean scale), each key bound to a value from values.
func RandomMaps[K comparable, V any](p *provider.Provider, keys Domain[K], values iter.Seq[V]) iter.Seq2[map[K]V, error] {
	return func(yield func(map[K]V, error) bool) {
		next, stop := iter.Pull(values)
		defer stop()
		for ks, err := range DistinctLists(p, keys) {
			if err != nil {
				yield(nil, fmt.Errorf("RandomMaps: %w", err))
				return
			}
			m, err := fill(ks, next)
			if err != nil {
				yield(nil, fmt.Errorf("RandomMaps: %w", err))
				return
			}
			if !yield(m, nil) {
				return
			}
		}
	}
}

func fill[K comparable, V any](keys []K, next func() (V, bool)) (map[K]V, error) {
	m := make(map[K]V, len(keys))
	for _, k := range keys {
		v, ok := next()
		if !ok {
			return nil, fmt.Errorf("values ended after %d of %d keys: %w", len(m), len(keys), ErrDomainExhausted)
		}
		m[k] = v
	}
	return m, nil
}
